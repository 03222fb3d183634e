package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValidInstanceStatus(t *testing.T) {
	t.Parallel()

	for _, status := range InstanceStatuses {
		assert.True(t, IsValidInstanceStatus(status), status)
	}
	assert.False(t, IsValidInstanceStatus("Lost"))
	assert.False(t, IsValidInstanceStatus("available"))
	assert.False(t, IsValidInstanceStatus(""))
}

func TestBookInstanceDueBackFormats(t *testing.T) {
	t.Parallel()

	instance := &BookInstance{DueBack: time.Date(2026, time.September, 4, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, "Sep 4, 2026", instance.DueBackFormatted())
	assert.Equal(t, "2026-09-04", instance.DueBackYMD())
}

func TestBookInstanceURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/catalog/bookinstance/7", (&BookInstance{ID: 7}).URL())
}

func TestBookGenreIDs(t *testing.T) {
	t.Parallel()

	book := &Book{Genres: []*BookGenre{{GenreID: 3}, {GenreID: 9}}}
	assert.Equal(t, []int{3, 9}, book.GenreIDs())
	assert.Empty(t, (&Book{}).GenreIDs())
}
