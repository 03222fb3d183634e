package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageEscapesTitle(t *testing.T) {
	t.Parallel()

	page := Page(`<script>alert("x")</script>`, "")
	assert.NotContains(t, page, `<script>alert`)
	assert.Contains(t, page, "&lt;script&gt;")
}

func TestPageIncludesSidebarNavigation(t *testing.T) {
	t.Parallel()

	page := Page("Home", "")
	assert.Contains(t, page, `<a href="/catalog/books">All books</a>`)
	assert.Contains(t, page, `<a href="/catalog/bookinstance/create">Create new book instance (copy)</a>`)
}

func TestItemEscapesStoredText(t *testing.T) {
	t.Parallel()

	item := Item(`Dune <b>unsafe</b>`, "/catalog/book/1", `"meta"`)
	assert.Contains(t, item, "Dune &lt;b&gt;unsafe&lt;/b&gt;")
	assert.Contains(t, item, "&#34;meta&#34;")
	assert.NotContains(t, item, "<b>unsafe</b>")
}

func TestErrorListEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ErrorList(nil))
	assert.Empty(t, ErrorList([]string{}))
}

func TestErrorListRendersEveryMessage(t *testing.T) {
	t.Parallel()

	list := ErrorList([]string{"first", "second"})
	assert.Contains(t, list, "<li>first</li>")
	assert.Contains(t, list, "<li>second</li>")
}

func TestSelectFieldMarksSelection(t *testing.T) {
	t.Parallel()

	field := SelectField("Status:", "status", []SelectOption{
		{Value: "Available", Label: "Available"},
		{Value: "Loaned", Label: "Loaned", Selected: true},
	})
	assert.Contains(t, field, `<option value="Available">Available</option>`)
	assert.Contains(t, field, `<option value="Loaned" selected>Loaned</option>`)
}

func TestCheckboxFieldMarksChecked(t *testing.T) {
	t.Parallel()

	assert.Contains(t, CheckboxField("Fantasy", "genre", "3", true), `value="3" checked`)
	assert.NotContains(t, CheckboxField("Fantasy", "genre", "3", false), "checked")
}

func TestTextFieldEscapesValue(t *testing.T) {
	t.Parallel()

	field := TextField("Title:", "title", `"><script>`, "")
	assert.Contains(t, field, `value="&#34;&gt;&lt;script&gt;"`)
}

func TestErrorPageDetailOnlyWhenGiven(t *testing.T) {
	t.Parallel()

	withDetail := ErrorPage(500, "Internal Server Error", "stack trace here")
	assert.Contains(t, withDetail, "<pre>stack trace here</pre>")

	withoutDetail := ErrorPage(404, "Page not found.", "")
	assert.NotContains(t, withoutDetail, "<pre>")
	assert.Contains(t, withoutDetail, "Status: 404")
}
