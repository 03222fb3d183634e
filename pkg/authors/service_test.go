package authors

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DozzyMontalo/locallibrary/pkg/errcodes"
	"github.com/DozzyMontalo/locallibrary/pkg/migrations"
	"github.com/DozzyMontalo/locallibrary/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, ":memory:")
	require.NoError(t, err)

	db := bun.NewDB(sqldb, sqlitedialect.New())

	_, err = migrations.BringUpToDate(context.Background(), db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func TestServiceCreateAuthor_AssignsID(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	author := &models.Author{FirstName: "Patrick", FamilyName: "Rothfuss"}
	require.NoError(t, svc.CreateAuthor(ctx, author))

	assert.NotZero(t, author.ID)
	assert.False(t, author.CreatedAt.IsZero())
}

func TestServiceRetrieveAuthor_NotFound(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	id := 999
	_, err := svc.RetrieveAuthor(ctx, RetrieveAuthorOptions{ID: &id})
	require.Error(t, err)

	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, "not_found", codeErr.Code)
}

func TestServiceListAuthors_OrderedByFamilyName(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	require.NoError(t, svc.CreateAuthor(ctx, &models.Author{FirstName: "Ursula", FamilyName: "Le Guin"}))
	require.NoError(t, svc.CreateAuthor(ctx, &models.Author{FirstName: "Isaac", FamilyName: "Asimov"}))

	authors, err := svc.ListAuthors(ctx)
	require.NoError(t, err)
	require.Len(t, authors, 2)
	assert.Equal(t, "Asimov", authors[0].FamilyName)
	assert.Equal(t, "Le Guin", authors[1].FamilyName)
}

func TestServiceUpdateAuthor_KeepsIdentity(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	author := &models.Author{FirstName: "Patrik", FamilyName: "Rothfuss"}
	require.NoError(t, svc.CreateAuthor(ctx, author))
	originalID := author.ID

	birth := time.Date(1973, time.June, 6, 0, 0, 0, 0, time.UTC)
	candidate := &models.Author{
		ID:          originalID,
		FirstName:   "Patrick",
		FamilyName:  "Rothfuss",
		DateOfBirth: &birth,
	}
	err := svc.UpdateAuthor(ctx, candidate, UpdateAuthorOptions{
		Columns: []string{"first_name", "family_name", "date_of_birth", "date_of_death"},
	})
	require.NoError(t, err)

	updated, err := svc.RetrieveAuthor(ctx, RetrieveAuthorOptions{ID: &originalID})
	require.NoError(t, err)
	assert.Equal(t, originalID, updated.ID)
	assert.Equal(t, "Patrick", updated.FirstName)
	require.NotNil(t, updated.DateOfBirth)

	authors, err := svc.ListAuthors(ctx)
	require.NoError(t, err)
	assert.Len(t, authors, 1)
}

func TestServiceUpdateAuthor_NotFound(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	candidate := &models.Author{ID: 999, FirstName: "Nobody", FamilyName: "Here"}
	err := svc.UpdateAuthor(ctx, candidate, UpdateAuthorOptions{Columns: []string{"first_name"}})
	require.Error(t, err)

	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, "not_found", codeErr.Code)
}

func TestServiceDeleteAuthor_Idempotent(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	author := &models.Author{FirstName: "Patrick", FamilyName: "Rothfuss"}
	require.NoError(t, svc.CreateAuthor(ctx, author))

	require.NoError(t, svc.DeleteAuthor(ctx, author.ID))
	// Deleting again is a no-op.
	require.NoError(t, svc.DeleteAuthor(ctx, author.ID))

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
