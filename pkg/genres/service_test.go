package genres

import (
	"context"
	"database/sql"
	"testing"

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

func TestServiceFindOrCreateGenre_CreatesWhenMissing(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	genre, err := svc.FindOrCreateGenre(ctx, "Fantasy")
	require.NoError(t, err)
	assert.NotZero(t, genre.ID)
	assert.Equal(t, "Fantasy", genre.Name)
}

func TestServiceFindOrCreateGenre_ReusesCaseInsensitiveMatch(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	first, err := svc.FindOrCreateGenre(ctx, "Fantasy")
	require.NoError(t, err)

	second, err := svc.FindOrCreateGenre(ctx, "fantasy")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Fantasy", second.Name)

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestServiceRetrieveGenre_NotFound(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	id := 999
	_, err := svc.RetrieveGenre(ctx, RetrieveGenreOptions{ID: &id})
	require.Error(t, err)

	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, "not_found", codeErr.Code)
}

func TestServiceListGenres_OrderedByName(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	_, err := svc.FindOrCreateGenre(ctx, "Science Fiction")
	require.NoError(t, err)
	_, err = svc.FindOrCreateGenre(ctx, "Fantasy")
	require.NoError(t, err)

	genres, err := svc.ListGenres(ctx)
	require.NoError(t, err)
	require.Len(t, genres, 2)
	assert.Equal(t, "Fantasy", genres[0].Name)
	assert.Equal(t, "Science Fiction", genres[1].Name)
}

func TestServiceUpdateGenre_KeepsIdentity(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	genre, err := svc.FindOrCreateGenre(ctx, "Fantazy")
	require.NoError(t, err)
	originalID := genre.ID

	candidate := &models.Genre{ID: originalID, Name: "Fantasy"}
	err = svc.UpdateGenre(ctx, candidate, UpdateGenreOptions{Columns: []string{"name"}})
	require.NoError(t, err)

	updated, err := svc.RetrieveGenre(ctx, RetrieveGenreOptions{ID: &originalID})
	require.NoError(t, err)
	assert.Equal(t, originalID, updated.ID)
	assert.Equal(t, "Fantasy", updated.Name)
}

func TestServiceDeleteGenre_RemovesBookAssociations(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	genre, err := svc.FindOrCreateGenre(ctx, "Fantasy")
	require.NoError(t, err)

	author := &models.Author{FirstName: "Patrick", FamilyName: "Rothfuss"}
	_, err = db.NewInsert().Model(author).Returning("*").Exec(ctx)
	require.NoError(t, err)

	book := &models.Book{Title: "The Name of the Wind", AuthorID: author.ID, Summary: "A story.", ISBN: "9780756404741"}
	_, err = db.NewInsert().Model(book).Returning("*").Exec(ctx)
	require.NoError(t, err)

	_, err = db.NewInsert().Model(&models.BookGenre{BookID: book.ID, GenreID: genre.ID}).Exec(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteGenre(ctx, genre.ID))

	books, err := svc.ListBooks(ctx, genre.ID)
	require.NoError(t, err)
	assert.Empty(t, books)

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestServiceListBooks_OnlyBooksInGenre(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	fantasy, err := svc.FindOrCreateGenre(ctx, "Fantasy")
	require.NoError(t, err)
	scifi, err := svc.FindOrCreateGenre(ctx, "Science Fiction")
	require.NoError(t, err)

	author := &models.Author{FirstName: "Ursula", FamilyName: "Le Guin"}
	_, err = db.NewInsert().Model(author).Returning("*").Exec(ctx)
	require.NoError(t, err)

	earthsea := &models.Book{Title: "A Wizard of Earthsea", AuthorID: author.ID, Summary: "Ged.", ISBN: "9780547773742"}
	_, err = db.NewInsert().Model(earthsea).Returning("*").Exec(ctx)
	require.NoError(t, err)
	dispossessed := &models.Book{Title: "The Dispossessed", AuthorID: author.ID, Summary: "Anarres.", ISBN: "9780061054884"}
	_, err = db.NewInsert().Model(dispossessed).Returning("*").Exec(ctx)
	require.NoError(t, err)

	_, err = db.NewInsert().Model(&models.BookGenre{BookID: earthsea.ID, GenreID: fantasy.ID}).Exec(ctx)
	require.NoError(t, err)
	_, err = db.NewInsert().Model(&models.BookGenre{BookID: dispossessed.ID, GenreID: scifi.ID}).Exec(ctx)
	require.NoError(t, err)

	books, err := svc.ListBooks(ctx, fantasy.ID)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "A Wizard of Earthsea", books[0].Title)
}
