package catalog

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DozzyMontalo/locallibrary/pkg/authors"
	"github.com/DozzyMontalo/locallibrary/pkg/bookinstances"
	"github.com/DozzyMontalo/locallibrary/pkg/books"
	"github.com/DozzyMontalo/locallibrary/pkg/genres"
	"github.com/DozzyMontalo/locallibrary/pkg/migrations"
	"github.com/DozzyMontalo/locallibrary/pkg/models"
	"github.com/labstack/echo/v4"
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

func TestHandlerIndex_CountsEveryRecordKind(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	ctx := context.Background()

	author := &models.Author{FirstName: "Patrick", FamilyName: "Rothfuss"}
	require.NoError(t, authors.NewService(db).CreateAuthor(ctx, author))

	_, err := genres.NewService(db).FindOrCreateGenre(ctx, "Fantasy")
	require.NoError(t, err)

	book := &models.Book{Title: "The Name of the Wind", AuthorID: author.ID, Summary: "Kvothe.", ISBN: "9780756404741"}
	require.NoError(t, books.NewService(db).CreateBook(ctx, book, nil))

	instanceService := bookinstances.NewService(db)
	require.NoError(t, instanceService.CreateInstance(ctx, &models.BookInstance{BookID: book.ID, Imprint: "a", Status: models.StatusAvailable}))
	require.NoError(t, instanceService.CreateInstance(ctx, &models.BookInstance{BookID: book.ID, Imprint: "b", Status: models.StatusLoaned}))

	h := &handler{
		bookService:     books.NewService(db),
		instanceService: instanceService,
		authorService:   authors.NewService(db),
		genreService:    genres.NewService(db),
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	rr := httptest.NewRecorder()
	c := e.NewContext(req, rr)

	require.NoError(t, h.index(c))

	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "Local Library Home")
	assert.Contains(t, body, "<dt>Books</dt>")
	assert.Contains(t, body, "<dt>Copies available</dt><dd>1</dd>")
}
