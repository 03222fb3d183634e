package books

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/DozzyMontalo/locallibrary/pkg/authors"
	"github.com/DozzyMontalo/locallibrary/pkg/forms"
	"github.com/DozzyMontalo/locallibrary/pkg/genres"
	"github.com/DozzyMontalo/locallibrary/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

func newTestHandler(db *bun.DB) *handler {
	return &handler{
		bookService:   NewService(db),
		authorService: authors.NewService(db),
		genreService:  genres.NewService(db),
		decoder:       forms.NewDecoder(),
	}
}

func newFormContext(t *testing.T, method, path string, values url.Values) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	var req *http.Request
	if method == http.MethodGet {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(values.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	rr := httptest.NewRecorder()
	return e.NewContext(req, rr), rr
}

func TestHandlerCreate_RedirectsToCanonicalURL(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := newTestHandler(db)
	ctx := context.Background()

	author := createTestAuthor(ctx, t, db)
	fantasy := createTestGenre(ctx, t, db, "Fantasy")

	c, rr := newFormContext(t, http.MethodPost, "/catalog/book/create", url.Values{
		"title":   {"The Name of the Wind"},
		"author":  {strconv.Itoa(author.ID)},
		"summary": {"The tale of Kvothe."},
		"isbn":    {"9780756404741"},
		"genre":   {strconv.Itoa(fantasy.ID)},
	})

	require.NoError(t, h.create(c))

	assert.Equal(t, http.StatusSeeOther, rr.Code)

	books, err := h.bookService.ListBooks(ctx, ListBooksOptions{})
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, fmt.Sprintf("/catalog/book/%d", books[0].ID), rr.Header().Get("Location"))

	created, err := h.bookService.RetrieveBook(ctx, RetrieveBookOptions{ID: &books[0].ID, IncludeGenres: true})
	require.NoError(t, err)
	assert.Equal(t, []int{fantasy.ID}, created.GenreIDs())
}

func TestHandlerCreate_InvalidPayloadRerendersWithEveryMessage(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := newTestHandler(db)
	ctx := context.Background()

	createTestAuthor(ctx, t, db)
	fantasy := createTestGenre(ctx, t, db, "Fantasy")

	c, rr := newFormContext(t, http.MethodPost, "/catalog/book/create", url.Values{
		"title":   {""},
		"author":  {""},
		"summary": {""},
		"isbn":    {""},
		"genre":   {strconv.Itoa(fantasy.ID)},
	})

	require.NoError(t, h.create(c))

	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "Title must not be empty.")
	assert.Contains(t, body, "Author must be specified.")
	assert.Contains(t, body, "Summary must not be empty.")
	assert.Contains(t, body, "ISBN must not be empty.")
	// The checked genre stays checked on the re-rendered form.
	assert.Contains(t, body, fmt.Sprintf(`value="%d" checked`, fantasy.ID))

	count, err := h.bookService.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestHandlerUpdate_KeepsIdentityAndReplacesGenres(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := newTestHandler(db)
	ctx := context.Background()

	author := createTestAuthor(ctx, t, db)
	fantasy := createTestGenre(ctx, t, db, "Fantasy")
	scifi := createTestGenre(ctx, t, db, "Science Fiction")

	book := &models.Book{Title: "The Name of the Wind", AuthorID: author.ID, Summary: "Kvothe.", ISBN: "9780756404741"}
	require.NoError(t, h.bookService.CreateBook(ctx, book, []int{fantasy.ID}))

	c, rr := newFormContext(t, http.MethodPost, "/catalog/book/1/update", url.Values{
		"title":   {"The Name of the Wind (Deluxe)"},
		"author":  {strconv.Itoa(author.ID)},
		"summary": {"Kvothe."},
		"isbn":    {"9780756404741"},
		"genre":   {strconv.Itoa(scifi.ID)},
	})
	c.SetPath("/book/:id/update")
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(book.ID))

	require.NoError(t, h.update(c))

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, book.URL(), rr.Header().Get("Location"))

	updated, err := h.bookService.RetrieveBook(ctx, RetrieveBookOptions{ID: &book.ID, IncludeGenres: true})
	require.NoError(t, err)
	assert.Equal(t, book.ID, updated.ID)
	assert.Equal(t, "The Name of the Wind (Deluxe)", updated.Title)
	assert.Equal(t, []int{scifi.ID}, updated.GenreIDs())
}

func TestHandlerDelete_BookWithCopiesIsKept(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := newTestHandler(db)
	ctx := context.Background()

	author := createTestAuthor(ctx, t, db)
	book := &models.Book{Title: "The Name of the Wind", AuthorID: author.ID, Summary: "Kvothe.", ISBN: "9780756404741"}
	require.NoError(t, h.bookService.CreateBook(ctx, book, nil))

	instance := &models.BookInstance{BookID: book.ID, Imprint: "Gollancz, 2007", Status: models.StatusLoaned}
	_, err := db.NewInsert().Model(instance).Returning("*").Exec(ctx)
	require.NoError(t, err)

	c, rr := newFormContext(t, http.MethodPost, "/catalog/book/1/delete", url.Values{
		"bookid": {strconv.Itoa(book.ID)},
	})

	require.NoError(t, h.delete(c))

	// The guard page lists the copies instead of deleting anything.
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Gollancz, 2007")

	count, err := h.bookService.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestHandlerDelete_BookWithoutCopiesIsRemoved(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := newTestHandler(db)
	ctx := context.Background()

	author := createTestAuthor(ctx, t, db)
	book := &models.Book{Title: "Dune", AuthorID: author.ID, Summary: "Arrakis.", ISBN: "9780441013593"}
	require.NoError(t, h.bookService.CreateBook(ctx, book, nil))

	c, rr := newFormContext(t, http.MethodPost, "/catalog/book/1/delete", url.Values{
		"bookid": {strconv.Itoa(book.ID)},
	})

	require.NoError(t, h.delete(c))

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, listURL, rr.Header().Get("Location"))

	count, err := h.bookService.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
