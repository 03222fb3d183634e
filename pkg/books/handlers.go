package books

import (
	"net/http"
	"strconv"

	"github.com/DozzyMontalo/locallibrary/pkg/authors"
	"github.com/DozzyMontalo/locallibrary/pkg/errcodes"
	"github.com/DozzyMontalo/locallibrary/pkg/forms"
	"github.com/DozzyMontalo/locallibrary/pkg/genres"
	"github.com/DozzyMontalo/locallibrary/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const listURL = "/catalog/books"

type handler struct {
	bookService   *Service
	authorService *authors.Service
	genreService  *genres.Service
	decoder       *forms.Decoder
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	books, err := h.bookService.ListBooks(ctx, ListBooksOptions{})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.HTML(http.StatusOK, listPage(books)))
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Book")
	}

	book, err := h.bookService.RetrieveBook(ctx, RetrieveBookOptions{
		ID:               &id,
		IncludeAuthor:    true,
		IncludeGenres:    true,
		IncludeInstances: true,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.HTML(http.StatusOK, detailPage(book)))
}

// formLists fetches the author and genre lists for the book form. The two
// reads are independent, so they are issued concurrently.
func (h *handler) formLists(c echo.Context) ([]*models.Author, []*models.Genre, error) {
	var authorList []*models.Author
	var genreList []*models.Genre

	g, ctx := errgroup.WithContext(c.Request().Context())
	g.Go(func() error {
		var err error
		authorList, err = h.authorService.ListAuthors(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		genreList, err = h.genreService.ListGenres(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return authorList, genreList, nil
}

func (h *handler) createForm(c echo.Context) error {
	authorList, genreList, err := h.formLists(c)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.HTML(http.StatusOK, formPage("Create Book", BookForm{}, authorList, genreList, nil)))
}

// parseGenreIDs converts the checked genre values to ids, dropping anything
// that isn't numeric. Always returns a non-nil slice so updates replace the
// associations even when every box is unchecked.
func parseGenreIDs(values []string) []int {
	ids := make([]int, 0, len(values))
	for _, value := range values {
		id, err := strconv.Atoi(value)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	form := BookForm{}
	if err := h.decoder.Decode(c, &form); err != nil {
		return errors.WithStack(err)
	}

	msgs := h.decoder.Validate(&form)

	if len(msgs) > 0 {
		// Re-render the form with every message and the submitted values,
		// keeping the checked genres checked.
		authorList, genreList, err := h.formLists(c)
		if err != nil {
			return errors.WithStack(err)
		}
		return errors.WithStack(c.HTML(http.StatusOK, formPage("Create Book", form, authorList, genreList, msgs)))
	}

	authorID, err := strconv.Atoi(form.Author)
	if err != nil {
		return errcodes.ValidationError("Author must be specified.")
	}

	book := &models.Book{
		Title:    form.Title,
		AuthorID: authorID,
		Summary:  form.Summary,
		ISBN:     form.ISBN,
	}

	if err := h.bookService.CreateBook(ctx, book, parseGenreIDs(form.Genre)); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.Redirect(http.StatusSeeOther, book.URL()))
}

func (h *handler) updateForm(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Book")
	}

	var book *models.Book
	var authorList []*models.Author
	var genreList []*models.Genre

	g, ctx := errgroup.WithContext(c.Request().Context())
	g.Go(func() error {
		var err error
		book, err = h.bookService.RetrieveBook(ctx, RetrieveBookOptions{
			ID:            &id,
			IncludeAuthor: true,
			IncludeGenres: true,
		})
		return err
	})
	g.Go(func() error {
		var err error
		authorList, err = h.authorService.ListAuthors(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		genreList, err = h.genreService.ListGenres(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return errors.WithStack(err)
	}

	genreValues := make([]string, 0, len(book.Genres))
	for _, genreID := range book.GenreIDs() {
		genreValues = append(genreValues, strconv.Itoa(genreID))
	}

	form := BookForm{
		Title:   book.Title,
		Author:  strconv.Itoa(book.AuthorID),
		Summary: book.Summary,
		ISBN:    book.ISBN,
		Genre:   genreValues,
	}

	return errors.WithStack(c.HTML(http.StatusOK, formPage("Update Book", form, authorList, genreList, nil)))
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Book")
	}

	form := BookForm{}
	if err := h.decoder.Decode(c, &form); err != nil {
		return errors.WithStack(err)
	}

	msgs := h.decoder.Validate(&form)

	if len(msgs) > 0 {
		authorList, genreList, err := h.formLists(c)
		if err != nil {
			return errors.WithStack(err)
		}
		return errors.WithStack(c.HTML(http.StatusOK, formPage("Update Book", form, authorList, genreList, msgs)))
	}

	authorID, err := strconv.Atoi(form.Author)
	if err != nil {
		return errcodes.ValidationError("Author must be specified.")
	}

	// The candidate carries the original id from the route so the record is
	// rewritten in place rather than given a new identity.
	book := &models.Book{
		ID:       id,
		Title:    form.Title,
		AuthorID: authorID,
		Summary:  form.Summary,
		ISBN:     form.ISBN,
	}

	err = h.bookService.UpdateBook(ctx, book, UpdateBookOptions{
		Columns:  []string{"title", "author_id", "summary", "isbn"},
		GenreIDs: parseGenreIDs(form.Genre),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.Redirect(http.StatusSeeOther, book.URL()))
}

func (h *handler) deleteForm(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.WithStack(c.Redirect(http.StatusSeeOther, listURL))
	}

	book, err := h.bookService.RetrieveBook(ctx, RetrieveBookOptions{
		ID:               &id,
		IncludeInstances: true,
	})
	if err != nil {
		// A book that's already gone means there's nothing to confirm; go
		// straight back to the list.
		if errors.Is(err, errcodes.NotFound("Book")) {
			return errors.WithStack(c.Redirect(http.StatusSeeOther, listURL))
		}
		return errors.WithStack(err)
	}

	return errors.WithStack(c.HTML(http.StatusOK, deletePage(book)))
}

func (h *handler) delete(c echo.Context) error {
	ctx := c.Request().Context()

	form := deleteBookForm{}
	if err := h.decoder.Decode(c, &form); err != nil {
		return errors.WithStack(err)
	}

	id, err := strconv.Atoi(form.BookID)
	if err != nil {
		return errors.WithStack(c.Redirect(http.StatusSeeOther, listURL))
	}

	book, err := h.bookService.RetrieveBook(ctx, RetrieveBookOptions{
		ID:               &id,
		IncludeInstances: true,
	})
	if err != nil {
		if errors.Is(err, errcodes.NotFound("Book")) {
			return errors.WithStack(c.Redirect(http.StatusSeeOther, listURL))
		}
		return errors.WithStack(err)
	}

	// A book with copies still on the shelves can't be deleted yet; show the
	// copies instead.
	if len(book.Instances) > 0 {
		return errors.WithStack(c.HTML(http.StatusOK, deletePage(book)))
	}

	if err := h.bookService.DeleteBook(ctx, id); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.Redirect(http.StatusSeeOther, listURL))
}
