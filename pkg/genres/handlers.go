package genres

import (
	"net/http"
	"strconv"

	"github.com/DozzyMontalo/locallibrary/pkg/errcodes"
	"github.com/DozzyMontalo/locallibrary/pkg/forms"
	"github.com/DozzyMontalo/locallibrary/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const listURL = "/catalog/genres"

type handler struct {
	genreService *Service
	decoder      *forms.Decoder
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	genres, err := h.genreService.ListGenres(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.HTML(http.StatusOK, listPage(genres)))
}

// retrieveGenreAndBooks issues the two independent reads concurrently.
func (h *handler) retrieveGenreAndBooks(c echo.Context, id int) (*models.Genre, []*models.Book, error) {
	var genre *models.Genre
	var genreBooks []*models.Book

	g, ctx := errgroup.WithContext(c.Request().Context())
	g.Go(func() error {
		var err error
		genre, err = h.genreService.RetrieveGenre(ctx, RetrieveGenreOptions{ID: &id})
		return err
	})
	g.Go(func() error {
		var err error
		genreBooks, err = h.genreService.ListBooks(ctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return genre, genreBooks, nil
}

func (h *handler) retrieve(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Genre")
	}

	genre, genreBooks, err := h.retrieveGenreAndBooks(c, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.HTML(http.StatusOK, detailPage(genre, genreBooks)))
}

func (h *handler) createForm(c echo.Context) error {
	return errors.WithStack(c.HTML(http.StatusOK, formPage("Create Genre", GenreForm{}, nil)))
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	form := GenreForm{}
	if err := h.decoder.Decode(c, &form); err != nil {
		return errors.WithStack(err)
	}

	if msgs := h.decoder.Validate(&form); len(msgs) > 0 {
		return errors.WithStack(c.HTML(http.StatusOK, formPage("Create Genre", form, msgs)))
	}

	// A genre with the same name (ignoring case) is reused rather than
	// duplicated; either way the redirect lands on its detail page.
	genre, err := h.genreService.FindOrCreateGenre(ctx, form.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.Redirect(http.StatusSeeOther, genre.URL()))
}

func (h *handler) updateForm(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Genre")
	}

	genre, err := h.genreService.RetrieveGenre(ctx, RetrieveGenreOptions{ID: &id})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.HTML(http.StatusOK, formPage("Update Genre", GenreForm{Name: genre.Name}, nil)))
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Genre")
	}

	form := GenreForm{}
	if err := h.decoder.Decode(c, &form); err != nil {
		return errors.WithStack(err)
	}

	if msgs := h.decoder.Validate(&form); len(msgs) > 0 {
		return errors.WithStack(c.HTML(http.StatusOK, formPage("Update Genre", form, msgs)))
	}

	genre := &models.Genre{
		ID:   id,
		Name: form.Name,
	}

	err = h.genreService.UpdateGenre(ctx, genre, UpdateGenreOptions{Columns: []string{"name"}})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.Redirect(http.StatusSeeOther, genre.URL()))
}

func (h *handler) deleteForm(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.WithStack(c.Redirect(http.StatusSeeOther, listURL))
	}

	genre, genreBooks, err := h.retrieveGenreAndBooks(c, id)
	if err != nil {
		if errors.Is(err, errcodes.NotFound("Genre")) {
			return errors.WithStack(c.Redirect(http.StatusSeeOther, listURL))
		}
		return errors.WithStack(err)
	}

	return errors.WithStack(c.HTML(http.StatusOK, deletePage(genre, genreBooks)))
}

func (h *handler) delete(c echo.Context) error {
	ctx := c.Request().Context()

	form := deleteGenreForm{}
	if err := h.decoder.Decode(c, &form); err != nil {
		return errors.WithStack(err)
	}

	id, err := strconv.Atoi(form.GenreID)
	if err != nil {
		return errors.WithStack(c.Redirect(http.StatusSeeOther, listURL))
	}

	genre, genreBooks, err := h.retrieveGenreAndBooks(c, id)
	if err != nil {
		if errors.Is(err, errcodes.NotFound("Genre")) {
			return errors.WithStack(c.Redirect(http.StatusSeeOther, listURL))
		}
		return errors.WithStack(err)
	}

	// A genre still attached to books can't be deleted yet; show the books
	// instead.
	if len(genreBooks) > 0 {
		return errors.WithStack(c.HTML(http.StatusOK, deletePage(genre, genreBooks)))
	}

	if err := h.genreService.DeleteGenre(ctx, id); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.Redirect(http.StatusSeeOther, listURL))
}
