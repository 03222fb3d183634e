// Package catalog serves the home page: a summary of how many records of
// each kind the library holds.
package catalog

import (
	"net/http"

	"github.com/DozzyMontalo/locallibrary/pkg/authors"
	"github.com/DozzyMontalo/locallibrary/pkg/bookinstances"
	"github.com/DozzyMontalo/locallibrary/pkg/books"
	"github.com/DozzyMontalo/locallibrary/pkg/genres"
	"github.com/DozzyMontalo/locallibrary/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

type counts struct {
	Books              int
	Instances          int
	AvailableInstances int
	Authors            int
	Genres             int
}

type handler struct {
	bookService     *books.Service
	instanceService *bookinstances.Service
	authorService   *authors.Service
	genreService    *genres.Service
}

func (h *handler) index(c echo.Context) error {
	// The five counts are independent reads, so they are issued concurrently.
	var n counts

	g, ctx := errgroup.WithContext(c.Request().Context())
	g.Go(func() error {
		var err error
		n.Books, err = h.bookService.Count(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		n.Instances, err = h.instanceService.Count(ctx, bookinstances.CountInstancesOptions{})
		return err
	})
	g.Go(func() error {
		available := models.StatusAvailable
		var err error
		n.AvailableInstances, err = h.instanceService.Count(ctx, bookinstances.CountInstancesOptions{Status: &available})
		return err
	})
	g.Go(func() error {
		var err error
		n.Authors, err = h.authorService.Count(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		n.Genres, err = h.genreService.Count(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.HTML(http.StatusOK, indexPage(n)))
}
