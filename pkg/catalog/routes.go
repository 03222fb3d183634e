package catalog

import (
	"github.com/DozzyMontalo/locallibrary/pkg/authors"
	"github.com/DozzyMontalo/locallibrary/pkg/bookinstances"
	"github.com/DozzyMontalo/locallibrary/pkg/books"
	"github.com/DozzyMontalo/locallibrary/pkg/genres"
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers the home page on the catalog group.
func RegisterRoutes(g *echo.Group, db *bun.DB) {
	h := &handler{
		bookService:     books.NewService(db),
		instanceService: bookinstances.NewService(db),
		authorService:   authors.NewService(db),
		genreService:    genres.NewService(db),
	}

	g.GET("", h.index)
}
