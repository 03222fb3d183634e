package books

import (
	"github.com/DozzyMontalo/locallibrary/pkg/authors"
	"github.com/DozzyMontalo/locallibrary/pkg/forms"
	"github.com/DozzyMontalo/locallibrary/pkg/genres"
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers the book workflows on the catalog group.
func RegisterRoutes(g *echo.Group, db *bun.DB, decoder *forms.Decoder) {
	h := &handler{
		bookService:   NewService(db),
		authorService: authors.NewService(db),
		genreService:  genres.NewService(db),
		decoder:       decoder,
	}

	g.GET("/books", h.list)
	g.GET("/book/create", h.createForm)
	g.POST("/book/create", h.create)
	g.GET("/book/:id", h.retrieve)
	g.GET("/book/:id/update", h.updateForm)
	g.POST("/book/:id/update", h.update)
	g.GET("/book/:id/delete", h.deleteForm)
	g.POST("/book/:id/delete", h.delete)
}
