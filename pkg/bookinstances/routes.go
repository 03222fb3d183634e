package bookinstances

import (
	"github.com/DozzyMontalo/locallibrary/pkg/books"
	"github.com/DozzyMontalo/locallibrary/pkg/forms"
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers the book-instance workflows on the catalog group.
func RegisterRoutes(g *echo.Group, db *bun.DB, decoder *forms.Decoder) {
	h := &handler{
		instanceService: NewService(db),
		bookService:     books.NewService(db),
		decoder:         decoder,
	}

	g.GET("/bookinstances", h.list)
	g.GET("/bookinstance/create", h.createForm)
	g.POST("/bookinstance/create", h.create)
	g.GET("/bookinstance/:id", h.retrieve)
	g.GET("/bookinstance/:id/update", h.updateForm)
	g.POST("/bookinstance/:id/update", h.update)
	g.GET("/bookinstance/:id/delete", h.deleteForm)
	g.POST("/bookinstance/:id/delete", h.delete)
}
