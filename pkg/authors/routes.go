package authors

import (
	"github.com/DozzyMontalo/locallibrary/pkg/forms"
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers the author workflows on the catalog group.
func RegisterRoutes(g *echo.Group, db *bun.DB, decoder *forms.Decoder) {
	h := &handler{
		authorService: NewService(db),
		decoder:       decoder,
	}

	g.GET("/authors", h.list)
	g.GET("/author/create", h.createForm)
	g.POST("/author/create", h.create)
	g.GET("/author/:id", h.retrieve)
	g.GET("/author/:id/update", h.updateForm)
	g.POST("/author/:id/update", h.update)
	g.GET("/author/:id/delete", h.deleteForm)
	g.POST("/author/:id/delete", h.delete)
}
