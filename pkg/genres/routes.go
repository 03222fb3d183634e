package genres

import (
	"github.com/DozzyMontalo/locallibrary/pkg/forms"
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers the genre workflows on the catalog group.
func RegisterRoutes(g *echo.Group, db *bun.DB, decoder *forms.Decoder) {
	h := &handler{
		genreService: NewService(db),
		decoder:      decoder,
	}

	g.GET("/genres", h.list)
	g.GET("/genre/create", h.createForm)
	g.POST("/genre/create", h.create)
	g.GET("/genre/:id", h.retrieve)
	g.GET("/genre/:id/update", h.updateForm)
	g.POST("/genre/:id/update", h.update)
	g.GET("/genre/:id/delete", h.deleteForm)
	g.POST("/genre/:id/delete", h.delete)
}
