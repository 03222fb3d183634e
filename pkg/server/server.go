package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/DozzyMontalo/locallibrary/pkg/authors"
	"github.com/DozzyMontalo/locallibrary/pkg/bookinstances"
	"github.com/DozzyMontalo/locallibrary/pkg/books"
	"github.com/DozzyMontalo/locallibrary/pkg/catalog"
	"github.com/DozzyMontalo/locallibrary/pkg/config"
	"github.com/DozzyMontalo/locallibrary/pkg/errcodes"
	"github.com/DozzyMontalo/locallibrary/pkg/forms"
	"github.com/DozzyMontalo/locallibrary/pkg/genres"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/echo/v4/health"
	"github.com/robinjoseph08/golib/echo/v4/middleware/logger"
	"github.com/robinjoseph08/golib/echo/v4/middleware/recovery"
	"github.com/uptrace/bun"
)

// New wires the Echo application and wraps it in an http.Server.
func New(cfg *config.Config, db *bun.DB) (*http.Server, error) {
	e := echo.New()

	e.Use(logger.Middleware())
	e.Use(recovery.Middleware())
	e.Use(timeoutMiddleware(cfg.RequestTimeout))

	health.RegisterRoutes(e)

	e.GET("/", func(c echo.Context) error {
		return errors.WithStack(c.Redirect(http.StatusMovedPermanently, "/catalog"))
	})

	decoder := forms.NewDecoder()

	g := e.Group("/catalog")
	catalog.RegisterRoutes(g, db)
	books.RegisterRoutes(g, db, decoder)
	authors.RegisterRoutes(g, db, decoder)
	genres.RegisterRoutes(g, db, decoder)
	bookinstances.RegisterRoutes(g, db, decoder)

	echo.NotFoundHandler = notFoundHandler
	e.HTTPErrorHandler = errcodes.NewHandler(cfg.IsDevelopment()).Handle

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
		Handler:           e,
		ReadHeaderTimeout: 3 * time.Second,
	}

	return srv, nil
}

// timeoutMiddleware bounds each request with a deadline so a slow query
// can't hold a connection open indefinitely.
func timeoutMiddleware(d time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, cancel := context.WithTimeout(c.Request().Context(), d)
			defer cancel()
			c.SetRequest(c.Request().WithContext(ctx))

			err := next(c)
			if err != nil && errors.Is(err, context.DeadlineExceeded) {
				return errcodes.RequestTimeout()
			}
			return err
		}
	}
}

func notFoundHandler(c echo.Context) error {
	c.SetPath("/:path")
	return errcodes.NotFound("Page")
}
