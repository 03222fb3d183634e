package errcodes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/echo/v4/middleware/logger"
	"github.com/stretchr/testify/assert"
)

func newTestServer(development bool, handler echo.HandlerFunc) *echo.Echo {
	e := echo.New()
	e.Use(logger.Middleware())
	e.HTTPErrorHandler = NewHandler(development).Handle
	e.GET("/boom", handler)
	return e
}

func TestHandleNotFound(t *testing.T) {
	t.Parallel()

	e := newTestServer(false, func(echo.Context) error {
		return NotFound("Book")
	})

	rr := httptest.NewRecorder()
	e.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "Book not found.")
	assert.Contains(t, rr.Body.String(), "Status: 404")
}

func TestHandleValidationError(t *testing.T) {
	t.Parallel()

	e := newTestServer(false, func(echo.Context) error {
		return ValidationError("Status must be one of the known values.")
	})

	rr := httptest.NewRecorder()
	e.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Contains(t, rr.Body.String(), "Status must be one of the known values.")
}

func TestHandleInternalErrorHidesDetailInProduction(t *testing.T) {
	t.Parallel()

	e := newTestServer(false, func(echo.Context) error {
		return errors.New("sqlite exploded")
	})

	rr := httptest.NewRecorder()
	e.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "Internal Server Error")
	assert.NotContains(t, rr.Body.String(), "sqlite exploded")
}

func TestHandleInternalErrorShowsDetailInDevelopment(t *testing.T) {
	t.Parallel()

	e := newTestServer(true, func(echo.Context) error {
		return errors.New("sqlite exploded")
	})

	rr := httptest.NewRecorder()
	e.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "sqlite exploded")
}

func TestHandleEchoHTTPError(t *testing.T) {
	t.Parallel()

	e := newTestServer(false, func(echo.Context) error {
		return echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	rr := httptest.NewRecorder()
	e.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Contains(t, rr.Body.String(), "Method Not Allowed")
}
