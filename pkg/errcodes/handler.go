package errcodes

import (
	"fmt"
	"net/http"

	"github.com/DozzyMontalo/locallibrary/pkg/views"
	"github.com/iancoleman/strcase"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/echo/v4/middleware/logger"
	"github.com/robinjoseph08/golib/errutils"
)

type Handler struct {
	// development controls whether internal error detail is included in the
	// rendered page.
	development bool
}

func NewHandler(development bool) *Handler {
	return &Handler{development: development}
}

// Handle is an Echo error handler that renders the generic error page for
// whatever bubbles up out of the workflow handlers. Coded errors keep their
// status; anything else is an internal server error.
func (h *Handler) Handle(err error, c echo.Context) {
	if errutils.IsIgnorableErr(err) {
		logger.FromEchoContext(c).Err(err).Warn("broken pipe")
		return
	}

	httpCode, msg, code := h.unpack(err)

	if httpCode == http.StatusInternalServerError {
		logger.FromEchoContext(c).Err(err).Error("server error")
	} else {
		logger.FromEchoContext(c).Err(err).Warn(code)
	}

	detail := ""
	if h.development {
		detail = fmt.Sprintf("%+v", err)
	}

	if err := c.HTML(httpCode, views.ErrorPage(httpCode, msg, detail)); err != nil {
		logger.FromEchoContext(c).Err(errors.WithStack(err)).Error("error handler render error")
	}
}

func (h *Handler) unpack(err error) (int, string, string) {
	code := ""
	msg := ""
	httpCode := http.StatusInternalServerError

	// Echo errors
	var he *echo.HTTPError
	if ok := errors.As(err, &he); ok {
		httpCode = he.Code
		if s, sok := he.Message.(string); sok {
			msg = s
		} else {
			msg = http.StatusText(he.Code)
		}
		code = strcase.ToSnake(msg)
	}

	// Coded errors
	var e *Error
	if ok := errors.As(err, &e); ok {
		httpCode = e.HTTPCode
		code = e.Code
		msg = e.Message
	}

	// Anything else is an internal server error with detail suppressed.
	if httpCode == http.StatusInternalServerError && msg == "" {
		code = "internal_server_error"
		msg = "Internal Server Error"
	}

	return httpCode, msg, code
}
