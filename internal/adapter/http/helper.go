package http

import (
	"net/http"
	"time"

	"booklend/internal/adapter/middleware"
	"booklend/internal/domain/account"

	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

// identityFrom pulls the session identity resolved by the middleware.
func identityFrom(c echo.Context) (account.Identity, bool) {
	ident, ok := c.Get(middleware.ContextKeyIdentity).(account.Identity)
	return ident, ok
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func badRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request", Details: ToFieldErrors(err)})
}
