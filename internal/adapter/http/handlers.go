package http

import (
	"errors"
	"log"
	"net/http"
	"time"

	"booklend/internal/domain/account"
	"booklend/internal/domain/book"
	"booklend/internal/domain/order"

	"github.com/labstack/echo/v4"
)

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// fail maps the core's sentinel errors onto status codes. Anything
// unrecognized is a store failure: logged, reported once, not retried.
func fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, account.ErrNotFound),
		errors.Is(err, book.ErrNotFound),
		errors.Is(err, order.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, account.ErrWrongPassword):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case errors.Is(err, account.ErrUnauthorized),
		errors.Is(err, order.ErrNotAuthorized):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, account.ErrNameTaken),
		errors.Is(err, book.ErrUnavailable),
		errors.Is(err, order.ErrAlreadyClosed):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		log.Printf("http: %s %s: %v", c.Request().Method, c.Path(), err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
