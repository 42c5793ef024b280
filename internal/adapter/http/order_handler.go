package http

import (
	"net/http"

	"booklend/internal/usecase/orders"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct{ uc *orders.Usecase }

func NewOrderHandler(uc *orders.Usecase) *OrderHandler { return &OrderHandler{uc: uc} }

// ListAll is the administrator view over every order.
func (h *OrderHandler) ListAll(c echo.Context) error {
	ident, ok := identityFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "no session"})
	}
	out, err := h.uc.ListAll(c.Request().Context(), ident)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// ListMine is the member view, filtered to the acting identity.
func (h *OrderHandler) ListMine(c echo.Context) error {
	ident, ok := identityFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "no session"})
	}
	out, err := h.uc.ListMine(c.Request().Context(), ident)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
