package http

import (
	"net/http"

	"booklend/internal/usecase/catalog"

	"github.com/labstack/echo/v4"
)

type CatalogHandler struct{ uc *catalog.Usecase }

func NewCatalogHandler(uc *catalog.Usecase) *CatalogHandler { return &CatalogHandler{uc: uc} }

func (h *CatalogHandler) ListBooks(c echo.Context) error {
	books, err := h.uc.ListBooks(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, books)
}
