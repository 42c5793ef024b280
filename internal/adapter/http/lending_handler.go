package http

import (
	"net/http"
	"strconv"

	"booklend/internal/usecase/lending"

	"github.com/labstack/echo/v4"
)

type LendingHandler struct{ uc *lending.Usecase }

func NewLendingHandler(uc *lending.Usecase) *LendingHandler { return &LendingHandler{uc: uc} }

type borrowReq struct {
	BookID uint64 `json:"book_id" validate:"required,gt=0"`
	// DueDate may be in the past; only the format is checked.
	DueDate string `json:"due_date" validate:"required,datetime=2006-01-02"`
}

func (h *LendingHandler) Borrow(c echo.Context) error {
	ident, ok := identityFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "no session"})
	}

	var req borrowReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err)
	}
	due, err := parseDate(req.DueDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid due_date"})
	}

	dto, err := h.uc.Borrow(c.Request().Context(), ident, lending.BorrowInput{
		BookID:  req.BookID,
		DueDate: due,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type closeReq struct {
	ActualDate string `json:"actual_date" validate:"required,datetime=2006-01-02"`
}

func (h *LendingHandler) Close(c echo.Context) error {
	ident, ok := identityFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "no session"})
	}

	orderID, err := strconv.ParseUint(c.Param("order_id"), 10, 64)
	if err != nil || orderID == 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid order id"})
	}

	var req closeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err)
	}
	actual, err := parseDate(req.ActualDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid actual_date"})
	}

	dto, err := h.uc.Close(c.Request().Context(), ident, lending.CloseInput{
		OrderID:    orderID,
		ActualDate: actual,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
