package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"booklend/internal/adapter/middleware"
	"booklend/internal/domain/account"
	bookDomain "booklend/internal/domain/book"
	orderDomain "booklend/internal/domain/order"
	"booklend/internal/domain/uow"
	"booklend/internal/testutil/bookmock"
	"booklend/internal/testutil/ordermock"
	"booklend/internal/testutil/uowmock"
	"booklend/internal/usecase/lending"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

var (
	memberIdent = account.Identity{AccountID: "42424242424242424242424242424242", Name: "alice", Kind: account.KindMember}
	adminIdent  = account.Identity{AccountID: "99999999999999999999999999999999", Name: "root", Kind: account.KindAdmin}
)

// oneBookRepos serves a single in-memory book and records created orders.
func oneBookRepos(b *bookDomain.Book, created *[]orderDomain.Order) uow.Repos {
	return uow.Repos{
		Books: &bookmock.Repo{
			GetByIDForUpdateFn: func(ctx context.Context, id uint64) (*bookDomain.Book, error) {
				if b == nil || b.ID != id {
					return nil, gorm.ErrRecordNotFound
				}
				cp := *b
				return &cp, nil
			},
			SaveFn: func(ctx context.Context, saved *bookDomain.Book) error {
				*b = *saved
				return nil
			},
		},
		Orders: &ordermock.Repo{
			CreateFn: func(ctx context.Context, o *orderDomain.Order) error {
				o.ID = uint64(len(*created) + 1)
				*created = append(*created, *o)
				return nil
			},
			GetByIDForUpdateFn: func(ctx context.Context, id uint64) (*orderDomain.Order, error) {
				for i := range *created {
					if (*created)[i].ID == id {
						cp := (*created)[i]
						return &cp, nil
					}
				}
				return nil, gorm.ErrRecordNotFound
			},
			SaveFn: func(ctx context.Context, o *orderDomain.Order) error {
				for i := range *created {
					if (*created)[i].ID == o.ID {
						(*created)[i] = *o
					}
				}
				return nil
			},
		},
	}
}

func lendingHandlerWith(b *bookDomain.Book, created *[]orderDomain.Order) *LendingHandler {
	return NewLendingHandler(lending.NewUsecase(uowmock.Passthrough(oneBookRepos(b, created))))
}

func withIdentity(c echo.Context, ident account.Identity) {
	c.Set(middleware.ContextKeyIdentity, ident)
}

func TestBorrow_Created(t *testing.T) {
	e := newTestEcho()
	b := &bookDomain.Book{ID: 1, Name: "Dune", Available: true}
	var created []orderDomain.Order
	h := lendingHandlerWith(b, &created)

	c, rec := postJSON(e, "/orders", `{"book_id":1,"due_date":"2025-01-10"}`)
	withIdentity(c, memberIdent)
	if err := h.Borrow(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body=%s", rec.Code, rec.Body.String())
	}

	var dto lending.OrderDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if dto.BookID != 1 || dto.UserID != memberIdent.AccountID || !dto.Open {
		t.Fatalf("unexpected dto: %+v", dto)
	}
	if b.Available {
		t.Fatal("book still available after borrow")
	}
}

func TestBorrow_BadDate(t *testing.T) {
	e := newTestEcho()
	var created []orderDomain.Order
	h := lendingHandlerWith(&bookDomain.Book{ID: 1, Name: "Dune", Available: true}, &created)

	c, rec := postJSON(e, "/orders", `{"book_id":1,"due_date":"01/10/2025"}`)
	withIdentity(c, memberIdent)
	if err := h.Borrow(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if len(created) != 0 {
		t.Fatal("order created despite invalid date")
	}
}

func TestBorrow_Unavailable_Conflict(t *testing.T) {
	e := newTestEcho()
	var created []orderDomain.Order
	h := lendingHandlerWith(&bookDomain.Book{ID: 1, Name: "Dune", Available: false}, &created)

	c, rec := postJSON(e, "/orders", `{"book_id":1,"due_date":"2025-01-10"}`)
	withIdentity(c, memberIdent)
	if err := h.Borrow(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestBorrow_UnknownBook_NotFound(t *testing.T) {
	e := newTestEcho()
	var created []orderDomain.Order
	h := lendingHandlerWith(nil, &created)

	c, rec := postJSON(e, "/orders", `{"book_id":5,"due_date":"2025-01-10"}`)
	withIdentity(c, memberIdent)
	if err := h.Borrow(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestClose_MemberForbidden(t *testing.T) {
	e := newTestEcho()
	b := &bookDomain.Book{ID: 1, Name: "Dune", Available: false}
	created := []orderDomain.Order{{ID: 1, BookID: 1, BookName: "Dune", UserID: memberIdent.AccountID, Open: true}}
	h := lendingHandlerWith(b, &created)

	c, rec := postJSON(e, "/orders/1/return", `{"actual_date":"2025-01-05"}`)
	c.SetParamNames("order_id")
	c.SetParamValues("1")
	withIdentity(c, memberIdent)
	if err := h.Close(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	if b.Available {
		t.Fatal("rejected close released the book")
	}
}

func TestClose_AdminSuccess(t *testing.T) {
	e := newTestEcho()
	b := &bookDomain.Book{ID: 1, Name: "Dune", Available: false}
	created := []orderDomain.Order{{ID: 1, BookID: 1, BookName: "Dune", UserID: memberIdent.AccountID, Open: true}}
	h := lendingHandlerWith(b, &created)

	c, rec := postJSON(e, "/orders/1/return", `{"actual_date":"2025-01-05"}`)
	c.SetParamNames("order_id")
	c.SetParamValues("1")
	withIdentity(c, adminIdent)
	if err := h.Close(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body=%s", rec.Code, rec.Body.String())
	}

	var dto lending.OrderDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if dto.Open || dto.ActualReturnDate == nil {
		t.Fatalf("unexpected dto: %+v", dto)
	}
	if !b.Available {
		t.Fatal("book not released")
	}
}

func TestClose_UnknownOrder_NotFound(t *testing.T) {
	e := newTestEcho()
	b := &bookDomain.Book{ID: 1, Name: "Dune", Available: false}
	var created []orderDomain.Order
	h := lendingHandlerWith(b, &created)

	c, rec := postJSON(e, "/orders/9/return", `{"actual_date":"2025-01-05"}`)
	c.SetParamNames("order_id")
	c.SetParamValues("9")
	withIdentity(c, adminIdent)
	if err := h.Close(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestClose_BadOrderID(t *testing.T) {
	e := newTestEcho()
	var created []orderDomain.Order
	h := lendingHandlerWith(nil, &created)

	c, rec := postJSON(e, "/orders/abc/return", `{"actual_date":"2025-01-05"}`)
	c.SetParamNames("order_id")
	c.SetParamValues("abc")
	withIdentity(c, adminIdent)
	if err := h.Close(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
