package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"booklend/internal/domain/account"
	"booklend/internal/session"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

func testSessions(t *testing.T) *session.Store {
	t.Helper()
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return session.NewStore(rdb, 0)
}

func run(t *testing.T, store *session.Store, authz string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	if authz != "" {
		req.Header.Set(echo.HeaderAuthorization, authz)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	h := Session(store)(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Fatalf("middleware: %v", err)
	}
	return rec, reached
}

func TestSession_ResolvesIdentity(t *testing.T) {
	store := testSessions(t)
	ident := account.Identity{AccountID: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", Name: "alice", Kind: account.KindMember}
	token, err := store.Create(context.Background(), ident)
	if err != nil {
		t.Fatal(err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var got account.Identity
	h := Session(store)(func(c echo.Context) error {
		got, _ = c.Get(ContextKeyIdentity).(account.Identity)
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Fatalf("middleware: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got != ident {
		t.Fatalf("identity = %+v, want %+v", got, ident)
	}
	if tok, _ := c.Get(ContextKeyToken).(string); tok != token {
		t.Fatalf("token in context = %q", tok)
	}
}

func TestSession_MissingToken(t *testing.T) {
	rec, reached := run(t, testSessions(t), "")
	if reached {
		t.Fatal("handler reached without a token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestSession_UnknownToken(t *testing.T) {
	rec, reached := run(t, testSessions(t), "Bearer deadbeef")
	if reached {
		t.Fatal("handler reached with an unknown token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestSession_MalformedAuthorization(t *testing.T) {
	rec, reached := run(t, testSessions(t), "Basic Zm9vOmJhcg==")
	if reached {
		t.Fatal("handler reached with a non-bearer header")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
