package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"booklend/internal/session"

	"github.com/labstack/echo/v4"
)

// ContextKeyIdentity is where the resolved account.Identity lands in the
// echo context. Handlers read it and pass the identity explicitly into
// usecases; there is no other channel for "who is acting".
const ContextKeyIdentity = "identity"

// ContextKeyToken holds the raw session token, needed by sign-out.
const ContextKeyToken = "session_token"

const storeTimeout = 2 * time.Second

// Session resolves "Authorization: Bearer <token>" through the session
// store. Requests without a live session never reach the handler.
func Session(store *session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request())
			if token == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
			defer cancel()

			ident, err := store.Get(ctx, token)
			if errors.Is(err, session.ErrNotFound) {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid or expired session"})
			}
			if err != nil {
				return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "session store unavailable"})
			}

			c.Set(ContextKeyIdentity, ident)
			c.Set(ContextKeyToken, token)
			return next(c)
		}
	}
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if !strings.HasPrefix(h, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, prefix))
}
