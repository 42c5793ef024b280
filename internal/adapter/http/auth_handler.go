package http

import (
	"net/http"

	"booklend/internal/adapter/middleware"
	"booklend/internal/domain/account"
	"booklend/internal/session"
	"booklend/internal/usecase/auth"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	uc       *auth.Usecase
	sessions *session.Store
}

func NewAuthHandler(uc *auth.Usecase, sessions *session.Store) *AuthHandler {
	return &AuthHandler{uc: uc, sessions: sessions}
}

type signUpReq struct {
	Kind          string `json:"kind" validate:"required,oneof=member admin"`
	Name          string `json:"name" validate:"required"`
	Password      string `json:"password" validate:"required"`
	AuthorityCode string `json:"authority_code"`
}

func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err)
	}

	ident, err := h.uc.Register(c.Request().Context(), auth.RegisterInput{
		Kind:          account.Kind(req.Kind),
		Name:          req.Name,
		Password:      req.Password,
		AuthorityCode: req.AuthorityCode,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, ident)
}

type signInReq struct {
	Kind     string `json:"kind" validate:"required,oneof=member admin"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type signInResp struct {
	Token    string           `json:"token"`
	Identity account.Identity `json:"identity"`
}

func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err)
	}

	ident, err := h.uc.Authenticate(c.Request().Context(), auth.AuthenticateInput{
		Kind:     account.Kind(req.Kind),
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		return fail(c, err)
	}

	token, err := h.sessions.Create(c.Request().Context(), ident)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, signInResp{Token: token, Identity: ident})
}

func (h *AuthHandler) SignOut(c echo.Context) error {
	token, _ := c.Get(middleware.ContextKeyToken).(string)
	if err := h.sessions.Delete(c.Request().Context(), token); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type changePasswordReq struct {
	NewPassword string `json:"new_password" validate:"required"`
}

// ChangePassword overwrites the stored password for the acting identity.
// The live session stays valid; the new password applies from the next
// sign-in.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	ident, ok := identityFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "no session"})
	}

	var req changePasswordReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err)
	}

	if err := h.uc.ChangePassword(c.Request().Context(), ident, req.NewPassword); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
