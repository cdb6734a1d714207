package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/greenloop/recycle-market/internal/config"
	"github.com/greenloop/recycle-market/internal/middleware"
	"github.com/greenloop/recycle-market/internal/repository"
	"github.com/greenloop/recycle-market/internal/utils"
)

// AuthHandler bundles dependencies for registration, login and logout.
type AuthHandler struct {
	Cfg      config.Config
	Users    *repository.UserRepo
	Denylist *repository.Denylist
}

func NewAuthHandler(cfg config.Config, users *repository.UserRepo, denylist *repository.Denylist) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: users, Denylist: denylist}
}

// ----- DTOs -----

type createUserReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Phone    string `json:"phone"`
}

type userPart struct {
	ID      uint64 `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Phone   string `json:"phone"`
}

type loginResp struct {
	Name        string    `json:"name"`
	Surname     string    `json:"surname"`
	AccessToken string    `json:"access_token"`
	Expires     time.Time `json:"expires"`
}

// CreateUser handles POST /create_user. Registration stores only the bcrypt
// credential; the plaintext is neither persisted nor logged.
func (h *AuthHandler) CreateUser(c echo.Context) error {
	var req createUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	uid, err := h.Users.Create(ctx, req.Email, req.Password, req.Name, req.Surname, req.Phone, h.Cfg.BcryptCost)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already registered"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}

	return c.JSON(http.StatusCreated, userPart{
		ID:      uid,
		Email:   req.Email,
		Name:    req.Name,
		Surname: req.Surname,
		Phone:   req.Phone,
	})
}

// Login handles POST /login?email&password. Credentials travel as query
// parameters. The check is single-attempt and synchronous: look the user up
// by email, verify the bcrypt credential, issue a token. An unknown email
// answers 402 and a wrong password 401, matching the documented interface.
func (h *AuthHandler) Login(c echo.Context) error {
	email := strings.ToLower(strings.TrimSpace(c.QueryParam("email")))
	password := c.QueryParam("password")
	if email == "" || password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusPaymentRequired, echo.Map{"error": "email not registered"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !utils.VerifyPassword(u.PasswordHash, password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "incorrect password"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}

	return c.JSON(http.StatusOK, loginResp{
		Name:        u.Name,
		Surname:     u.Surname,
		AccessToken: access.Token,
		Expires:     access.Exp,
	})
}

// Logout handles POST /logout (protected). The presented token's id goes on
// the denylist for the remainder of its lifetime, so it stops verifying
// before natural expiry. Without Redis this degrades to a no-op.
func (h *AuthHandler) Logout(c echo.Context) error {
	jti, _ := c.Get(middleware.CtxTokenJTI).(string)
	exp, _ := c.Get(middleware.CtxTokenExp).(time.Time)
	if jti == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	if err := h.Denylist.Revoke(c.Request().Context(), jti, exp); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "logout failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
