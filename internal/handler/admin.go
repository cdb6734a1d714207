package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/greenloop/recycle-market/internal/config"
	"github.com/greenloop/recycle-market/internal/repository"
)

// AdminHandler creates back-office credential records.
type AdminHandler struct {
	Cfg    config.Config
	Admins *repository.AdminRepo
}

func NewAdminHandler(cfg config.Config, admins *repository.AdminRepo) *AdminHandler {
	return &AdminHandler{Cfg: cfg, Admins: admins}
}

// CreateAdmin handles POST /admin/?email&password. The password is hashed
// with the same bcrypt cost as user credentials.
func (h *AdminHandler) CreateAdmin(c echo.Context) error {
	email := strings.ToLower(strings.TrimSpace(c.QueryParam("email")))
	password := c.QueryParam("password")
	if email == "" || password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Admins.Create(ctx, email, password, h.Cfg.BcryptCost)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already registered"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create admin failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id, "email": email})
}
