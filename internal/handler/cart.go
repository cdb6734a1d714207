package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/greenloop/recycle-market/internal/model"
	"github.com/greenloop/recycle-market/internal/repository"
)

// CartHandler serves cart CRUD. Creation requires an authenticated user;
// the entry is attributed to the resolved identity.
type CartHandler struct {
	Carts    *repository.CartRepo
	Identity *IdentityResolver
}

func NewCartHandler(carts *repository.CartRepo, identity *IdentityResolver) *CartHandler {
	return &CartHandler{Carts: carts, Identity: identity}
}

type createCartReq struct {
	ItemID      uint64 `json:"item_id"`
	Price       int    `json:"price"`
	Quantity    int    `json:"quantity"`
	Total       int    `json:"total"`
	RecycleType string `json:"recycle_type"`
}

// CreateCart handles POST /create_cart (bearer required). The user_id column
// always comes from the resolved identity, never from the request body.
func (h *CartHandler) CreateCart(c echo.Context) error {
	user, err := h.Identity.Resolve(c)
	if err != nil {
		if errors.Is(err, ErrInvalidToken) || errors.Is(err, ErrUserNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	var req createCartReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	cart := &model.Cart{
		ItemID:      req.ItemID,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Total:       req.Total,
		RecycleType: req.RecycleType,
		UserID:      user.ID,
	}
	if err := h.Carts.Create(c.Request().Context(), cart); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create cart failed"})
	}
	return c.JSON(http.StatusCreated, cart)
}

// GetCart handles GET /carts/:id.
func (h *CartHandler) GetCart(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	cart, err := h.Carts.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "cart not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, cart)
}

// ListCarts handles GET /carts/?skip&limit.
func (h *CartHandler) ListCarts(c echo.Context) error {
	skip, limit := parsePaging(c)
	carts, err := h.Carts.List(c.Request().Context(), skip, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, carts)
}

// DeleteCart handles DELETE /carts/:id.
func (h *CartHandler) DeleteCart(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Carts.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "cart not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "cart deleted"})
}
