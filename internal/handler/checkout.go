package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/greenloop/recycle-market/internal/model"
	"github.com/greenloop/recycle-market/internal/queue"
	"github.com/greenloop/recycle-market/internal/repository"
	queue_publisher "github.com/greenloop/recycle-market/internal/service"
)

// CheckoutHandler serves checkout CRUD. A created checkout is announced on
// the message broker best-effort; publish failures never fail the request.
type CheckoutHandler struct {
	Checkouts *repository.CheckoutRepo
}

func NewCheckoutHandler(checkouts *repository.CheckoutRepo) *CheckoutHandler {
	return &CheckoutHandler{Checkouts: checkouts}
}

type createCheckoutReq struct {
	UserID      uint64 `json:"user_id"`
	RecycleType string `json:"recycle_type"`
	Quantity    int    `json:"quantity"`
	Total       int    `json:"total"`
	Address     string `json:"address"`
	PaymentType string `json:"payment_type"`
}

// CreateCheckout handles POST /checkout/.
func (h *CheckoutHandler) CreateCheckout(c echo.Context) error {
	var req createCheckoutReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	co := &model.Checkout{
		UserID:      req.UserID,
		RecycleType: req.RecycleType,
		Quantity:    req.Quantity,
		Total:       req.Total,
		Address:     req.Address,
		PaymentType: req.PaymentType,
	}
	if err := h.Checkouts.Create(c.Request().Context(), co); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "create checkout failed"})
	}

	_ = queue_publisher.PublishCheckoutCreated(c.Request().Context(), queue.CheckoutCreatedEvent{
		CheckoutID:  co.ID,
		UserID:      co.UserID,
		RecycleType: co.RecycleType,
		Quantity:    co.Quantity,
		Total:       co.Total,
		Address:     co.Address,
		PaymentType: co.PaymentType,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, co)
}

// GetCheckout handles GET /checkout/:id.
func (h *CheckoutHandler) GetCheckout(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	co, err := h.Checkouts.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "checkout not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, co)
}

// ListCheckouts handles GET /checkout/?skip&limit.
func (h *CheckoutHandler) ListCheckouts(c echo.Context) error {
	skip, limit := parsePaging(c)
	list, err := h.Checkouts.List(c.Request().Context(), skip, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, list)
}

// DeleteCheckout handles DELETE /checkout/:id.
func (h *CheckoutHandler) DeleteCheckout(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Checkouts.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "checkout not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "checkout deleted"})
}
