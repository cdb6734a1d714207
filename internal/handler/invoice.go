package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/greenloop/recycle-market/internal/model"
	"github.com/greenloop/recycle-market/internal/repository"
)

// InvoiceHandler serves invoice CRUD.
type InvoiceHandler struct {
	Invoices *repository.InvoiceRepo
}

func NewInvoiceHandler(invoices *repository.InvoiceRepo) *InvoiceHandler {
	return &InvoiceHandler{Invoices: invoices}
}

type createInvoiceReq struct {
	Date          time.Time `json:"date"`
	TotalPrice    string    `json:"total_price"`
	PaymentMethod string    `json:"payment_method"`
	UserID        uint64    `json:"user_id"`
}

// CreateInvoice handles POST /invoices/.
func (h *InvoiceHandler) CreateInvoice(c echo.Context) error {
	var req createInvoiceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Date.IsZero() {
		req.Date = time.Now().UTC()
	}
	inv := &model.Invoice{
		Date:          req.Date,
		TotalPrice:    req.TotalPrice,
		PaymentMethod: req.PaymentMethod,
		UserID:        req.UserID,
	}
	if err := h.Invoices.Create(c.Request().Context(), inv); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "create invoice failed"})
	}
	return c.JSON(http.StatusCreated, inv)
}

// GetInvoice handles GET /invoices/:id.
func (h *InvoiceHandler) GetInvoice(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	inv, err := h.Invoices.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "invoice not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, inv)
}

// ListInvoices handles GET /invoices/?skip&limit.
func (h *InvoiceHandler) ListInvoices(c echo.Context) error {
	skip, limit := parsePaging(c)
	list, err := h.Invoices.List(c.Request().Context(), skip, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, list)
}

// DeleteInvoice handles DELETE /invoices/:id.
func (h *InvoiceHandler) DeleteInvoice(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Invoices.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "invoice not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "invoice deleted"})
}
