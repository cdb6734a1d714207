package repository

import (
	"context"
	"database/sql"

	"github.com/greenloop/recycle-market/internal/model"
)

// InvoiceRepo provides persistence for the 'invoice' table.
type InvoiceRepo struct{ DB *sql.DB }

func NewInvoiceRepo(db *sql.DB) *InvoiceRepo { return &InvoiceRepo{DB: db} }

// Create inserts an invoice and fills in its generated ID.
func (r *InvoiceRepo) Create(ctx context.Context, inv *model.Invoice) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO invoice (date, total_price, payment_method, user_id) VALUES (?,?,?,?)",
		inv.Date, inv.TotalPrice, inv.PaymentMethod, inv.UserID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	inv.ID = uint64(id)
	return nil
}

// GetByID fetches an invoice by id.
func (r *InvoiceRepo) GetByID(ctx context.Context, id uint64) (model.Invoice, error) {
	var inv model.Invoice
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,date,total_price,payment_method,user_id FROM invoice WHERE id=? LIMIT 1",
		id).Scan(&inv.ID, &inv.Date, &inv.TotalPrice, &inv.PaymentMethod, &inv.UserID)
	if err == sql.ErrNoRows {
		return model.Invoice{}, ErrNotFound
	}
	return inv, err
}

// List returns invoices with simple offset/limit paging.
func (r *InvoiceRepo) List(ctx context.Context, skip, limit int) ([]model.Invoice, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,date,total_price,payment_method,user_id FROM invoice ORDER BY id LIMIT ? OFFSET ?",
		limit, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Invoice{}
	for rows.Next() {
		var inv model.Invoice
		if err := rows.Scan(&inv.ID, &inv.Date, &inv.TotalPrice, &inv.PaymentMethod, &inv.UserID); err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

// Delete removes an invoice by id.
func (r *InvoiceRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM invoice WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
