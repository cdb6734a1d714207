package repository

import (
	"context"
	"database/sql"

	"github.com/greenloop/recycle-market/internal/model"
)

// CheckoutRepo provides persistence for the 'checkout' table.
type CheckoutRepo struct{ DB *sql.DB }

func NewCheckoutRepo(db *sql.DB) *CheckoutRepo { return &CheckoutRepo{DB: db} }

// Create inserts a checkout and fills in its generated ID.
func (r *CheckoutRepo) Create(ctx context.Context, co *model.Checkout) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO checkout (user_id, recycle_type, quantity, total, address, payment_type) VALUES (?,?,?,?,?,?)",
		co.UserID, co.RecycleType, co.Quantity, co.Total, co.Address, co.PaymentType)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	co.ID = uint64(id)
	return nil
}

// GetByID fetches a checkout by id.
func (r *CheckoutRepo) GetByID(ctx context.Context, id uint64) (model.Checkout, error) {
	var co model.Checkout
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,user_id,recycle_type,quantity,total,address,payment_type FROM checkout WHERE id=? LIMIT 1",
		id).Scan(&co.ID, &co.UserID, &co.RecycleType, &co.Quantity, &co.Total, &co.Address, &co.PaymentType)
	if err == sql.ErrNoRows {
		return model.Checkout{}, ErrNotFound
	}
	return co, err
}

// List returns checkouts with simple offset/limit paging.
func (r *CheckoutRepo) List(ctx context.Context, skip, limit int) ([]model.Checkout, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,user_id,recycle_type,quantity,total,address,payment_type FROM checkout ORDER BY id LIMIT ? OFFSET ?",
		limit, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Checkout{}
	for rows.Next() {
		var co model.Checkout
		if err := rows.Scan(&co.ID, &co.UserID, &co.RecycleType, &co.Quantity, &co.Total, &co.Address, &co.PaymentType); err != nil {
			return nil, err
		}
		out = append(out, co)
	}
	return out, rows.Err()
}

// Delete removes a checkout by id.
func (r *CheckoutRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM checkout WHERE id=?", id)
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
