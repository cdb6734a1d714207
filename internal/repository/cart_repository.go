package repository

import (
	"context"
	"database/sql"

	"github.com/greenloop/recycle-market/internal/model"
)

// CartRepo provides persistence for the 'cart' table.
type CartRepo struct{ DB *sql.DB }

func NewCartRepo(db *sql.DB) *CartRepo { return &CartRepo{DB: db} }

// Create inserts a cart entry and fills in its generated ID. The user_id
// column comes from the resolved identity of the caller.
func (r *CartRepo) Create(ctx context.Context, cart *model.Cart) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO cart (item_id, price, quantity, total, recycle_type, user_id) VALUES (?,?,?,?,?,?)",
		cart.ItemID, cart.Price, cart.Quantity, cart.Total, cart.RecycleType, cart.UserID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	cart.ID = uint64(id)
	return nil
}

// GetByID fetches a cart entry by id.
func (r *CartRepo) GetByID(ctx context.Context, id uint64) (model.Cart, error) {
	var c model.Cart
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,item_id,price,quantity,total,recycle_type,user_id FROM cart WHERE id=? LIMIT 1",
		id).Scan(&c.ID, &c.ItemID, &c.Price, &c.Quantity, &c.Total, &c.RecycleType, &c.UserID)
	if err == sql.ErrNoRows {
		return model.Cart{}, ErrNotFound
	}
	return c, err
}

// List returns cart entries with simple offset/limit paging.
func (r *CartRepo) List(ctx context.Context, skip, limit int) ([]model.Cart, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,item_id,price,quantity,total,recycle_type,user_id FROM cart ORDER BY id LIMIT ? OFFSET ?",
		limit, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Cart{}
	for rows.Next() {
		var c model.Cart
		if err := rows.Scan(&c.ID, &c.ItemID, &c.Price, &c.Quantity, &c.Total, &c.RecycleType, &c.UserID); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Delete removes a cart entry by id.
func (r *CartRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM cart WHERE id=?", id)
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
