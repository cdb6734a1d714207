package repository

import (
	"context"
	"database/sql"

	"github.com/greenloop/recycle-market/internal/model"
)

// ItemRepo provides persistence for the 'item' catalog table.
type ItemRepo struct{ DB *sql.DB }

func NewItemRepo(db *sql.DB) *ItemRepo { return &ItemRepo{DB: db} }

// Create inserts an item and fills in its generated ID.
func (r *ItemRepo) Create(ctx context.Context, it *model.Item) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO item (name, description, price) VALUES (?,?,?)",
		it.Name, it.Description, it.Price)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	it.ID = uint64(id)
	return nil
}

// GetByID fetches an item by id.
func (r *ItemRepo) GetByID(ctx context.Context, id uint64) (model.Item, error) {
	var it model.Item
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,description,price FROM item WHERE id=? LIMIT 1",
		id).Scan(&it.ID, &it.Name, &it.Description, &it.Price)
	if err == sql.ErrNoRows {
		return model.Item{}, ErrNotFound
	}
	return it, err
}

// List returns items with simple offset/limit paging.
func (r *ItemRepo) List(ctx context.Context, skip, limit int) ([]model.Item, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,name,description,price FROM item ORDER BY id LIMIT ? OFFSET ?",
		limit, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Item{}
	for rows.Next() {
		var it model.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.Price); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// Update applies a whitelisted full update of the mutable columns. The
// column list is explicit so the update surface stays statically checkable.
func (r *ItemRepo) Update(ctx context.Context, id uint64, name, description string, price int) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE item SET name=?, description=?, price=? WHERE id=?",
		name, description, price, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// Distinguish a missing row from an update that changed nothing.
		var exists uint64
		err := r.DB.QueryRowContext(ctx, "SELECT id FROM item WHERE id=? LIMIT 1", id).Scan(&exists)
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Delete removes an item by id.
func (r *ItemRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM item WHERE id=?", id)
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
