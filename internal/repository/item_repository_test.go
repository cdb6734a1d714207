package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/greenloop/recycle-market/internal/model"
)

func newTestItemRepo(t *testing.T) (*ItemRepo, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	return NewItemRepo(db), mock, db
}

func TestItemCreate_SetsID(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO item").
		WithArgs("Glass bottle", "500ml, clear", 3).
		WillReturnResult(sqlmock.NewResult(11, 1))

	item := model.Item{Name: "Glass bottle", Description: "500ml, clear", Price: 3}
	if err := repo.Create(context.Background(), &item); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.ID != 11 {
		t.Errorf("expected id=11, got %d", item.ID)
	}
}

func TestItemUpdate_NotFound(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE item SET").
		WithArgs("Glass bottle", "500ml, clear", 3, uint64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT id FROM item WHERE id").
		WithArgs(uint64(404)).
		WillReturnError(sql.ErrNoRows)

	err := repo.Update(context.Background(), 404, "Glass bottle", "500ml, clear", 3)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestItemUpdate_NoChange(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	// Zero rows affected but the row exists: the values were already set.
	mock.ExpectExec("UPDATE item SET").
		WithArgs("Glass bottle", "500ml, clear", 3, uint64(11)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT id FROM item WHERE id").
		WithArgs(uint64(11)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	if err := repo.Update(context.Background(), 11, "Glass bottle", "500ml, clear", 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestItemDelete_Success(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM item").
		WithArgs(uint64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), 11); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
