package handler

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenloop/recycle-market/internal/middleware"
	"github.com/greenloop/recycle-market/internal/model"
	"github.com/greenloop/recycle-market/internal/repository"
)

func newCartTest(t *testing.T) (*CartHandler, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	users := repository.NewUserRepo(db)
	carts := repository.NewCartRepo(db)
	return NewCartHandler(carts, NewIdentityResolver(users)), mock, db
}

func TestCreateCart_AttributesResolvedUser(t *testing.T) {
	h, mock, db := newCartTest(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id,email,password_hash,name,surname,phone FROM user WHERE id").
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "name", "surname", "phone"}).
			AddRow(7, "a@x.com", "h", "A", "B", "000"))
	mock.ExpectExec("INSERT INTO cart").
		WithArgs(uint64(3), 10, 2, 20, "plastic", uint64(7)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	e := echo.New()
	// user_id in the body must be ignored in favor of the resolved identity
	rec, c := doJSON(e, http.MethodPost, "/create_cart",
		`{"item_id":3,"price":10,"quantity":2,"total":20,"recycle_type":"plastic","user_id":999}`)
	c.Set(middleware.CtxUserID, uint64(7))

	require.NoError(t, h.CreateCart(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var cart model.Cart
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cart))
	assert.Equal(t, uint64(7), cart.UserID)
	assert.Equal(t, uint64(1), cart.ID)
}

func TestCreateCart_UserDeletedAfterIssuance(t *testing.T) {
	h, mock, db := newCartTest(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id,email,password_hash,name,surname,phone FROM user WHERE id").
		WithArgs(uint64(7)).
		WillReturnError(sql.ErrNoRows)

	e := echo.New()
	rec, c := doJSON(e, http.MethodPost, "/create_cart",
		`{"item_id":3,"price":10,"quantity":2,"total":20,"recycle_type":"plastic"}`)
	c.Set(middleware.CtxUserID, uint64(7))

	require.NoError(t, h.CreateCart(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateCart_NoIdentity(t *testing.T) {
	h, _, db := newCartTest(t)
	defer db.Close()

	e := echo.New()
	rec, c := doJSON(e, http.MethodPost, "/create_cart",
		`{"item_id":3,"price":10,"quantity":2,"total":20,"recycle_type":"plastic"}`)

	require.NoError(t, h.CreateCart(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetCart_NotFound(t *testing.T) {
	h, mock, db := newCartTest(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id,item_id,price,quantity,total,recycle_type,user_id FROM cart WHERE id").
		WithArgs(uint64(404)).
		WillReturnError(sql.ErrNoRows)

	e := echo.New()
	rec, c := doJSON(e, http.MethodGet, "/carts/404", "")
	c.SetParamNames("id")
	c.SetParamValues("404")

	require.NoError(t, h.GetCart(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
