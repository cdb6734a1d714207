package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/greenloop/recycle-market/internal/config"
	"github.com/greenloop/recycle-market/internal/repository"
	"github.com/greenloop/recycle-market/internal/utils"
)

func testCfg() config.Config {
	return config.Config{
		JWTSecret:    "test-secret",
		AccessTTLMin: 30,
		BcryptCost:   bcrypt.MinCost,
	}
}

func newAuthTest(t *testing.T) (*AuthHandler, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	users := repository.NewUserRepo(db)
	return NewAuthHandler(testCfg(), users, repository.NewDenylist(nil)), mock, db
}

func doJSON(e *echo.Echo, method, target, body string) (*httptest.ResponseRecorder, echo.Context) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return rec, e.NewContext(req, rec)
}

func TestCreateUser_Success(t *testing.T) {
	h, mock, db := newAuthTest(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO user").
		WithArgs("a@x.com", sqlmock.AnyArg(), "A", "B", "000").
		WillReturnResult(sqlmock.NewResult(1, 1))

	e := echo.New()
	rec, c := doJSON(e, http.MethodPost, "/create_user",
		`{"email":"a@x.com","password":"secret123","name":"A","surname":"B","phone":"000"}`)

	require.NoError(t, h.CreateUser(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp userPart
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint64(1), resp.ID)
	assert.Equal(t, "a@x.com", resp.Email)
	assert.NotContains(t, rec.Body.String(), "secret123")
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	h, mock, db := newAuthTest(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO user").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry"))

	e := echo.New()
	rec, c := doJSON(e, http.MethodPost, "/create_user",
		`{"email":"a@x.com","password":"secret123","name":"A","surname":"B","phone":"000"}`)

	require.NoError(t, h.CreateUser(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreateUser_MissingFields(t *testing.T) {
	h, _, db := newAuthTest(t)
	defer db.Close()

	e := echo.New()
	rec, c := doJSON(e, http.MethodPost, "/create_user", `{"email":"a@x.com"}`)

	require.NoError(t, h.CreateUser(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func userRow(hash string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "email", "password_hash", "name", "surname", "phone"}).
		AddRow(1, "a@x.com", hash, "A", "B", "000")
}

func TestLogin_UnknownEmail(t *testing.T) {
	h, mock, db := newAuthTest(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id,email,password_hash,name,surname,phone FROM user WHERE email").
		WithArgs("ghost@x.com").
		WillReturnError(sql.ErrNoRows)

	e := echo.New()
	rec, c := doJSON(e, http.MethodPost, "/login?email=ghost@x.com&password=whatever", "")

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
}

func TestLogin_WrongPassword(t *testing.T) {
	h, mock, db := newAuthTest(t)
	defer db.Close()

	hash, err := utils.HashPassword("secret123", bcrypt.MinCost)
	require.NoError(t, err)
	mock.ExpectQuery("SELECT id,email,password_hash,name,surname,phone FROM user WHERE email").
		WithArgs("a@x.com").
		WillReturnRows(userRow(hash))

	e := echo.New()
	rec, c := doJSON(e, http.MethodPost, "/login?email=a@x.com&password=wrong", "")

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_Success_TokenResolvesToUser(t *testing.T) {
	h, mock, db := newAuthTest(t)
	defer db.Close()

	hash, err := utils.HashPassword("secret123", bcrypt.MinCost)
	require.NoError(t, err)
	mock.ExpectQuery("SELECT id,email,password_hash,name,surname,phone FROM user WHERE email").
		WithArgs("a@x.com").
		WillReturnRows(userRow(hash))

	e := echo.New()
	rec, c := doJSON(e, http.MethodPost, "/login?email=a@x.com&password=secret123", "")

	require.NoError(t, h.Login(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp loginResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "A", resp.Name)
	assert.Equal(t, "B", resp.Surname)
	require.NotEmpty(t, resp.AccessToken)

	claims, err := utils.VerifyAccessToken("test-secret", resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), claims.UserID)
}

// Register, reject the duplicate, log in, then resolve the token back to the
// stored user.
func TestRegisterLoginResolve_Scenario(t *testing.T) {
	h, mock, db := newAuthTest(t)
	defer db.Close()
	e := echo.New()

	// register
	mock.ExpectExec("INSERT INTO user").
		WithArgs("a@x.com", sqlmock.AnyArg(), "A", "B", "000").
		WillReturnResult(sqlmock.NewResult(1, 1))
	rec, c := doJSON(e, http.MethodPost, "/create_user",
		`{"email":"a@x.com","password":"secret123","name":"A","surname":"B","phone":"000"}`)
	require.NoError(t, h.CreateUser(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	// duplicate registration
	mock.ExpectExec("INSERT INTO user").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry"))
	rec, c = doJSON(e, http.MethodPost, "/create_user",
		`{"email":"a@x.com","password":"secret123","name":"A","surname":"B","phone":"000"}`)
	require.NoError(t, h.CreateUser(c))
	require.Equal(t, http.StatusConflict, rec.Code)

	// login
	hash, err := utils.HashPassword("secret123", bcrypt.MinCost)
	require.NoError(t, err)
	mock.ExpectQuery("SELECT id,email,password_hash,name,surname,phone FROM user WHERE email").
		WithArgs("a@x.com").
		WillReturnRows(userRow(hash))
	rec, c = doJSON(e, http.MethodPost, "/login?email=a@x.com&password=secret123", "")
	require.NoError(t, h.Login(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp loginResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	claims, err := utils.VerifyAccessToken("test-secret", resp.AccessToken)
	require.NoError(t, err)

	// resolve the subject against the store
	mock.ExpectQuery("SELECT id,email,password_hash,name,surname,phone FROM user WHERE id").
		WithArgs(claims.UserID).
		WillReturnRows(userRow(hash))
	u, err := h.Users.GetByID(context.Background(), claims.UserID)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), u.ID)
	assert.Equal(t, "a@x.com", u.Email)
}
