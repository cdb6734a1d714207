package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenloop/recycle-market/internal/utils"
)

func invoke(t *testing.T, secret, authHeader string) (*httptest.ResponseRecorder, echo.Context, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	next := func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	}
	require.NoError(t, JWTAuth(secret, nil)(next)(c))
	return rec, c, called
}

func TestJWTAuth_MissingBearer(t *testing.T) {
	rec, _, called := invoke(t, "s", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestJWTAuth_ValidToken(t *testing.T) {
	tok, err := utils.NewAccessToken("s", 42, 30)
	require.NoError(t, err)

	rec, c, called := invoke(t, "s", "Bearer "+tok.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
	assert.Equal(t, uint64(42), c.Get(CtxUserID))
	assert.Equal(t, tok.ID, c.Get(CtxTokenJTI))
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	tok, err := utils.NewAccessToken("s", 42, -1)
	require.NoError(t, err)

	rec, _, called := invoke(t, "s", "Bearer "+tok.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestJWTAuth_WrongSecret(t *testing.T) {
	tok, err := utils.NewAccessToken("other", 42, 30)
	require.NoError(t, err)

	rec, _, called := invoke(t, "s", "Bearer "+tok.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestJWTAuth_Garbage(t *testing.T) {
	rec, _, called := invoke(t, "s", "Bearer not.a.jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}
