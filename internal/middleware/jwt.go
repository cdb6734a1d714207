package middleware // middleware contains reusable HTTP middleware functions

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/greenloop/recycle-market/internal/repository"
	"github.com/greenloop/recycle-market/internal/utils"
)

// Context keys populated by JWTAuth for downstream handlers.
const (
	CtxUserID   = "user_id"   // uint64 subject of the verified token
	CtxTokenJTI = "token_jti" // string token id, used by logout
	CtxTokenExp = "token_exp" // time.Time expiry, used by logout
)

// JWTAuth returns an Echo middleware that validates a Bearer access token
// and injects the token's subject into the request context. The provided
// secret must match the one used when issuing tokens. Revoked tokens are
// rejected via the denylist; a nil denylist skips that check. This
// middleware wraps routes that require an authenticated user, so handlers
// can read the subject via c.Get(middleware.CtxUserID).
func JWTAuth(secret string, denylist *repository.Denylist) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			claims, err := utils.VerifyAccessToken(secret, raw)
			if err != nil {
				// Malformed, forged and expired tokens all read as 401 to
				// the client; the distinction stays server-side.
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}
			if denylist != nil && denylist.IsRevoked(c.Request().Context(), claims.JTI) {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "token revoked"})
			}

			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxTokenJTI, claims.JTI)
			c.Set(CtxTokenExp, claims.Exp)
			return next(c)
		}
	}
}
