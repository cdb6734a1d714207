package utils // package utils provides helper functions for token creation and hashing

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessToken represents a signed JWT access token along with its expiry.
// The Token field contains the JWT string. Access tokens are short-lived and
// carried in the Authorization header when calling protected endpoints; they
// are never persisted server-side.
type AccessToken struct {
	Token string    // the serialized JWT string
	ID    string    // the jti claim, used by the revocation denylist
	Exp   time.Time // the UTC expiration time
}

// Verification failures are reported through these sentinel errors so that
// callers can distinguish an unparsable token from a forged or stale one.
var (
	ErrTokenMalformed    = errors.New("token malformed")
	ErrTokenBadSignature = errors.New("token signature invalid")
	ErrTokenExpired      = errors.New("token expired")
)

// NewAccessToken builds and signs an HS256 JWT for a user. It takes the
// signing secret, the user ID and a TTL in minutes, and returns the signed
// token together with its id and expiration time. Claims are the standard
// set: subject (sub), expiration (exp), issued at (iat) and token id (jti).
func NewAccessToken(secret string, userID uint64, ttlMin int) (AccessToken, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(ttlMin) * time.Minute)
	jti, err := randomHex(16)
	if err != nil {
		return AccessToken{}, err
	}
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": exp.Unix(),
		"iat": now.Unix(),
		"jti": jti,
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, ID: jti, Exp: exp}, nil
}

// TokenClaims is the decoded, verified content of an access token.
type TokenClaims struct {
	UserID uint64    // subject
	JTI    string    // token id
	Exp    time.Time // expiry, used to size the revocation TTL
}

// VerifyAccessToken checks the signature and expiry of a token string and
// returns its decoded claims on success. Failures map to ErrTokenMalformed,
// ErrTokenBadSignature or ErrTokenExpired.
func VerifyAccessToken(secret, raw string) (TokenClaims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenBadSignature
		}
		return []byte(secret), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return TokenClaims{}, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return TokenClaims{}, ErrTokenBadSignature
		default:
			return TokenClaims{}, ErrTokenMalformed
		}
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok || !tok.Valid {
		return TokenClaims{}, ErrTokenMalformed
	}
	// Numeric JSON claims decode as float64.
	sub, ok := claims["sub"].(float64)
	if !ok {
		return TokenClaims{}, ErrTokenMalformed
	}
	out := TokenClaims{UserID: uint64(sub)}
	out.JTI, _ = claims["jti"].(string)
	if exp, ok := claims["exp"].(float64); ok {
		out.Exp = time.Unix(int64(exp), 0).UTC()
	}
	return out, nil
}

// randomHex returns a hex-encoded string generated from n bytes of
// cryptographically secure random data. It is used to produce token ids.
func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
