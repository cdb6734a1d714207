package handler

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/greenloop/recycle-market/internal/model"
	"github.com/greenloop/recycle-market/internal/repository"
)

// IdentityResolver turns the verified token subject in the request context
// into a persisted user record. Resolution costs one store read per call and
// is never cached: a user deleted after token issuance stops resolving
// immediately.
type IdentityResolver struct {
	Users *repository.UserRepo
}

func NewIdentityResolver(users *repository.UserRepo) *IdentityResolver {
	return &IdentityResolver{Users: users}
}

var (
	// ErrInvalidToken means no verified subject is present on the request.
	ErrInvalidToken = errors.New("invalid token")
	// ErrUserNotFound means the token subject no longer maps to a user.
	ErrUserNotFound = errors.New("user not found")
)

// Resolve loads the user for the authenticated request. It expects the JWT
// middleware to have run already.
func (r *IdentityResolver) Resolve(c echo.Context) (model.User, error) {
	uid, err := getUserID(c)
	if err != nil {
		return model.User{}, ErrInvalidToken
	}
	u, err := r.Users.GetByID(c.Request().Context(), uid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, err
	}
	return u, nil
}
