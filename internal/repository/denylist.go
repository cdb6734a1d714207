package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Denylist tracks revoked access tokens by their jti claim. Entries expire
// together with the token they revoke, so the set never outgrows the number
// of live sessions. With a nil Redis client the denylist is a no-op and
// tokens remain valid until natural expiry.
type Denylist struct {
	RDB    *redis.Client
	Prefix string
}

func NewDenylist(rdb *redis.Client) *Denylist {
	return &Denylist{RDB: rdb, Prefix: "revoked"}
}

// Revoke marks a token id as revoked for the remainder of its lifetime.
func (d *Denylist) Revoke(ctx context.Context, jti string, exp time.Time) error {
	if d.RDB == nil || jti == "" {
		return nil
	}
	ttl := time.Until(exp)
	if ttl <= 0 {
		return nil // already expired, nothing to deny
	}
	return d.RDB.Set(ctx, d.Prefix+":"+jti, "1", ttl).Err()
}

// IsRevoked reports whether a token id has been revoked. Redis errors are
// treated as "not revoked" so an unavailable denylist never locks users out.
func (d *Denylist) IsRevoked(ctx context.Context, jti string) bool {
	if d.RDB == nil || jti == "" {
		return false
	}
	n, err := d.RDB.Exists(ctx, d.Prefix+":"+jti).Result()
	if err != nil {
		return false
	}
	return n > 0
}
