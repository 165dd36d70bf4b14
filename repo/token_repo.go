package repo

import (
	"context"
	"time"
)

// TokenRepo records revoked refresh-token ids. All durable mutable
// state of the auth service lives behind this interface.
type TokenRepo interface {
	// RevokeOnce marks jti as revoked for ttl and reports whether it
	// was already revoked. Check and mark are a single atomic step:
	// of N concurrent calls for one jti exactly one sees false.
	RevokeOnce(ctx context.Context, jti string, ttl time.Duration) (alreadyRevoked bool, err error)

	IsRevoked(ctx context.Context, jti string) (bool, error)
}
