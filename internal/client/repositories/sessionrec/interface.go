// Package sessionrec persists the client session record (bearer token and
// serialized user) in the local database. Token and user are always written
// and cleared together; a row present without its sibling is treated as an
// absent session by the caller.
package sessionrec

import "context"

// Keys of the two session rows.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Clear(ctx context.Context) error
}
