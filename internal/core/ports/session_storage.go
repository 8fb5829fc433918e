package ports

import "context"

// Keys under which the session is persisted.
const (
	TokenKey = "token"
	UserKey  = "user"
)

// SessionStorage is the durable key/value store backing the session.
// Get reports ok=false for a missing key; Delete ignores missing keys.
type SessionStorage interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}
