package ports

import "context"

// Logical keys of the persisted documents.
const (
	KeyUsers       = "dispatch_users"
	KeySession     = "dispatch_current_user"
	KeyDrivers     = "dispatch_drivers"
	KeySubmissions = "dispatch_submissions"
)

// KVStore is the durable key-value store every document lives in. Each call
// is independent: there is no atomicity across keys.
type KVStore interface {
	// Get returns the value under key; ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}

// Pinger is implemented by stores that can report connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}
