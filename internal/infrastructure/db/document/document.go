// Package document stores each aggregate as one JSON document in a KV store,
// read and written whole.
package document

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/minesite/dispatch-form/internal/core/ports"
)

// load decodes the document under key into v. It reports false, leaving v
// untouched, when the key is absent.
func load(ctx context.Context, kv ports.KVStore, key string, v any) (bool, error) {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func save(ctx context.Context, kv ports.KVStore, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := kv.Set(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
