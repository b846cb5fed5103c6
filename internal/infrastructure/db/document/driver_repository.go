package document

import (
	"context"
	"sync"

	"github.com/minesite/dispatch-form/internal/core/ports"
)

var _ ports.DriverRepository = (*DriverRepository)(nil)

// DriverRepository stores the roster as a JSON array under dispatch_drivers.
type DriverRepository struct {
	kv ports.KVStore
	mu sync.Mutex
}

func NewDriverRepository(kv ports.KVStore) *DriverRepository {
	return &DriverRepository{kv: kv}
}

func (r *DriverRepository) List(ctx context.Context) ([]string, bool, error) {
	var drivers []string
	ok, err := load(ctx, r.kv, ports.KeyDrivers, &drivers)
	if err != nil {
		return nil, false, err
	}
	return drivers, ok, nil
}

func (r *DriverRepository) Save(ctx context.Context, drivers []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return save(ctx, r.kv, ports.KeyDrivers, nonNil(drivers))
}

func (r *DriverRepository) Update(ctx context.Context, fn func([]string) ([]string, error)) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, _, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	next, err := fn(current)
	if err != nil {
		return nil, err
	}
	next = nonNil(next)
	if err := save(ctx, r.kv, ports.KeyDrivers, next); err != nil {
		return nil, err
	}
	return next, nil
}

// nonNil keeps an empty roster encoded as [] rather than null.
func nonNil(drivers []string) []string {
	if drivers == nil {
		return []string{}
	}
	return drivers
}
