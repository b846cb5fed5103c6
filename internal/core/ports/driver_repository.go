package ports

import "context"

// DriverRepository persists the roster document.
type DriverRepository interface {
	// List returns the stored roster; ok is false when the document is absent.
	List(ctx context.Context) (drivers []string, ok bool, err error)
	Save(ctx context.Context, drivers []string) error
	// Update runs fn over the current roster and stores its result. fn sees an
	// empty roster when the document is absent.
	Update(ctx context.Context, fn func([]string) ([]string, error)) ([]string, error)
}
