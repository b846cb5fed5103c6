package document

import (
	"context"
	"sync"

	"github.com/minesite/dispatch-form/internal/core/domain"
	"github.com/minesite/dispatch-form/internal/core/ports"
)

var _ ports.UserRepository = (*UserRepository)(nil)

// UserRepository keeps every account in the dispatch_users document.
type UserRepository struct {
	kv ports.KVStore
	mu sync.Mutex
}

func NewUserRepository(kv ports.KVStore) *UserRepository {
	return &UserRepository{kv: kv}
}

func (r *UserRepository) Initialized(ctx context.Context) (bool, error) {
	_, ok, err := r.kv.Get(ctx, ports.KeyUsers)
	return ok, err
}

func (r *UserRepository) Init(ctx context.Context, book *domain.UserBook) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ok, err := r.Initialized(ctx)
	if err != nil || ok {
		return err
	}
	return save(ctx, r.kv, ports.KeyUsers, book)
}

func (r *UserRepository) List(ctx context.Context) ([]domain.Account, error) {
	book, err := r.book(ctx)
	if err != nil {
		return nil, err
	}
	return book.Accounts(), nil
}

func (r *UserRepository) Find(ctx context.Context, username string) (*domain.Account, error) {
	book, err := r.book(ctx)
	if err != nil {
		return nil, err
	}
	a, ok := book.Lookup(username)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &a, nil
}

func (r *UserRepository) Create(ctx context.Context, account domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	book, err := r.book(ctx)
	if err != nil {
		return err
	}
	if err := book.Add(account); err != nil {
		return err
	}
	return save(ctx, r.kv, ports.KeyUsers, book)
}

func (r *UserRepository) Delete(ctx context.Context, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	book, err := r.book(ctx)
	if err != nil {
		return false, err
	}
	if !book.Remove(username) {
		return false, nil
	}
	return true, save(ctx, r.kv, ports.KeyUsers, book)
}

// book loads the users document; an absent document reads as empty.
func (r *UserRepository) book(ctx context.Context) (*domain.UserBook, error) {
	book := &domain.UserBook{}
	if _, err := load(ctx, r.kv, ports.KeyUsers, book); err != nil {
		return nil, err
	}
	return book, nil
}
