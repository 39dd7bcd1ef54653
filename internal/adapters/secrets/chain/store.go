package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/hakambing/bikebuddy-bot/internal/adapters/secrets/file"
	passstore "github.com/hakambing/bikebuddy-bot/internal/adapters/secrets/pass"
	"github.com/hakambing/bikebuddy-bot/internal/ports"
)

var errNoStores = errors.New("secret chain needs at least one store")

// Store consults its backends in order. Reads and writes stop at the first
// backend that succeeds; deletes reach every backend so no stale copy survives.
type Store struct {
	stores []ports.SecretStore
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore(stores ...ports.SecretStore) (*Store, error) {
	if len(stores) == 0 {
		return nil, errNoStores
	}
	for i, store := range stores {
		if store == nil {
			return nil, fmt.Errorf("secret store %d is nil", i)
		}
	}

	return &Store{stores: stores}, nil
}

// NewPassThenFile prefers the pass password manager and falls back to files under
// fileRoot when pass is missing or fails.
func NewPassThenFile(fileRoot string) (*Store, error) {
	return NewStore(passstore.NewStore(), filestore.NewStore(fileRoot))
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var errs []error
	for _, store := range s.stores {
		value, err := store.Get(ctx, key)
		if err == nil {
			return value, nil
		}
		if isContextError(err) {
			return "", err
		}
		errs = append(errs, err)
	}

	return "", fmt.Errorf("get secret %q: %w", key, errors.Join(errs...))
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	var errs []error
	for _, store := range s.stores {
		err := store.Put(ctx, key, value)
		if err == nil {
			return nil
		}
		if isContextError(err) {
			return err
		}
		errs = append(errs, err)
	}

	return fmt.Errorf("put secret %q: %w", key, errors.Join(errs...))
}

func (s *Store) Delete(ctx context.Context, key string) error {
	var errs []error
	for _, store := range s.stores {
		if err := store.Delete(ctx, key); err != nil {
			if isContextError(err) {
				return err
			}
			errs = append(errs, err)
		}
	}

	if len(errs) == len(s.stores) {
		return fmt.Errorf("delete secret %q: %w", key, errors.Join(errs...))
	}
	return nil
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
