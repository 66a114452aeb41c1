package repositories

import (
	"context"
	"errors"

	"github.com/Dosada05/sports-calendar/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserEmailConflict = errors.New("user email conflict")
)

type UserRepository interface {
	Create(ctx context.Context, user models.User) error
	GetByEmail(ctx context.Context, email string) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, email string, fn func(models.User) (models.User, error)) (models.User, error)
	Delete(ctx context.Context, email string) (models.User, error)
}

type memoryUserRepository struct {
	store *Store
}

func NewMemoryUserRepository(store *Store) UserRepository {
	return &memoryUserRepository{store: store}
}

// Create fails with ErrUserEmailConflict when the email is already registered.
func (r *memoryUserRepository) Create(ctx context.Context, user models.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := r.store.Update(func(s Snapshot) (Snapshot, error) {
		return s.WithUserAdded(user)
	})
	return err
}

func (r *memoryUserRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}
	u, ok := r.store.Snapshot().FindUser(email)
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return u, nil
}

func (r *memoryUserRepository) List(ctx context.Context) ([]models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	snap := r.store.Snapshot()
	return append([]models.User{}, snap.Users...), nil
}

func (r *memoryUserRepository) Update(ctx context.Context, email string, fn func(models.User) (models.User, error)) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	var updated models.User
	_, err := r.store.Update(func(s Snapshot) (Snapshot, error) {
		current, ok := s.FindUser(email)
		if !ok {
			return s, ErrUserNotFound
		}
		next, err := fn(current)
		if err != nil {
			return s, err
		}
		next.Email = email
		updated = next
		return s.WithUserReplaced(next)
	})
	if err != nil {
		return models.User{}, err
	}
	return updated, nil
}

func (r *memoryUserRepository) Delete(ctx context.Context, email string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	var removed models.User
	_, err := r.store.Update(func(s Snapshot) (Snapshot, error) {
		u, ok := s.FindUser(email)
		if !ok {
			return s, ErrUserNotFound
		}
		removed = u
		return s.WithoutUser(email)
	})
	if err != nil {
		return models.User{}, err
	}
	return removed, nil
}
