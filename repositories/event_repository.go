package repositories

import (
	"context"
	"errors"

	"github.com/Dosada05/sports-calendar/models"
)

var (
	ErrEventNotFound = errors.New("event not found")
)

type EventRepository interface {
	// Create calls build with the next free id and stores the event it returns.
	Create(ctx context.Context, build func(id int) (models.Event, error)) (models.Event, error)
	GetByID(ctx context.Context, id int) (models.Event, error)
	List(ctx context.Context) ([]models.Event, error)
	// Update replaces the event with the result of fn (replace-by-id).
	Update(ctx context.Context, id int, fn func(models.Event) (models.Event, error)) (models.Event, error)
	// Delete removes the event together with its registrations and returns it.
	// A non-nil check runs against the stored event in the same update and
	// aborts the removal when it fails.
	Delete(ctx context.Context, id int, check func(models.Event) error) (models.Event, error)
	Version() int64
}

type memoryEventRepository struct {
	store *Store
}

func NewMemoryEventRepository(store *Store) EventRepository {
	return &memoryEventRepository{store: store}
}

func (r *memoryEventRepository) Create(ctx context.Context, build func(id int) (models.Event, error)) (models.Event, error) {
	if err := ctx.Err(); err != nil {
		return models.Event{}, err
	}

	var created models.Event
	_, err := r.store.Update(func(s Snapshot) (Snapshot, error) {
		e, err := build(s.NextEventID())
		if err != nil {
			return s, err
		}
		created = e.Clone()
		return s.WithEventAdded(e), nil
	})
	if err != nil {
		return models.Event{}, err
	}
	return created, nil
}

func (r *memoryEventRepository) GetByID(ctx context.Context, id int) (models.Event, error) {
	if err := ctx.Err(); err != nil {
		return models.Event{}, err
	}
	e, ok := r.store.Snapshot().FindEvent(id)
	if !ok {
		return models.Event{}, ErrEventNotFound
	}
	return e, nil
}

func (r *memoryEventRepository) List(ctx context.Context) ([]models.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	snap := r.store.Snapshot()
	events := make([]models.Event, 0, len(snap.Events))
	for _, e := range snap.Events {
		events = append(events, e.Clone())
	}
	return events, nil
}

func (r *memoryEventRepository) Update(ctx context.Context, id int, fn func(models.Event) (models.Event, error)) (models.Event, error) {
	if err := ctx.Err(); err != nil {
		return models.Event{}, err
	}

	var updated models.Event
	_, err := r.store.Update(func(s Snapshot) (Snapshot, error) {
		current, ok := s.FindEvent(id)
		if !ok {
			return s, ErrEventNotFound
		}
		next, err := fn(current)
		if err != nil {
			return s, err
		}
		next.ID = id
		updated = next.Clone()
		return s.WithEventReplaced(next)
	})
	if err != nil {
		return models.Event{}, err
	}
	return updated, nil
}

func (r *memoryEventRepository) Delete(ctx context.Context, id int, check func(models.Event) error) (models.Event, error) {
	if err := ctx.Err(); err != nil {
		return models.Event{}, err
	}

	var removed models.Event
	_, err := r.store.Update(func(s Snapshot) (Snapshot, error) {
		e, ok := s.FindEvent(id)
		if !ok {
			return s, ErrEventNotFound
		}
		if check != nil {
			if err := check(e); err != nil {
				return s, err
			}
		}
		removed = e
		return s.WithoutEvent(id)
	})
	if err != nil {
		return models.Event{}, err
	}
	return removed, nil
}

func (r *memoryEventRepository) Version() int64 {
	return r.store.Version()
}
