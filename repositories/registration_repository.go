package repositories

import (
	"context"
	"time"

	"github.com/Dosada05/sports-calendar/models"
)

type RegistrationRepository interface {
	// Create runs check against the current event, then increments its
	// participant count and appends a registration in one update.
	Create(ctx context.Context, eventID int, userEmail *string, at time.Time, check func(models.Event) error) (models.Registration, models.Event, error)
	ListByEvent(ctx context.Context, eventID int) ([]models.Registration, error)
	ListByUser(ctx context.Context, email string) ([]models.Registration, error)
}

type memoryRegistrationRepository struct {
	store *Store
}

func NewMemoryRegistrationRepository(store *Store) RegistrationRepository {
	return &memoryRegistrationRepository{store: store}
}

func (r *memoryRegistrationRepository) Create(ctx context.Context, eventID int, userEmail *string, at time.Time, check func(models.Event) error) (models.Registration, models.Event, error) {
	if err := ctx.Err(); err != nil {
		return models.Registration{}, models.Event{}, err
	}

	var (
		reg   models.Registration
		event models.Event
	)
	_, err := r.store.Update(func(s Snapshot) (Snapshot, error) {
		e, ok := s.FindEvent(eventID)
		if !ok {
			return s, ErrEventNotFound
		}
		if check != nil {
			if err := check(e); err != nil {
				return s, err
			}
		}
		e.Participants++
		next, err := s.WithEventReplaced(e)
		if err != nil {
			return s, err
		}
		next, reg = next.WithRegistration(models.Registration{
			EventID:      eventID,
			UserEmail:    userEmail,
			RegisteredAt: at,
		})
		event = e
		return next, nil
	})
	if err != nil {
		return models.Registration{}, models.Event{}, err
	}
	return reg, event, nil
}

func (r *memoryRegistrationRepository) ListByEvent(ctx context.Context, eventID int) ([]models.Registration, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	regs := make([]models.Registration, 0)
	for _, reg := range r.store.Snapshot().Registrations {
		if reg.EventID == eventID {
			regs = append(regs, reg)
		}
	}
	return regs, nil
}

func (r *memoryRegistrationRepository) ListByUser(ctx context.Context, email string) ([]models.Registration, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	regs := make([]models.Registration, 0)
	for _, reg := range r.store.Snapshot().Registrations {
		if reg.UserEmail != nil && *reg.UserEmail == email {
			regs = append(regs, reg)
		}
	}
	return regs, nil
}
