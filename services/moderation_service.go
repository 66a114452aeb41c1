package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Dosada05/sports-calendar/calendar"
	"github.com/Dosada05/sports-calendar/models"
	"github.com/Dosada05/sports-calendar/repositories"
)

const notifyTimeout = 15 * time.Second

// ModerationResult is the outcome of an approve/reject action. The state change
// is already applied when NotificationError is set.
type ModerationResult struct {
	Event             *models.Event          `json:"event,omitempty"`
	User              *models.User           `json:"user,omitempty"`
	State             models.ModerationState `json:"state"`
	NotificationError string                 `json:"notification_error,omitempty"`
}

type ModerationService interface {
	ApproveEvent(ctx context.Context, id int) (ModerationResult, error)
	// RejectEvent removes the event. notify sends the rejection email, and only
	// applies to events still waiting in the pending queue.
	RejectEvent(ctx context.Context, id int, notify bool) (ModerationResult, error)
	Users(ctx context.Context, state models.ModerationState) ([]models.User, error)
	ApproveUser(ctx context.Context, email string) (ModerationResult, error)
	RejectUser(ctx context.Context, email string) (ModerationResult, error)
}

type moderationService struct {
	eventRepo repositories.EventRepository
	userRepo  repositories.UserRepository
	emails    *EmailService
	publisher Publisher
	files     FileReleaser
	logger    *slog.Logger
}

func NewModerationService(
	eventRepo repositories.EventRepository,
	userRepo repositories.UserRepository,
	emails *EmailService,
	publisher Publisher,
	files FileReleaser,
	logger *slog.Logger,
) ModerationService {
	return &moderationService{
		eventRepo: eventRepo,
		userRepo:  userRepo,
		emails:    emails,
		publisher: publisherOrNop(publisher),
		files:     releaserOrNop(files),
		logger:    logger,
	}
}

func (s *moderationService) ApproveEvent(ctx context.Context, id int) (ModerationResult, error) {
	approved, err := s.eventRepo.Update(ctx, id, func(e models.Event) (models.Event, error) {
		next, err := models.Transition(e.State, models.ActionApprove)
		if err != nil {
			return e, err
		}
		e.State = next
		return e, nil
	})
	if err != nil {
		return ModerationResult{}, mapRepoError(err)
	}

	s.logger.InfoContext(ctx, "event approved", slog.Int("event_id", id))
	s.publisher.Publish(calendar.MessageEventApproved, approved)

	result := ModerationResult{Event: &approved, State: approved.State}
	if approved.SubmittedBy != nil {
		result.NotificationError = s.notify(ctx, "event approval", func(ctx context.Context) error {
			return s.emails.SendEventApproved(ctx, approved)
		})
	}
	return result, nil
}

func (s *moderationService) RejectEvent(ctx context.Context, id int, notify bool) (ModerationResult, error) {
	var next models.ModerationState
	removed, err := s.eventRepo.Delete(ctx, id, func(e models.Event) error {
		var err error
		next, err = models.Transition(e.State, models.ActionReject)
		return err
	})
	if err != nil {
		return ModerationResult{}, mapRepoError(err)
	}

	s.logger.InfoContext(ctx, "event rejected",
		slog.Int("event_id", id),
		slog.String("previous_state", string(removed.State)),
	)
	s.publisher.Publish(calendar.MessageEventDeleted, map[string]interface{}{"id": id})
	s.files.Release(ctx, unreferencedURLs(ctx, s.eventRepo, removed.FileURLs())...)

	result := ModerationResult{Event: &removed, State: next}
	if notify && removed.State == models.StatePending && removed.SubmittedBy != nil {
		result.NotificationError = s.notify(ctx, "event rejection", func(ctx context.Context) error {
			return s.emails.SendEventRejected(ctx, removed)
		})
	}
	return result, nil
}

func (s *moderationService) Users(ctx context.Context, state models.ModerationState) ([]models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if state == "" {
		return users, nil
	}
	filtered := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.State == state {
			filtered = append(filtered, u)
		}
	}
	return filtered, nil
}

func (s *moderationService) ApproveUser(ctx context.Context, email string) (ModerationResult, error) {
	approved, err := s.userRepo.Update(ctx, email, func(u models.User) (models.User, error) {
		next, err := models.Transition(u.State, models.ActionApprove)
		if err != nil {
			return u, err
		}
		u.State = next
		return u, nil
	})
	if err != nil {
		return ModerationResult{}, mapRepoError(err)
	}

	s.logger.InfoContext(ctx, "user approved", slog.String("email", email))
	s.publisher.Publish(calendar.MessageUserApproved, nil)

	result := ModerationResult{User: &approved, State: approved.State}
	result.NotificationError = s.notify(ctx, "user approval", func(ctx context.Context) error {
		return s.emails.SendUserApproved(ctx, approved)
	})
	return result, nil
}

func (s *moderationService) RejectUser(ctx context.Context, email string) (ModerationResult, error) {
	current, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return ModerationResult{}, mapRepoError(err)
	}
	next, err := models.Transition(current.State, models.ActionReject)
	if err != nil {
		return ModerationResult{}, err
	}

	removed, err := s.userRepo.Delete(ctx, email)
	if err != nil {
		return ModerationResult{}, mapRepoError(err)
	}

	s.logger.InfoContext(ctx, "user rejected", slog.String("email", email))
	s.publisher.Publish(calendar.MessageUserDeleted, nil)

	result := ModerationResult{User: &removed, State: next}
	result.NotificationError = s.notify(ctx, "user rejection", func(ctx context.Context) error {
		return s.emails.SendUserRejected(ctx, removed)
	})
	return result, nil
}

// notify runs send with a bounded context. Failures are logged and returned as
// text; the moderation change stays applied.
func (s *moderationService) notify(ctx context.Context, kind string, send func(context.Context) error) string {
	if s.emails == nil {
		return ""
	}
	ctx, cancel := context.WithTimeout(ctx, notifyTimeout)
	defer cancel()

	if err := send(ctx); err != nil {
		s.logger.WarnContext(ctx, "notification failed", slog.String("kind", kind), slog.Any("error", err))
		return err.Error()
	}
	return ""
}
