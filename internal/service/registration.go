package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/campushub/events-api/internal/domain"
	"github.com/campushub/events-api/internal/repository"
)

var (
	ErrAlreadyRegistered = errors.New("already registered for this event")
	ErrEventFull         = errors.New("event is full")
	ErrEventNotApproved  = errors.New("event is not open for registration")
)

type RegistrationRepository interface {
	List(ctx context.Context) ([]domain.Registration, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Registration, error)
	CountByEvent(ctx context.Context, eventID string) (int, error)
	Exists(ctx context.Context, eventID, userID string) (bool, error)
	Create(ctx context.Context, registration domain.Registration) (domain.Registration, error)
}

type RegistrationEventRepository interface {
	FindByID(ctx context.Context, id string) (domain.Event, error)
}

type RegistrationService struct {
	repo   RegistrationRepository
	events RegistrationEventRepository
}

func NewRegistrationService(repo RegistrationRepository, events RegistrationEventRepository) *RegistrationService {
	return &RegistrationService{
		repo:   repo,
		events: events,
	}
}

// RegisterForEvent runs the admission-control sequence, in order:
// duplicate check, event lookup, approval check, capacity check, then
// the snapshot insert. Any failure leaves the collection untouched.
func (s *RegistrationService) RegisterForEvent(ctx context.Context, eventID string, user domain.User) (domain.Registration, error) {
	exists, err := s.repo.Exists(ctx, eventID, user.ID)
	if err != nil {
		return domain.Registration{}, fmt.Errorf("s.repo.Exists -> %w", err)
	}
	if exists {
		return domain.Registration{}, ErrAlreadyRegistered
	}

	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return domain.Registration{}, ErrEventNotFound
		}

		return domain.Registration{}, fmt.Errorf("s.events.FindByID -> %w", err)
	}

	if event.Status != domain.EventStatusApproved {
		return domain.Registration{}, ErrEventNotApproved
	}

	if event.MaxParticipants > 0 {
		count, err := s.repo.CountByEvent(ctx, eventID)
		if err != nil {
			return domain.Registration{}, fmt.Errorf("s.repo.CountByEvent -> %w", err)
		}

		if event.IsFull(count) {
			return domain.Registration{}, ErrEventFull
		}
	}

	registration := domain.NewRegistrationSnapshot(eventID, user)
	registration.ID = newID("reg")
	registration.RegisteredAt = time.Now()

	created, err := s.repo.Create(ctx, registration)
	if err != nil {
		return domain.Registration{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// CountRegistrations backs both admission control and the
// "N/M participants" display.
func (s *RegistrationService) CountRegistrations(ctx context.Context, eventID string) (int, error) {
	count, err := s.repo.CountByEvent(ctx, eventID)
	if err != nil {
		return 0, fmt.Errorf("s.repo.CountByEvent -> %w", err)
	}

	return count, nil
}

// RegisteredEvent joins a registration with the event it is for, for
// the "my registrations" view.
type RegisteredEvent struct {
	Registration domain.Registration `json:"registration"`
	Event        domain.Event        `json:"event"`
}

func (s *RegistrationService) MyRegistrations(ctx context.Context, userID string) ([]RegisteredEvent, error) {
	registrations, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListByUser -> %w", err)
	}

	joined := make([]RegisteredEvent, 0, len(registrations))
	for _, reg := range registrations {
		event, err := s.events.FindByID(ctx, reg.EventID)
		if err != nil && !errors.Is(err, repository.ErrEventNotFound) {
			return nil, fmt.Errorf("s.events.FindByID -> %w", err)
		}

		// An orphaned registration still shows up, with a zero event.
		joined = append(joined, RegisteredEvent{
			Registration: reg,
			Event:        event,
		})
	}

	return joined, nil
}

func (s *RegistrationService) ListRegistrations(ctx context.Context) ([]domain.Registration, error) {
	registrations, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return registrations, nil
}
