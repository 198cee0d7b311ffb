package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/campushub/events-api/internal/domain"
	"github.com/campushub/events-api/internal/repository"
)

var (
	ErrEventNotFound     = repository.ErrEventNotFound
	ErrInvalidCategory   = errors.New("invalid event category")
	ErrInvalidTransition = errors.New("status must be approved or rejected")
)

type EventRepository interface {
	List(ctx context.Context) ([]domain.Event, error)
	FindByID(ctx context.Context, id string) (domain.Event, error)
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	UpdateStatus(ctx context.Context, id, status string) (domain.Event, error)
}

// EventFilter narrows ListEvents. Zero values match everything.
type EventFilter struct {
	Status   string
	Category string
	Query    string
}

type EventService struct {
	repo EventRepository
}

func NewEventService(repo EventRepository) *EventService {
	return &EventService{
		repo: repo,
	}
}

// CreateEvent stamps identity, creation time and the initial status:
// approved for staff and admin creators, pending for students.
func (s *EventService) CreateEvent(ctx context.Context, event domain.Event, creator domain.User) (domain.Event, error) {
	if !domain.IsValidCategory(event.Category) {
		return domain.Event{}, ErrInvalidCategory
	}

	event.ID = newID("event")
	event.CreatedBy = creator.ID
	event.CreatedByName = creator.Name
	event.CreatedByRole = creator.Role
	event.CreatedAt = time.Now()

	switch creator.Role {
	case domain.RoleAdmin, domain.RoleStaff:
		event.Status = domain.EventStatusApproved
	default:
		event.Status = domain.EventStatusPending
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// SetEventStatus is the admin review action. Re-transitioning an
// already approved or rejected event is allowed; an unknown id fails
// with ErrEventNotFound.
func (s *EventService) SetEventStatus(ctx context.Context, id, status string) (domain.Event, error) {
	if status != domain.EventStatusApproved && status != domain.EventStatusRejected {
		return domain.Event{}, ErrInvalidTransition
	}

	event, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return domain.Event{}, ErrEventNotFound
		}

		return domain.Event{}, fmt.Errorf("s.repo.UpdateStatus -> %w", err)
	}

	return event, nil
}

func (s *EventService) GetEvent(ctx context.Context, id string) (domain.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return domain.Event{}, ErrEventNotFound
		}

		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return event, nil
}

// ListEvents returns events matching the filter, in insertion order.
func (s *EventService) ListEvents(ctx context.Context, filter EventFilter) ([]domain.Event, error) {
	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	filtered := make([]domain.Event, 0, len(events))
	for _, e := range events {
		if filter.Status != "" && e.Status != filter.Status {
			continue
		}
		if filter.Category != "" && e.Category != filter.Category {
			continue
		}
		if filter.Query != "" && !matchesQuery(e, filter.Query) {
			continue
		}

		filtered = append(filtered, e)
	}

	return filtered, nil
}

func matchesQuery(e domain.Event, query string) bool {
	q := strings.ToLower(query)

	return strings.Contains(strings.ToLower(e.Title), q) ||
		strings.Contains(strings.ToLower(e.Description), q) ||
		strings.Contains(strings.ToLower(e.Location), q)
}
