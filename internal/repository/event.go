package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/campushub/events-api/internal/domain"
	"github.com/campushub/events-api/internal/store"
)

var ErrEventNotFound = errors.New("event not found")

type EventRepository struct {
	store store.Store
}

func NewEventRepository(st store.Store) *EventRepository {
	return &EventRepository{
		store: st,
	}
}

func (r *EventRepository) List(ctx context.Context) ([]domain.Event, error) {
	events, err := r.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.load -> %w", err)
	}

	return events, nil
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (domain.Event, error) {
	events, err := r.load(ctx)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.load -> %w", err)
	}

	for _, e := range events {
		if e.ID == id {
			return e, nil
		}
	}

	return domain.Event{}, ErrEventNotFound
}

func (r *EventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	events, err := r.load(ctx)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.load -> %w", err)
	}

	events = append(events, event)

	if err = r.save(ctx, events); err != nil {
		return domain.Event{}, fmt.Errorf("r.save -> %w", err)
	}

	return event, nil
}

// UpdateStatus overwrites the status field of the event with the given
// id and persists the collection. All other fields are untouched.
func (r *EventRepository) UpdateStatus(ctx context.Context, id, status string) (domain.Event, error) {
	events, err := r.load(ctx)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.load -> %w", err)
	}

	for i := range events {
		if events[i].ID == id {
			events[i].Status = status

			if err = r.save(ctx, events); err != nil {
				return domain.Event{}, fmt.Errorf("r.save -> %w", err)
			}

			return events[i], nil
		}
	}

	return domain.Event{}, ErrEventNotFound
}

func (r *EventRepository) load(ctx context.Context) ([]domain.Event, error) {
	blob, err := r.store.Get(ctx, store.KeyEvents)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return []domain.Event{}, nil
		}

		return nil, fmt.Errorf("r.store.Get -> %w", err)
	}

	var events []domain.Event
	if err = json.Unmarshal(blob, &events); err != nil {
		return nil, fmt.Errorf("json.Unmarshal -> %w", err)
	}

	return events, nil
}

func (r *EventRepository) save(ctx context.Context, events []domain.Event) error {
	blob, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("json.Marshal -> %w", err)
	}

	if err = r.store.Put(ctx, store.KeyEvents, blob); err != nil {
		return fmt.Errorf("r.store.Put -> %w", err)
	}

	return nil
}
