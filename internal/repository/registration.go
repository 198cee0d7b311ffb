package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/campushub/events-api/internal/domain"
	"github.com/campushub/events-api/internal/store"
)

type RegistrationRepository struct {
	store store.Store
}

func NewRegistrationRepository(st store.Store) *RegistrationRepository {
	return &RegistrationRepository{
		store: st,
	}
}

func (r *RegistrationRepository) List(ctx context.Context) ([]domain.Registration, error) {
	registrations, err := r.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.load -> %w", err)
	}

	return registrations, nil
}

func (r *RegistrationRepository) ListByEvent(ctx context.Context, eventID string) ([]domain.Registration, error) {
	registrations, err := r.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.load -> %w", err)
	}

	filtered := make([]domain.Registration, 0)
	for _, reg := range registrations {
		if reg.EventID == eventID {
			filtered = append(filtered, reg)
		}
	}

	return filtered, nil
}

func (r *RegistrationRepository) ListByUser(ctx context.Context, userID string) ([]domain.Registration, error) {
	registrations, err := r.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.load -> %w", err)
	}

	filtered := make([]domain.Registration, 0)
	for _, reg := range registrations {
		if reg.UserID == userID {
			filtered = append(filtered, reg)
		}
	}

	return filtered, nil
}

func (r *RegistrationRepository) CountByEvent(ctx context.Context, eventID string) (int, error) {
	registrations, err := r.ListByEvent(ctx, eventID)
	if err != nil {
		return 0, fmt.Errorf("r.ListByEvent -> %w", err)
	}

	return len(registrations), nil
}

// Exists reports whether a registration for the (eventID, userID) pair
// is already on file.
func (r *RegistrationRepository) Exists(ctx context.Context, eventID, userID string) (bool, error) {
	registrations, err := r.load(ctx)
	if err != nil {
		return false, fmt.Errorf("r.load -> %w", err)
	}

	for _, reg := range registrations {
		if reg.EventID == eventID && reg.UserID == userID {
			return true, nil
		}
	}

	return false, nil
}

func (r *RegistrationRepository) Create(ctx context.Context, registration domain.Registration) (domain.Registration, error) {
	registrations, err := r.load(ctx)
	if err != nil {
		return domain.Registration{}, fmt.Errorf("r.load -> %w", err)
	}

	registrations = append(registrations, registration)

	if err = r.save(ctx, registrations); err != nil {
		return domain.Registration{}, fmt.Errorf("r.save -> %w", err)
	}

	return registration, nil
}

func (r *RegistrationRepository) load(ctx context.Context) ([]domain.Registration, error) {
	blob, err := r.store.Get(ctx, store.KeyRegistrations)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return []domain.Registration{}, nil
		}

		return nil, fmt.Errorf("r.store.Get -> %w", err)
	}

	var registrations []domain.Registration
	if err = json.Unmarshal(blob, &registrations); err != nil {
		return nil, fmt.Errorf("json.Unmarshal -> %w", err)
	}

	return registrations, nil
}

func (r *RegistrationRepository) save(ctx context.Context, registrations []domain.Registration) error {
	blob, err := json.Marshal(registrations)
	if err != nil {
		return fmt.Errorf("json.Marshal -> %w", err)
	}

	if err = r.store.Put(ctx, store.KeyRegistrations, blob); err != nil {
		return fmt.Errorf("r.store.Put -> %w", err)
	}

	return nil
}
