package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/campushub/events-api/internal/domain"
	"github.com/campushub/events-api/internal/store"
)

var ErrNoSession = errors.New("no active session")

// SessionRepository keeps the single currentUser slot: a snapshot of
// the authenticated user, restored on the next process start.
type SessionRepository struct {
	store store.Store
}

func NewSessionRepository(st store.Store) *SessionRepository {
	return &SessionRepository{
		store: st,
	}
}

func (r *SessionRepository) Get(ctx context.Context) (domain.User, error) {
	blob, err := r.store.Get(ctx, store.KeyCurrentUser)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return domain.User{}, ErrNoSession
		}

		return domain.User{}, fmt.Errorf("r.store.Get -> %w", err)
	}

	var rec userRecord
	if err = json.Unmarshal(blob, &rec); err != nil {
		return domain.User{}, fmt.Errorf("json.Unmarshal -> %w", err)
	}

	return recordToDomain(rec), nil
}

func (r *SessionRepository) Save(ctx context.Context, user domain.User) error {
	blob, err := json.Marshal(domainToRecord(user))
	if err != nil {
		return fmt.Errorf("json.Marshal -> %w", err)
	}

	if err = r.store.Put(ctx, store.KeyCurrentUser, blob); err != nil {
		return fmt.Errorf("r.store.Put -> %w", err)
	}

	return nil
}

func (r *SessionRepository) Clear(ctx context.Context) error {
	if err := r.store.Delete(ctx, store.KeyCurrentUser); err != nil {
		return fmt.Errorf("r.store.Delete -> %w", err)
	}

	return nil
}
