package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/campushub/events-api/internal/domain"
	"github.com/campushub/events-api/internal/store"
)

var (
	ErrUserEmailExists = errors.New("user already exists")
	ErrUserNotFound    = errors.New("user not found")
)

// userRecord is the stored shape of a user. domain.User hides the
// password from API payloads; the collection blob has to keep it.
type userRecord struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Password   string    `json:"password"`
	Role       string    `json:"role"`
	Department string    `json:"department"`
	RollNo     string    `json:"roll_no,omitempty"`
	StudyYear  string    `json:"study_year,omitempty"`
	IDNo       string    `json:"id_no,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func recordToDomain(rec userRecord) domain.User {
	return domain.User(rec)
}

func domainToRecord(u domain.User) userRecord {
	return userRecord(u)
}

// UserRepository keeps the users collection. Admin accounts are never
// written here; they are seeded and synthesized at login time.
type UserRepository struct {
	store store.Store
}

func NewUserRepository(st store.Store) *UserRepository {
	return &UserRepository{
		store: st,
	}
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	users, err := r.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.load -> %w", err)
	}

	return users, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (domain.User, error) {
	users, err := r.load(ctx)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.load -> %w", err)
	}

	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}

	return domain.User{}, ErrUserNotFound
}

// FindByCredentials scans the stored users in insertion order and
// returns the first one whose email or name equals identifier and
// whose password matches exactly. Comparison is deliberately
// plain-text and case-sensitive.
func (r *UserRepository) FindByCredentials(ctx context.Context, identifier, password string) (domain.User, error) {
	users, err := r.load(ctx)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.load -> %w", err)
	}

	for _, u := range users {
		if (u.Email == identifier || u.Name == identifier) && u.Password == password {
			return u, nil
		}
	}

	return domain.User{}, ErrUserNotFound
}

// Create appends user to the collection. The email must not already
// be on file (case-sensitive exact match); on conflict nothing is
// written.
func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	users, err := r.load(ctx)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.load -> %w", err)
	}

	for _, u := range users {
		if u.Email == user.Email {
			return domain.User{}, ErrUserEmailExists
		}
	}

	users = append(users, user)

	if err = r.save(ctx, users); err != nil {
		return domain.User{}, fmt.Errorf("r.save -> %w", err)
	}

	return user, nil
}

func (r *UserRepository) load(ctx context.Context) ([]domain.User, error) {
	blob, err := r.store.Get(ctx, store.KeyUsers)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return []domain.User{}, nil
		}

		return nil, fmt.Errorf("r.store.Get -> %w", err)
	}

	var records []userRecord
	if err = json.Unmarshal(blob, &records); err != nil {
		return nil, fmt.Errorf("json.Unmarshal -> %w", err)
	}

	users := make([]domain.User, 0, len(records))
	for _, rec := range records {
		users = append(users, recordToDomain(rec))
	}

	return users, nil
}

func (r *UserRepository) save(ctx context.Context, users []domain.User) error {
	records := make([]userRecord, 0, len(users))
	for _, u := range users {
		records = append(records, domainToRecord(u))
	}

	blob, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("json.Marshal -> %w", err)
	}

	if err = r.store.Put(ctx, store.KeyUsers, blob); err != nil {
		return fmt.Errorf("r.store.Put -> %w", err)
	}

	return nil
}
