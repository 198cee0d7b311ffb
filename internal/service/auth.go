package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/campushub/events-api/internal/domain"
	"github.com/campushub/events-api/internal/repository"
)

var (
	ErrUserEmailExists    = repository.ErrUserEmailExists
	ErrUserNotFound       = repository.ErrUserNotFound
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoSession          = repository.ErrNoSession
)

type AuthUserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByCredentials(ctx context.Context, identifier, password string) (domain.User, error)
}

type AuthSessionRepository interface {
	Get(ctx context.Context) (domain.User, error)
	Save(ctx context.Context, user domain.User) error
	Clear(ctx context.Context) error
}

type AuthService struct {
	users    AuthUserRepository
	sessions AuthSessionRepository
}

func NewAuthService(users AuthUserRepository, sessions AuthSessionRepository) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
	}
}

// Login resolves credentials in two tiers: the fixed admin seed table
// first, then the stored users. The identifier matches either email or
// display name; passwords are compared verbatim. On success the user
// snapshot is persisted as the current session.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (domain.User, error) {
	for _, acc := range domain.AdminAccounts {
		if acc.Username == identifier && acc.Password == password {
			admin := acc.SynthesizeAdmin()

			if err := s.sessions.Save(ctx, admin); err != nil {
				return domain.User{}, fmt.Errorf("s.sessions.Save -> %w", err)
			}

			return admin, nil
		}
	}

	user, err := s.users.FindByCredentials(ctx, identifier, password)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}

		return domain.User{}, fmt.Errorf("s.users.FindByCredentials -> %w", err)
	}

	if err = s.sessions.Save(ctx, user); err != nil {
		return domain.User{}, fmt.Errorf("s.sessions.Save -> %w", err)
	}

	return user, nil
}

// Signup registers a new user. The caller validates shape (password
// length, confirmation, role) before this point; the only check here
// is email uniqueness, enforced by the repository.
func (s *AuthService) Signup(ctx context.Context, user domain.User) (domain.User, error) {
	user.ID = newID(user.Role)
	user.CreatedAt = time.Now()

	// Exactly one of {rollNo, studyYear} or {idNo} belongs to each role.
	switch user.Role {
	case domain.RoleStudent:
		user.IDNo = ""
	case domain.RoleStaff:
		user.RollNo = ""
		user.StudyYear = ""
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.users.Create -> %w", err)
	}

	return created, nil
}

func (s *AuthService) CurrentUser(ctx context.Context) (domain.User, error) {
	user, err := s.sessions.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNoSession) {
			return domain.User{}, ErrNoSession
		}

		return domain.User{}, fmt.Errorf("s.sessions.Get -> %w", err)
	}

	return user, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("s.sessions.Clear -> %w", err)
	}

	return nil
}

// newID builds a role/kind prefixed unique identifier, e.g.
// student-6f1c..., event-a3b9...
func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
