package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/events-api/internal/domain"
	"github.com/campushub/events-api/internal/repository"
	"github.com/campushub/events-api/internal/service"
	"github.com/campushub/events-api/internal/store"
)

type registrationFixture struct {
	svc    *service.RegistrationService
	events *service.EventService
}

func newRegistrationFixture() registrationFixture {
	st := store.NewMemoryStore()
	registrations := repository.NewRegistrationRepository(st)
	events := repository.NewEventRepository(st)

	return registrationFixture{
		svc:    service.NewRegistrationService(registrations, events),
		events: service.NewEventService(events),
	}
}

func (f registrationFixture) approvedEvent(t *testing.T, maxParticipants int) domain.Event {
	t.Helper()

	event := hackNight()
	event.MaxParticipants = maxParticipants

	created, err := f.events.CreateEvent(context.Background(), event, staff())
	require.NoError(t, err)
	require.Equal(t, domain.EventStatusApproved, created.Status)

	return created
}

func TestRegistrationService_RegisterForEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("snapshot carries the user identity", func(t *testing.T) {
		f := newRegistrationFixture()
		event := f.approvedEvent(t, 0)

		user := domain.User{
			ID:         "student-1",
			Name:       "Alice",
			Email:      "alice@x.edu",
			Role:       domain.RoleStudent,
			Department: "CSE",
			RollNo:     "21CS042",
		}

		reg, err := f.svc.RegisterForEvent(ctx, event.ID, user)
		require.NoError(t, err)

		assert.Regexp(t, `^reg-`, reg.ID)
		assert.Equal(t, event.ID, reg.EventID)
		assert.Equal(t, "student-1", reg.UserID)
		assert.Equal(t, "Alice", reg.UserName)
		assert.Equal(t, "alice@x.edu", reg.UserEmail)
		assert.Equal(t, domain.RoleStudent, reg.UserRole)
		assert.Equal(t, "CSE", reg.Department)
		assert.Equal(t, "21CS042", reg.RollNo)
		assert.False(t, reg.RegisteredAt.IsZero())
	})

	t.Run("duplicate registration is rejected and count is unchanged", func(t *testing.T) {
		f := newRegistrationFixture()
		event := f.approvedEvent(t, 0)
		user := domain.User{ID: "student-1", Name: "Alice"}

		_, err := f.svc.RegisterForEvent(ctx, event.ID, user)
		require.NoError(t, err)

		_, err = f.svc.RegisterForEvent(ctx, event.ID, user)
		assert.ErrorIs(t, err, service.ErrAlreadyRegistered)

		count, err := f.svc.CountRegistrations(ctx, event.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("capacity of one admits exactly one user", func(t *testing.T) {
		f := newRegistrationFixture()
		event := f.approvedEvent(t, 1)

		_, err := f.svc.RegisterForEvent(ctx, event.ID, domain.User{ID: "student-a", Name: "A"})
		require.NoError(t, err)

		_, err = f.svc.RegisterForEvent(ctx, event.ID, domain.User{ID: "student-b", Name: "B"})
		assert.ErrorIs(t, err, service.ErrEventFull)

		count, err := f.svc.CountRegistrations(ctx, event.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("registrations never exceed the cap", func(t *testing.T) {
		f := newRegistrationFixture()
		const seats = 5
		event := f.approvedEvent(t, seats)

		full := 0
		for i := 0; i < seats+3; i++ {
			user := domain.User{ID: fmt.Sprintf("student-%d", i), Name: fmt.Sprintf("User %d", i)}
			_, err := f.svc.RegisterForEvent(ctx, event.ID, user)
			if err != nil {
				assert.ErrorIs(t, err, service.ErrEventFull)
				full++
			}
		}

		assert.Equal(t, 3, full)

		count, err := f.svc.CountRegistrations(ctx, event.ID)
		require.NoError(t, err)
		assert.Equal(t, seats, count)
	})

	t.Run("unlimited event never fills", func(t *testing.T) {
		f := newRegistrationFixture()
		event := f.approvedEvent(t, 0)

		for i := 0; i < 25; i++ {
			user := domain.User{ID: fmt.Sprintf("student-%d", i), Name: fmt.Sprintf("User %d", i)}
			_, err := f.svc.RegisterForEvent(ctx, event.ID, user)
			require.NoError(t, err)
		}

		count, err := f.svc.CountRegistrations(ctx, event.ID)
		require.NoError(t, err)
		assert.Equal(t, 25, count)
	})

	t.Run("pending event is not open for registration", func(t *testing.T) {
		f := newRegistrationFixture()

		pending, err := f.events.CreateEvent(ctx, hackNight(), student())
		require.NoError(t, err)
		require.Equal(t, domain.EventStatusPending, pending.Status)

		_, err = f.svc.RegisterForEvent(ctx, pending.ID, domain.User{ID: "student-2", Name: "Bob"})
		assert.ErrorIs(t, err, service.ErrEventNotApproved)
	})

	t.Run("unknown event fails with not found", func(t *testing.T) {
		f := newRegistrationFixture()

		_, err := f.svc.RegisterForEvent(ctx, "event-missing", domain.User{ID: "student-1", Name: "Alice"})
		assert.ErrorIs(t, err, service.ErrEventNotFound)
	})
}

func TestRegistrationService_MyRegistrations(t *testing.T) {
	ctx := context.Background()
	f := newRegistrationFixture()

	first := f.approvedEvent(t, 0)

	concert := domain.Event{
		Title:       "Spring Concert",
		Description: "Annual cultural evening",
		Date:        "2026-04-11",
		Time:        "19:30",
		Location:    "Auditorium",
		Category:    "Cultural",
	}
	second, err := f.events.CreateEvent(ctx, concert, staff())
	require.NoError(t, err)

	alice := domain.User{ID: "student-1", Name: "Alice"}
	bob := domain.User{ID: "student-2", Name: "Bob"}

	_, err = f.svc.RegisterForEvent(ctx, first.ID, alice)
	require.NoError(t, err)
	_, err = f.svc.RegisterForEvent(ctx, second.ID, alice)
	require.NoError(t, err)
	_, err = f.svc.RegisterForEvent(ctx, first.ID, bob)
	require.NoError(t, err)

	mine, err := f.svc.MyRegistrations(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)

	assert.Equal(t, "Hack Night", mine[0].Event.Title)
	assert.Equal(t, "Spring Concert", mine[1].Event.Title)
	for _, re := range mine {
		assert.Equal(t, alice.ID, re.Registration.UserID)
	}

	all, err := f.svc.ListRegistrations(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
