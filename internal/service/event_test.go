package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/events-api/internal/domain"
	"github.com/campushub/events-api/internal/repository"
	"github.com/campushub/events-api/internal/service"
	"github.com/campushub/events-api/internal/store"
)

func newEventService() (*service.EventService, *repository.EventRepository) {
	repo := repository.NewEventRepository(store.NewMemoryStore())

	return service.NewEventService(repo), repo
}

func hackNight() domain.Event {
	return domain.Event{
		Title:       "Hack Night",
		Description: "Overnight hackathon in the main lab",
		Date:        "2026-10-03",
		Time:        "18:00",
		Location:    "CS Lab 2",
		Category:    "Technical",
	}
}

func student() domain.User {
	return domain.User{ID: "student-1", Name: "Alice", Role: domain.RoleStudent}
}

func staff() domain.User {
	return domain.User{ID: "staff-1", Name: "Bob", Role: domain.RoleStaff}
}

func admin() domain.User {
	return domain.User{ID: "admin-hod", Name: "Head of Department", Role: domain.RoleAdmin}
}

func TestEventService_CreateEvent(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		creator    domain.User
		wantStatus string
	}{
		{"student proposal starts pending", student(), domain.EventStatusPending},
		{"staff event starts approved", staff(), domain.EventStatusApproved},
		{"admin event starts approved", admin(), domain.EventStatusApproved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newEventService()

			created, err := svc.CreateEvent(ctx, hackNight(), tt.creator)
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, created.Status)
			assert.Equal(t, tt.creator.ID, created.CreatedBy)
			assert.Equal(t, tt.creator.Name, created.CreatedByName)
			assert.Equal(t, tt.creator.Role, created.CreatedByRole)
			assert.Regexp(t, `^event-`, created.ID)
			assert.False(t, created.CreatedAt.IsZero())
		})
	}

	t.Run("unknown category is rejected", func(t *testing.T) {
		svc, _ := newEventService()

		event := hackNight()
		event.Category = "Underwater Basket Weaving"

		_, err := svc.CreateEvent(ctx, event, staff())
		assert.ErrorIs(t, err, service.ErrInvalidCategory)
	})
}

func TestEventService_SetEventStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("pending to approved, all other fields untouched", func(t *testing.T) {
		svc, _ := newEventService()

		created, err := svc.CreateEvent(ctx, hackNight(), student())
		require.NoError(t, err)
		require.Equal(t, domain.EventStatusPending, created.Status)

		updated, err := svc.SetEventStatus(ctx, created.ID, domain.EventStatusApproved)
		require.NoError(t, err)
		assert.Equal(t, domain.EventStatusApproved, updated.Status)

		fetched, err := svc.GetEvent(ctx, created.ID)
		require.NoError(t, err)

		// The store round-trip strips the monotonic clock reading.
		assert.True(t, created.CreatedAt.Equal(fetched.CreatedAt))
		created.CreatedAt = fetched.CreatedAt
		created.Status = domain.EventStatusApproved
		assert.Equal(t, created, fetched)
	})

	t.Run("re-transition is allowed", func(t *testing.T) {
		svc, _ := newEventService()

		created, err := svc.CreateEvent(ctx, hackNight(), staff())
		require.NoError(t, err)

		updated, err := svc.SetEventStatus(ctx, created.ID, domain.EventStatusRejected)
		require.NoError(t, err)
		assert.Equal(t, domain.EventStatusRejected, updated.Status)

		updated, err = svc.SetEventStatus(ctx, created.ID, domain.EventStatusApproved)
		require.NoError(t, err)
		assert.Equal(t, domain.EventStatusApproved, updated.Status)
	})

	t.Run("unknown id fails with not found", func(t *testing.T) {
		svc, _ := newEventService()

		_, err := svc.SetEventStatus(ctx, "event-missing", domain.EventStatusApproved)
		assert.ErrorIs(t, err, service.ErrEventNotFound)
	})

	t.Run("pending is not a valid target status", func(t *testing.T) {
		svc, _ := newEventService()

		created, err := svc.CreateEvent(ctx, hackNight(), student())
		require.NoError(t, err)

		_, err = svc.SetEventStatus(ctx, created.ID, domain.EventStatusPending)
		assert.ErrorIs(t, err, service.ErrInvalidTransition)
	})
}

func TestEventService_ListEvents(t *testing.T) {
	ctx := context.Background()
	svc, _ := newEventService()

	first := hackNight()
	_, err := svc.CreateEvent(ctx, first, staff())
	require.NoError(t, err)

	second := domain.Event{
		Title:       "Spring Concert",
		Description: "Annual cultural evening",
		Date:        "2026-04-11",
		Time:        "19:30",
		Location:    "Auditorium",
		Category:    "Cultural",
	}
	_, err = svc.CreateEvent(ctx, second, student())
	require.NoError(t, err)

	t.Run("no filter returns everything in insertion order", func(t *testing.T) {
		events, err := svc.ListEvents(ctx, service.EventFilter{})
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, "Hack Night", events[0].Title)
		assert.Equal(t, "Spring Concert", events[1].Title)
	})

	t.Run("status filter", func(t *testing.T) {
		events, err := svc.ListEvents(ctx, service.EventFilter{Status: domain.EventStatusApproved})
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "Hack Night", events[0].Title)
	})

	t.Run("category filter", func(t *testing.T) {
		events, err := svc.ListEvents(ctx, service.EventFilter{Category: "Cultural"})
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "Spring Concert", events[0].Title)
	})

	t.Run("free text query is case insensitive", func(t *testing.T) {
		events, err := svc.ListEvents(ctx, service.EventFilter{Query: "auditorium"})
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "Spring Concert", events[0].Title)
	})
}
