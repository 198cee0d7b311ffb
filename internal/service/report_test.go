package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/events-api/internal/repository"
	"github.com/campushub/events-api/internal/service"
	"github.com/campushub/events-api/internal/store"
)

func TestReportService_Tables(t *testing.T) {
	ctx := context.Background()

	st := store.NewMemoryStore()
	events := repository.NewEventRepository(st)
	registrations := repository.NewRegistrationRepository(st)
	users := repository.NewUserRepository(st)

	eventSvc := service.NewEventService(events)
	regSvc := service.NewRegistrationService(registrations, events)
	authSvc := service.NewAuthService(users, repository.NewSessionRepository(st))
	reportSvc := service.NewReportService(events, registrations, users)

	alice, err := authSvc.Signup(ctx, studentAlice())
	require.NoError(t, err)

	capped := hackNight()
	capped.MaxParticipants = 50
	event, err := eventSvc.CreateEvent(ctx, capped, staff())
	require.NoError(t, err)

	_, err = regSvc.RegisterForEvent(ctx, event.ID, alice)
	require.NoError(t, err)

	t.Run("events table", func(t *testing.T) {
		table, err := reportSvc.EventsTable(ctx)
		require.NoError(t, err)

		assert.Equal(t, "events", table.Name)
		assert.Equal(t, []string{
			"Event ID", "Title", "Description", "Date", "Time", "Location",
			"Category", "Created By", "Creator Role", "Status",
			"Max Participants", "Created At",
		}, table.Headers)

		require.Len(t, table.Rows, 1)
		row := table.Rows[0]
		assert.Equal(t, event.ID, row[0])
		assert.Equal(t, "Hack Night", row[1])
		assert.Equal(t, "50", row[10])
	})

	t.Run("uncapped event renders Unlimited", func(t *testing.T) {
		open := hackNight()
		open.Title = "Open Mic"
		_, err := eventSvc.CreateEvent(ctx, open, staff())
		require.NoError(t, err)

		table, err := reportSvc.EventsTable(ctx)
		require.NoError(t, err)

		require.Len(t, table.Rows, 2)
		assert.Equal(t, "Unlimited", table.Rows[1][10])
	})

	t.Run("registrations table joins the event title", func(t *testing.T) {
		table, err := reportSvc.RegistrationsTable(ctx)
		require.NoError(t, err)

		require.Len(t, table.Rows, 1)
		row := table.Rows[0]
		assert.Equal(t, "Hack Night", row[1])
		assert.Equal(t, "Alice", row[2])
		assert.Equal(t, "21CS042", row[6], "roll number fills the Roll/ID column")
	})

	t.Run("users table uses N/A for absent role fields", func(t *testing.T) {
		table, err := reportSvc.UsersTable(ctx)
		require.NoError(t, err)

		require.Len(t, table.Rows, 1)
		row := table.Rows[0]
		assert.Equal(t, "Alice", row[1])
		assert.Equal(t, "21CS042", row[5])
		assert.Equal(t, "N/A", row[6], "students have no staff id number")
	})
}
