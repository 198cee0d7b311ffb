package service

import (
	"context"
	"fmt"
	"strconv"
)

// Table is a flat row/column projection of a collection, with a fixed
// header order, ready to hand to the spreadsheet writer.
type Table struct {
	Name    string
	Headers []string
	Rows    [][]string
}

type ReportService struct {
	events        EventRepository
	registrations RegistrationRepository
	users         UserRepository
}

func NewReportService(events EventRepository, registrations RegistrationRepository, users UserRepository) *ReportService {
	return &ReportService{
		events:        events,
		registrations: registrations,
		users:         users,
	}
}

const dateLayout = "2006-01-02"

func (s *ReportService) EventsTable(ctx context.Context) (Table, error) {
	events, err := s.events.List(ctx)
	if err != nil {
		return Table{}, fmt.Errorf("s.events.List -> %w", err)
	}

	table := Table{
		Name: "events",
		Headers: []string{
			"Event ID", "Title", "Description", "Date", "Time", "Location",
			"Category", "Created By", "Creator Role", "Status",
			"Max Participants", "Created At",
		},
	}

	for _, e := range events {
		maxParticipants := "Unlimited"
		if e.MaxParticipants > 0 {
			maxParticipants = strconv.Itoa(e.MaxParticipants)
		}

		table.Rows = append(table.Rows, []string{
			e.ID, e.Title, e.Description, e.Date, e.Time, e.Location,
			e.Category, e.CreatedByName, e.CreatedByRole, e.Status,
			maxParticipants, e.CreatedAt.Format(dateLayout),
		})
	}

	return table, nil
}

func (s *ReportService) RegistrationsTable(ctx context.Context) (Table, error) {
	registrations, err := s.registrations.List(ctx)
	if err != nil {
		return Table{}, fmt.Errorf("s.registrations.List -> %w", err)
	}

	events, err := s.events.List(ctx)
	if err != nil {
		return Table{}, fmt.Errorf("s.events.List -> %w", err)
	}

	titles := make(map[string]string, len(events))
	for _, e := range events {
		titles[e.ID] = e.Title
	}

	table := Table{
		Name: "registrations",
		Headers: []string{
			"Registration ID", "Event Title", "User Name", "User Email",
			"Role", "Department", "Roll/ID Number", "Registered At",
		},
	}

	for _, reg := range registrations {
		title, ok := titles[reg.EventID]
		if !ok {
			title = "Unknown Event"
		}

		table.Rows = append(table.Rows, []string{
			reg.ID, title, reg.UserName, reg.UserEmail,
			reg.UserRole, reg.Department, orNA(reg.RollNo, reg.IDNo),
			reg.RegisteredAt.Format(dateLayout),
		})
	}

	return table, nil
}

func (s *ReportService) UsersTable(ctx context.Context) (Table, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return Table{}, fmt.Errorf("s.users.List -> %w", err)
	}

	table := Table{
		Name: "users",
		Headers: []string{
			"User ID", "Name", "Email", "Role", "Department",
			"Roll Number", "ID Number", "Study Year", "Created At",
		},
	}

	for _, u := range users {
		table.Rows = append(table.Rows, []string{
			u.ID, u.Name, u.Email, u.Role, u.Department,
			orNA(u.RollNo), orNA(u.IDNo), orNA(u.StudyYear),
			u.CreatedAt.Format(dateLayout),
		})
	}

	return table, nil
}

// orNA returns the first non-empty value, or "N/A".
func orNA(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return "N/A"
}
