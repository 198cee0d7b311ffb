package domain

import "time"

// Registration binds a user to an event. The user identity fields are
// a snapshot taken at registration time, not live references.
type Registration struct {
	ID           string    `json:"id"`
	EventID      string    `json:"event_id"`
	UserID       string    `json:"user_id"`
	UserName     string    `json:"user_name"`
	UserEmail    string    `json:"user_email"`
	UserRole     string    `json:"user_role"`
	Department   string    `json:"department"`
	RollNo       string    `json:"roll_no,omitempty"`
	IDNo         string    `json:"id_no,omitempty"`
	RegisteredAt time.Time `json:"registered_at"`
}

// NewRegistrationSnapshot copies the identity fields of user into a
// registration for event eventID.
func NewRegistrationSnapshot(eventID string, user User) Registration {
	return Registration{
		EventID:    eventID,
		UserID:     user.ID,
		UserName:   user.Name,
		UserEmail:  user.Email,
		UserRole:   user.Role,
		Department: user.Department,
		RollNo:     user.RollNo,
		IDNo:       user.IDNo,
	}
}
