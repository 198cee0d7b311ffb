package domain

import "time"

const (
	EventStatusPending  = "pending"
	EventStatusApproved = "approved"
	EventStatusRejected = "rejected"
)

// EventCategories is the fixed category set offered by the creation form.
var EventCategories = []string{
	"Academic",
	"Cultural",
	"Sports",
	"Technical",
	"Workshop",
	"Seminar",
	"Competition",
	"Social",
	"Other",
}

// Event is a proposed or approved campus activity. Events created by
// staff or admins start approved; student proposals start pending and
// wait for an admin decision.
type Event struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	Location        string    `json:"location"`
	Category        string    `json:"category"`
	ImageURL        string    `json:"image_url,omitempty"`
	CreatedBy       string    `json:"created_by"`
	CreatedByName   string    `json:"created_by_name"`
	CreatedByRole   string    `json:"created_by_role"`
	Status          string    `json:"status"`
	MaxParticipants int       `json:"max_participants,omitempty"` // 0 means unlimited
	CreatedAt       time.Time `json:"created_at"`
}

// IsFull reports whether registered has reached the participant cap.
// Events without a cap are never full.
func (e Event) IsFull(registered int) bool {
	return e.MaxParticipants > 0 && registered >= e.MaxParticipants
}

// IsValidCategory reports whether c is part of the fixed category set.
func IsValidCategory(c string) bool {
	for _, category := range EventCategories {
		if category == c {
			return true
		}
	}

	return false
}
