package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/campushub/events-api/internal/domain"
)

type CreateEventRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	Date            string `json:"date" format:"YYYY-MM-DD"`
	Time            string `json:"time" format:"HH:MM"`
	Location        string `json:"location"`
	Category        string `json:"category"`
	ImageURL        string `json:"image_url,omitempty"`
	MaxParticipants int    `json:"max_participants,omitempty"`
}

func (req *CreateEventRequest) Validate() error {
	categories := make([]interface{}, 0, len(domain.EventCategories))
	for _, c := range domain.EventCategories {
		categories = append(categories, c)
	}

	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Description, validation.Required, validation.Length(2, 2000)),
		validation.Field(&req.Date, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&req.Time, validation.Required, validation.Date("15:04")),
		validation.Field(&req.Location, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Category, validation.Required, validation.In(categories...)),
		validation.Field(&req.MaxParticipants, validation.Min(0)),
	)
}

type UpdateEventStatusRequest struct {
	Status string `json:"status"`
}

func (req *UpdateEventStatusRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Status, validation.Required,
			validation.In(domain.EventStatusApproved, domain.EventStatusRejected)),
	)
}
