package domain

import "time"

const (
	RoleStudent = "student"
	RoleStaff   = "staff"
	RoleAdmin   = "admin"
)

type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Password   string    `json:"-"`
	Role       string    `json:"role"`
	Department string    `json:"department"`
	RollNo     string    `json:"roll_no,omitempty"`
	StudyYear  string    `json:"study_year,omitempty"`
	IDNo       string    `json:"id_no,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
