package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

var (
	errConfirmPasswordMismatch = errors.New("confirm password doesn't match the password")
	errMissingStudentFields    = errors.New("roll number and study year are required for student signup")
	errMissingStaffFields      = errors.New("id number is required for staff signup")
)

type SignupRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Role            string `json:"role"`
	Department      string `json:"department"`
	RollNo          string `json:"roll_no,omitempty"`
	StudyYear       string `json:"study_year,omitempty"`
	IDNo            string `json:"id_no,omitempty"`
}

func (req *SignupRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required, validation.Length(6, 0)),
		validation.Field(&req.ConfirmPassword, validation.Required),
		validation.Field(&req.Role, validation.Required, validation.In("student", "staff")),
		validation.Field(&req.Department, validation.Required),
	)
	if err != nil {
		return err
	}

	if req.Password != req.ConfirmPassword {
		return errConfirmPasswordMismatch
	}

	switch req.Role {
	case "student":
		if req.RollNo == "" || req.StudyYear == "" {
			return errMissingStudentFields
		}
	case "staff":
		if req.IDNo == "" {
			return errMissingStaffFields
		}
	}

	return nil
}

type LoginRequest struct {
	// Identifier is either the account email or the display name.
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

func (req *LoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Identifier, validation.Required),
		validation.Field(&req.Password, validation.Required),
	)
}
