package task

import (
	"github.com/buildcrew/sitepulse-backend-go/internal/pkg/validator"
)

type AssignTaskRequest struct {
	Email      string `json:"email"`
	Task       string `json:"task"`
	AssignedBy string `json:"assigned_by"`
}

func (r *AssignTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not a valid address",
		})
	}

	if validator.IsEmpty(r.Task) {
		errs = append(errs, validator.ValidationError{
			Field:   "task",
			Message: "task is required",
		})
	}

	if validator.IsEmpty(r.AssignedBy) {
		errs = append(errs, validator.ValidationError{
			Field:   "assigned_by",
			Message: "assigned_by is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TaskResponse struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Task       string `json:"task"`
	AssignedBy string `json:"assigned_by"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

type TaskFilter struct {
	Email string `json:"email,omitempty"`
	Date  string `json:"date,omitempty"` // YYYY-MM-DD, local day
}

func (f *TaskFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Date != "" {
		if _, ok := validator.IsValidDate(f.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
