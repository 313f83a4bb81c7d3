package site

import (
	"github.com/buildcrew/sitepulse-backend-go/internal/pkg/validator"
)

type CreateSiteRequest struct {
	Name        string  `json:"name"`
	Location    *string `json:"location,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r *CreateSiteRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SiteResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Location    *string `json:"location,omitempty"`
	Description *string `json:"description,omitempty"`
	CreatedAt   string  `json:"created_at"`
}
