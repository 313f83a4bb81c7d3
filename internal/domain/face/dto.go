package face

import (
	"github.com/buildcrew/sitepulse-backend-go/internal/pkg/validator"
)

type SaveDescriptorRequest struct {
	Email      string    `json:"email"`
	Descriptor []float64 `json:"descriptor"`
}

func (r *SaveDescriptorRequest) Validate() error {
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

	if !validator.IsValidDescriptor(r.Descriptor) {
		errs = append(errs, validator.ValidationError{
			Field:   "descriptor",
			Message: "descriptor must be a numeric vector of exactly 128 elements",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DescriptorResponse struct {
	Email      string    `json:"email"`
	Descriptor []float64 `json:"descriptor"`
}
