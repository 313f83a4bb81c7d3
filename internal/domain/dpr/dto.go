package dpr

import (
	"github.com/buildcrew/sitepulse-backend-go/internal/pkg/validator"
)

type SaveDPRRequest struct {
	ProjectName    string          `json:"project_name"`
	Date           string          `json:"date"`
	SubNo          string          `json:"sub_no"`
	Weather        string          `json:"weather"`
	Temperature    string          `json:"temperature"`
	Humidity       string          `json:"humidity"`
	Start          string          `json:"start"`
	Finish         string          `json:"finish"`
	Remarks        string          `json:"remarks"`
	LabourReport   []LabourEntry   `json:"labour_report"`
	ToolsUsed      []MaterialEntry `json:"tools_used"`
	DeliveryReport []MaterialEntry `json:"delivery_report"`
	TodayWork      string          `json:"today_work"`
	CompletedWork  string          `json:"completed_work"`
	NextWork       string          `json:"next_work"`
}

func (r *SaveDPRRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ProjectName) {
		errs = append(errs, validator.ValidationError{
			Field:   "project_name",
			Message: "project_name is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DPRResponse struct {
	ID             string          `json:"id"`
	ProjectName    string          `json:"project_name"`
	Date           string          `json:"date"`
	SubNo          string          `json:"sub_no,omitempty"`
	Weather        string          `json:"weather,omitempty"`
	Temperature    string          `json:"temperature,omitempty"`
	Humidity       string          `json:"humidity,omitempty"`
	Start          string          `json:"start,omitempty"`
	Finish         string          `json:"finish,omitempty"`
	Remarks        string          `json:"remarks,omitempty"`
	LabourReport   []LabourEntry   `json:"labour_report"`
	ToolsUsed      []MaterialEntry `json:"tools_used"`
	DeliveryReport []MaterialEntry `json:"delivery_report"`
	TodayWork      string          `json:"today_work,omitempty"`
	CompletedWork  string          `json:"completed_work,omitempty"`
	NextWork       string          `json:"next_work,omitempty"`
	CreatedAt      string          `json:"created_at"`
}

// ExportResponse carries a generated spreadsheet.
type ExportResponse struct {
	Filename    string
	ContentType string
	Content     []byte
}
