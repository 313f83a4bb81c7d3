package dpr

import "context"

type DPRService interface {
	Save(ctx context.Context, req SaveDPRRequest) (DPRResponse, error)
	List(ctx context.Context) ([]DPRResponse, error)
	ListByDate(ctx context.Context, date string) ([]DPRResponse, error)

	// Export builds an XLSX where each report's labour, tools and delivery
	// arrays are expanded into parallel rows.
	Export(ctx context.Context, date string) (ExportResponse, error)
}
