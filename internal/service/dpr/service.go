package dpr

import (
	"context"
	"time"

	"github.com/buildcrew/sitepulse-backend-go/internal/domain/dpr"
	"github.com/buildcrew/sitepulse-backend-go/internal/pkg/export"
)

type DPRServiceImpl struct {
	dpr.DPRRepository
}

func NewDPRService(dprRepo dpr.DPRRepository) dpr.DPRService {
	return &DPRServiceImpl{DPRRepository: dprRepo}
}

// Save implements dpr.DPRService.
func (d *DPRServiceImpl) Save(ctx context.Context, req dpr.SaveDPRRequest) (dpr.DPRResponse, error) {
	if err := req.Validate(); err != nil {
		return dpr.DPRResponse{}, err
	}

	created, err := d.DPRRepository.Create(ctx, dpr.DPR{
		ProjectName:    req.ProjectName,
		Date:           req.Date,
		SubNo:          req.SubNo,
		Weather:        req.Weather,
		Temperature:    req.Temperature,
		Humidity:       req.Humidity,
		Start:          req.Start,
		Finish:         req.Finish,
		Remarks:        req.Remarks,
		LabourReport:   req.LabourReport,
		ToolsUsed:      req.ToolsUsed,
		DeliveryReport: req.DeliveryReport,
		TodayWork:      req.TodayWork,
		CompletedWork:  req.CompletedWork,
		NextWork:       req.NextWork,
	})
	if err != nil {
		return dpr.DPRResponse{}, err
	}

	return toResponse(created), nil
}

// List implements dpr.DPRService.
func (d *DPRServiceImpl) List(ctx context.Context) ([]dpr.DPRResponse, error) {
	reports, err := d.DPRRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(reports), nil
}

// ListByDate implements dpr.DPRService.
func (d *DPRServiceImpl) ListByDate(ctx context.Context, date string) ([]dpr.DPRResponse, error) {
	reports, err := d.DPRRepository.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	return toResponses(reports), nil
}

var exportHeader = []string{
	"Project", "Date", "SubNo", "Weather", "Temperature", "Humidity",
	"Start", "Finish", "Remarks", "TodayWork", "CompletedWork", "NextWork",
	"Contractor", "Bigaari", "Mistry", "Baai", "Timings", "Hours",
	"Tool_SrNo", "Tool_Unit", "Tool_Qty", "Tool_Description",
	"Delivery_SrNo", "Delivery_Unit", "Delivery_Qty", "Delivery_Description",
}

// Export implements dpr.DPRService. Each report contributes max(len(labour),
// len(tools), len(delivery), 1) rows: the three tables sit side by side and
// shorter tables pad with empty cells.
func (d *DPRServiceImpl) Export(ctx context.Context, date string) (dpr.ExportResponse, error) {
	reports, err := d.DPRRepository.ListByDate(ctx, date)
	if err != nil {
		return dpr.ExportResponse{}, err
	}
	if len(reports) == 0 {
		return dpr.ExportResponse{}, dpr.ErrDPRNotFound
	}

	sheet := export.Sheet{Name: "DPR", Header: exportHeader}

	for _, report := range reports {
		maxLen := len(report.LabourReport)
		if len(report.ToolsUsed) > maxLen {
			maxLen = len(report.ToolsUsed)
		}
		if len(report.DeliveryReport) > maxLen {
			maxLen = len(report.DeliveryReport)
		}
		if maxLen == 0 {
			maxLen = 1
		}

		for i := 0; i < maxLen; i++ {
			var labour dpr.LabourEntry
			if i < len(report.LabourReport) {
				labour = report.LabourReport[i]
			}
			var tool dpr.MaterialEntry
			if i < len(report.ToolsUsed) {
				tool = report.ToolsUsed[i]
			}
			var delivery dpr.MaterialEntry
			if i < len(report.DeliveryReport) {
				delivery = report.DeliveryReport[i]
			}

			sheet.Rows = append(sheet.Rows, []string{
				report.ProjectName, report.Date, report.SubNo, report.Weather,
				report.Temperature, report.Humidity, report.Start, report.Finish,
				report.Remarks, report.TodayWork, report.CompletedWork, report.NextWork,
				labour.Contractor, labour.Bigaari, labour.Mistry, labour.Baai,
				labour.Timings, labour.Hours,
				tool.SrNo, tool.Unit, tool.Qty, tool.Description,
				delivery.SrNo, delivery.Unit, delivery.Qty, delivery.Description,
			})
		}
	}

	content, err := sheet.XLSX()
	if err != nil {
		return dpr.ExportResponse{}, err
	}

	return dpr.ExportResponse{
		Filename:    "DPR_" + date + ".xlsx",
		ContentType: export.ContentTypeXLSX,
		Content:     content,
	}, nil
}

func toResponse(report dpr.DPR) dpr.DPRResponse {
	return dpr.DPRResponse{
		ID:             report.ID,
		ProjectName:    report.ProjectName,
		Date:           report.Date,
		SubNo:          report.SubNo,
		Weather:        report.Weather,
		Temperature:    report.Temperature,
		Humidity:       report.Humidity,
		Start:          report.Start,
		Finish:         report.Finish,
		Remarks:        report.Remarks,
		LabourReport:   report.LabourReport,
		ToolsUsed:      report.ToolsUsed,
		DeliveryReport: report.DeliveryReport,
		TodayWork:      report.TodayWork,
		CompletedWork:  report.CompletedWork,
		NextWork:       report.NextWork,
		CreatedAt:      report.CreatedAt.Format(time.RFC3339),
	}
}

func toResponses(reports []dpr.DPR) []dpr.DPRResponse {
	responses := make([]dpr.DPRResponse, 0, len(reports))
	for _, report := range reports {
		responses = append(responses, toResponse(report))
	}
	return responses
}
