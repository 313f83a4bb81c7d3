package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/buildcrew/sitepulse-backend-go/internal/domain/dpr"
	"github.com/buildcrew/sitepulse-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type dprRepository struct {
	db *database.DB
}

func NewDPRRepository(db *database.DB) dpr.DPRRepository {
	return &dprRepository{db: db}
}

// Create implements dpr.DPRRepository. The labour, tools and delivery tables
// are stored as JSONB columns since their row counts vary per report.
func (r *dprRepository) Create(ctx context.Context, report dpr.DPR) (dpr.DPR, error) {
	q := GetQuerier(ctx, r.db)

	labour, err := json.Marshal(report.LabourReport)
	if err != nil {
		return dpr.DPR{}, fmt.Errorf("failed to marshal labour report: %w", err)
	}
	tools, err := json.Marshal(report.ToolsUsed)
	if err != nil {
		return dpr.DPR{}, fmt.Errorf("failed to marshal tools used: %w", err)
	}
	delivery, err := json.Marshal(report.DeliveryReport)
	if err != nil {
		return dpr.DPR{}, fmt.Errorf("failed to marshal delivery report: %w", err)
	}

	query := `
		INSERT INTO dprs (
			project_name, report_date, sub_no, weather, temperature, humidity,
			start_time, finish_time, remarks, labour_report, tools_used,
			delivery_report, today_work, completed_work, next_work
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at
	`

	err = q.QueryRow(ctx, query,
		report.ProjectName,
		report.Date,
		report.SubNo,
		report.Weather,
		report.Temperature,
		report.Humidity,
		report.Start,
		report.Finish,
		report.Remarks,
		labour,
		tools,
		delivery,
		report.TodayWork,
		report.CompletedWork,
		report.NextWork,
	).Scan(&report.ID, &report.CreatedAt)
	if err != nil {
		return dpr.DPR{}, fmt.Errorf("failed to create dpr: %w", err)
	}

	return report, nil
}

// List implements dpr.DPRRepository.
func (r *dprRepository) List(ctx context.Context) ([]dpr.DPR, error) {
	q := GetQuerier(ctx, r.db)

	query := dprSelect + ` ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query dprs: %w", err)
	}
	defer rows.Close()

	return scanDPRs(rows)
}

// ListByDate implements dpr.DPRRepository.
func (r *dprRepository) ListByDate(ctx context.Context, date string) ([]dpr.DPR, error) {
	q := GetQuerier(ctx, r.db)

	query := dprSelect + ` WHERE report_date = $1 ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query dprs by date: %w", err)
	}
	defer rows.Close()

	return scanDPRs(rows)
}

const dprSelect = `
	SELECT id, project_name, report_date, sub_no, weather, temperature, humidity,
		   start_time, finish_time, remarks, labour_report, tools_used,
		   delivery_report, today_work, completed_work, next_work, created_at
	FROM dprs
`

func scanDPRs(rows pgx.Rows) ([]dpr.DPR, error) {
	var reports []dpr.DPR
	for rows.Next() {
		var report dpr.DPR
		var labour, tools, delivery []byte

		err := rows.Scan(
			&report.ID,
			&report.ProjectName,
			&report.Date,
			&report.SubNo,
			&report.Weather,
			&report.Temperature,
			&report.Humidity,
			&report.Start,
			&report.Finish,
			&report.Remarks,
			&labour,
			&tools,
			&delivery,
			&report.TodayWork,
			&report.CompletedWork,
			&report.NextWork,
			&report.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dpr: %w", err)
		}

		if err := json.Unmarshal(labour, &report.LabourReport); err != nil {
			return nil, fmt.Errorf("failed to unmarshal labour report: %w", err)
		}
		if err := json.Unmarshal(tools, &report.ToolsUsed); err != nil {
			return nil, fmt.Errorf("failed to unmarshal tools used: %w", err)
		}
		if err := json.Unmarshal(delivery, &report.DeliveryReport); err != nil {
			return nil, fmt.Errorf("failed to unmarshal delivery report: %w", err)
		}

		reports = append(reports, report)
	}
	return reports, rows.Err()
}
