package dpr

import (
	"bytes"
	"context"
	"testing"

	"github.com/buildcrew/sitepulse-backend-go/internal/domain/dpr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type fakeDPRRepo struct {
	reports []dpr.DPR
}

func (f *fakeDPRRepo) Create(ctx context.Context, report dpr.DPR) (dpr.DPR, error) {
	report.ID = "dpr-1"
	f.reports = append(f.reports, report)
	return report, nil
}

func (f *fakeDPRRepo) List(ctx context.Context) ([]dpr.DPR, error) {
	return f.reports, nil
}

func (f *fakeDPRRepo) ListByDate(ctx context.Context, date string) ([]dpr.DPR, error) {
	var out []dpr.DPR
	for _, r := range f.reports {
		if r.Date == date {
			out = append(out, r)
		}
	}
	return out, nil
}

func TestSave_RequiresProjectAndDate(t *testing.T) {
	svc := NewDPRService(&fakeDPRRepo{})

	_, err := svc.Save(context.Background(), dpr.SaveDPRRequest{ProjectName: "Tower A"})
	assert.Error(t, err)

	_, err = svc.Save(context.Background(), dpr.SaveDPRRequest{ProjectName: "Tower A", Date: "2026-03-02"})
	assert.NoError(t, err)
}

func TestExport_ExpandsParallelArrays(t *testing.T) {
	repo := &fakeDPRRepo{
		reports: []dpr.DPR{{
			ProjectName: "Tower A",
			Date:        "2026-03-02",
			LabourReport: []dpr.LabourEntry{
				{Contractor: "BuildCo", Bigaari: "4", Mistry: "2"},
				{Contractor: "SteelCo", Bigaari: "6"},
				{Contractor: "RoofCo"},
			},
			ToolsUsed: []dpr.MaterialEntry{
				{SrNo: "1", Description: "mixer"},
			},
			DeliveryReport: []dpr.MaterialEntry{
				{SrNo: "1", Description: "cement"},
				{SrNo: "2", Description: "rebar"},
			},
		}},
	}

	svc := NewDPRService(repo)
	resp, err := svc.Export(context.Background(), "2026-03-02")
	require.NoError(t, err)
	assert.Equal(t, "DPR_2026-03-02.xlsx", resp.Filename)

	f, err := excelize.OpenReader(bytes.NewReader(resp.Content))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("DPR")
	require.NoError(t, err)
	// header + max(3, 1, 2) data rows
	require.Len(t, rows, 4)

	// Every data row repeats the report fields.
	assert.Equal(t, "Tower A", rows[1][0])
	assert.Equal(t, "Tower A", rows[3][0])

	// Row 2 has the second labour entry but no second tool.
	assert.Equal(t, "SteelCo", rows[2][12])
	// Shorter tables pad with empties; GetRows trims trailing blanks, so
	// just confirm the third labour row carries no delivery description.
	if len(rows[3]) > 25 {
		assert.Empty(t, rows[3][25])
	}
}

func TestExport_NoReportsIsAnError(t *testing.T) {
	svc := NewDPRService(&fakeDPRRepo{})

	_, err := svc.Export(context.Background(), "2026-03-02")
	assert.ErrorIs(t, err, dpr.ErrDPRNotFound)
}
