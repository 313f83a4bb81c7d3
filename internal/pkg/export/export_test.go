package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleSheet() Sheet {
	return Sheet{
		Name:   "Attendance",
		Header: []string{"Email", "TimeStamp"},
		Rows: [][]string{
			{"mason@example.com", "2026-03-02 08:15:00"},
			{"carpenter@example.com", "2026-03-02 08:02:00"},
		},
	}
}

func TestSheetCSV(t *testing.T) {
	data, err := sampleSheet().CSV()
	require.NoError(t, err)

	expected := "Email,TimeStamp\n" +
		"mason@example.com,2026-03-02 08:15:00\n" +
		"carpenter@example.com,2026-03-02 08:02:00\n"
	assert.Equal(t, expected, string(data))
}

func TestSheetCSVQuotesCommas(t *testing.T) {
	s := Sheet{
		Name:   "DPR",
		Header: []string{"Project", "Remarks"},
		Rows:   [][]string{{"Tower A", "rain stopped work, resumed 14:00"}},
	}

	data, err := s.CSV()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"rain stopped work, resumed 14:00"`)
}

func TestSheetXLSX(t *testing.T) {
	data, err := sampleSheet().XLSX()
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Attendance")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Email", "TimeStamp"}, rows[0])
	assert.Equal(t, "mason@example.com", rows[1][0])
	assert.Equal(t, "carpenter@example.com", rows[2][0])
}

func TestSheetXLSXEmptyRows(t *testing.T) {
	s := Sheet{Name: "Attendance", Header: []string{"Email", "TimeStamp"}}

	data, err := s.XLSX()
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Attendance")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
