package dpr

import "time"

// LabourEntry is one row of the daily labour report.
type LabourEntry struct {
	Contractor string `json:"contractor"`
	Bigaari    string `json:"bigaari"`
	Mistry     string `json:"mistry"`
	Baai       string `json:"baai"`
	Timings    string `json:"timings"`
	Hours      string `json:"hours"`
}

// MaterialEntry is one row of the tools-used or delivery report.
type MaterialEntry struct {
	SrNo        string `json:"sr_no"`
	Unit        string `json:"unit"`
	Qty         string `json:"qty"`
	Description string `json:"description"`
}

// DPR is one daily progress report for a project.
type DPR struct {
	ID             string
	ProjectName    string
	Date           string // YYYY-MM-DD, as entered by the site engineer
	SubNo          string
	Weather        string
	Temperature    string
	Humidity       string
	Start          string
	Finish         string
	Remarks        string
	LabourReport   []LabourEntry
	ToolsUsed      []MaterialEntry
	DeliveryReport []MaterialEntry
	TodayWork      string
	CompletedWork  string
	NextWork       string
	CreatedAt      time.Time
}
