package models

import (
	"path/filepath"
	"strings"
)

// Report is the record written to the submission file.
// Field order matters for the JSON encoding: ans, nm, crc.
type Report struct {
	Ans []float64 `json:"ans" yaml:"ans"`
	Nm  string    `json:"nm" yaml:"nm"`
	Crc float64   `json:"crc" yaml:"crc"`
}

type ReportFormat string

const (
	ReportJSON  ReportFormat = "json"
	ReportYAML  ReportFormat = "yaml"
	ReportExcel ReportFormat = "xlsx"
)

// DefaultReportPath is where the submission file goes unless configured otherwise.
const DefaultReportPath = "answers.txt"

// ReportFormatFromPath maps an output path to its encoding by extension.
// A path without extension is written as JSON.
func ReportFormatFromPath(path string) (ReportFormat, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case "", ".txt", ".json":
		return ReportJSON, true
	case ".yaml", ".yml":
		return ReportYAML, true
	case ".xlsx":
		return ReportExcel, true
	default:
		return "", false
	}
}
