package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportFormatFromPath(t *testing.T) {
	tests := []struct {
		path   string
		format ReportFormat
		ok     bool
	}{
		{"answers.txt", ReportJSON, true},
		{"out/answers.JSON", ReportJSON, true},
		{"answers", ReportJSON, true},
		{"answers.yaml", ReportYAML, true},
		{"answers.yml", ReportYAML, true},
		{"answers.xlsx", ReportExcel, true},
		{"answers.csv", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			format, ok := ReportFormatFromPath(tt.path)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.format, format)
		})
	}
}

func TestDefaultAnswerKey_ReturnsCopy(t *testing.T) {
	key := DefaultAnswerKey()
	key[0] = -1

	assert.Equal(t, 120.0, DefaultAnswerKey()[0])
	assert.Equal(t, [ExerciseCount]float64{120, 35, 10.023, 0.40, 0.66, 1291.55}, DefaultAnswerKey())
}
