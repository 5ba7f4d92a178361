package services

import (
	"math"

	"github.com/SAP-F-2025/homework-grader/internal/models"
)

// ComputeChecksum is the population standard deviation of the answers followed by
// the code points of name, rounded to 5 decimals.
func ComputeChecksum(answers []float64, name string) float64 {
	runes := []rune(name)
	values := make([]float64, 0, len(answers)+len(runes))
	values = append(values, answers...)
	for _, r := range runes {
		values = append(values, float64(r))
	}
	return Round(PopulationStdDev(values), 5)
}

// VerifyReport recomputes the checksum of a submitted report and reports whether
// it matches the stored one. A NaN checksum matches a NaN checksum.
func VerifyReport(report *models.Report) (float64, bool) {
	crc := ComputeChecksum(report.Ans, report.Nm)
	if len(report.Ans) != models.ExerciseCount {
		return crc, false
	}
	return crc, crc == report.Crc || (math.IsNaN(crc) && math.IsNaN(report.Crc))
}
