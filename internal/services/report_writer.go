package services

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/SAP-F-2025/homework-grader/internal/models"
	"github.com/SAP-F-2025/homework-grader/internal/validator"
)

const reportSheet = "Answers"

// ReportWriter persists a finished report.
type ReportWriter interface {
	Write(ctx context.Context, path string, report *models.Report) error
}

// FileReportWriter writes the report to a single file, replacing its contents.
// The encoding is chosen by extension (see models.ReportFormatFromPath).
type FileReportWriter struct {
	validator *validator.Validator
}

func NewFileReportWriter(validator *validator.Validator) *FileReportWriter {
	return &FileReportWriter{validator: validator}
}

type reportPathRequest struct {
	Path string `json:"output_path" validate:"required,report_path"`
}

func (w *FileReportWriter) Write(ctx context.Context, path string, report *models.Report) (err error) {
	if err := w.validator.ValidateStruct(reportPathRequest{Path: path}); err != nil {
		return err
	}

	format, _ := models.ReportFormatFromPath(path)
	data, err := EncodeReport(format, report)
	if err != nil {
		if IsValidation(err) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrOutputWrite, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutputWrite, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrOutputWrite, cerr)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("%w: %w", ErrOutputWrite, err)
	}
	return nil
}

// EncodeReport renders the report in the given format. Non-finite answers are
// kept: JSON uses NaN and Infinity literals, YAML uses .nan and .inf.
func EncodeReport(format models.ReportFormat, report *models.Report) ([]byte, error) {
	switch format {
	case models.ReportJSON:
		data, err := report.EncodeJSON()
		if err != nil {
			return nil, fmt.Errorf("failed to encode report as JSON: %w", err)
		}
		return data, nil
	case models.ReportYAML:
		data, err := yaml.Marshal(report)
		if err != nil {
			return nil, fmt.Errorf("failed to encode report as YAML: %w", err)
		}
		return data, nil
	case models.ReportExcel:
		return encodeExcelReport(report)
	default:
		return nil, NewValidationError("format", "unsupported report format", format)
	}
}

func encodeExcelReport(report *models.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
	}

	rows := [][]interface{}{{"Exercise", "Answer"}}
	for i, answer := range report.Ans {
		rows = append(rows, []interface{}{i + 1, answer})
	}
	rows = append(rows,
		[]interface{}{"Name", report.Nm},
		[]interface{}{"Checksum", report.Crc},
	)

	for rowIndex, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, rowIndex+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(reportSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write Excel row %d: %w", rowIndex+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

// ReadReport loads a report written by FileReportWriter.
func ReadReport(path string) (*models.Report, error) {
	format, ok := models.ReportFormatFromPath(path)
	if !ok {
		return nil, NewValidationError("path", "unsupported report format", path)
	}

	if format == models.ReportExcel {
		return readExcelReport(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}

	report := &models.Report{}
	switch format {
	case models.ReportYAML:
		err = yaml.Unmarshal(data, report)
	default:
		report, err = models.DecodeReportJSON(data)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode report %s: %w", path, err)
	}
	return report, nil
}

func readExcelReport(path string) (*models.Report, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel report: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(reportSheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read Excel report: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty Excel report %s", path)
	}

	report := &models.Report{}
	for rowIndex, row := range rows[1:] {
		if len(row) < 2 {
			continue
		}
		switch row[0] {
		case "Name":
			report.Nm = row[1]
		case "Checksum":
			if report.Crc, err = strconv.ParseFloat(row[1], 64); err != nil {
				return nil, fmt.Errorf("invalid checksum in row %d: %w", rowIndex+2, err)
			}
		default:
			answer, err := strconv.ParseFloat(row[1], 64)
			if err != nil {
				return nil, fmt.Errorf("invalid answer in row %d: %w", rowIndex+2, err)
			}
			report.Ans = append(report.Ans, answer)
		}
	}
	return report, nil
}
