package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/SAP-F-2025/homework-grader/internal/models"
	"github.com/SAP-F-2025/homework-grader/internal/validator"
)

// LoadAnswerSheet reads a YAML (or JSON) answer sheet:
//
//	name: Jane
//	answers:
//	  1: 120
//	  3: [1, 2, 3]
//	  4: 0.4
//
// Exercises 1 and 2 hold the value the student's function returned.
func LoadAnswerSheet(path string, v *validator.Validator) (*models.AnswerSheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read answer sheet: %w", err)
	}

	var sheet models.AnswerSheet
	if strings.EqualFold(filepath.Ext(path), ".json") {
		// JSON object keys are strings, which yaml.v3 refuses to decode into int keys
		err = json.Unmarshal(data, &sheet)
	} else {
		err = yaml.Unmarshal(data, &sheet)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse answer sheet %s: %w", path, err)
	}

	if err := v.ValidateStruct(sheet); err != nil {
		return nil, err
	}
	return &sheet, nil
}

// ApplySheet submits every answer of the sheet in exercise order and stops at the first error.
func ApplySheet(ctx context.Context, tracker *Tracker, sheet *models.AnswerSheet) error {
	indices := make([]int, 0, len(sheet.Answers))
	for index := range sheet.Answers {
		indices = append(indices, index)
	}
	sort.Ints(indices)

	for _, index := range indices {
		input := sheet.Answers[index]
		if index == 1 || index == 2 {
			input = constantFunc(input)
		}
		if _, err := tracker.Submit(ctx, index, input); err != nil {
			return err
		}
	}
	return nil
}

// constantFunc wraps a precomputed result so it goes through the function exercises unchanged.
// Non-numeric values are passed through and rejected by Submit.
func constantFunc(value any) any {
	result, ok := asFloat(value)
	if !ok {
		return value
	}
	return models.Func(func(...float64) float64 { return result })
}
