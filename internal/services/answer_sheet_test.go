package services

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SAP-F-2025/homework-grader/internal/validator"
)

func writeSheet(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAnswerSheet_YAML(t *testing.T) {
	path := writeSheet(t, "sheet.yaml", `
name: AB
answers:
  1: 120
  3: [1, 2, 3, 4, 5]
  4: 0.4
`)

	sheet, err := LoadAnswerSheet(path, validator.New())
	require.NoError(t, err)

	assert.Equal(t, "AB", sheet.Name)
	assert.Len(t, sheet.Answers, 3)
	assert.Equal(t, 0.4, sheet.Answers[4])
}

func TestLoadAnswerSheet_Invalid(t *testing.T) {
	v := validator.New()

	_, err := LoadAnswerSheet(writeSheet(t, "sheet.yaml", "answers:\n  1: 120\n"), v)
	assert.True(t, IsValidation(err))

	_, err = LoadAnswerSheet(writeSheet(t, "sheet.yaml", "name: AB\nanswers:\n  8: 1\n"), v)
	assert.True(t, IsValidation(err))

	_, err = LoadAnswerSheet(writeSheet(t, "sheet.yaml", "name: [unclosed\n"), v)
	assert.Error(t, err)

	_, err = LoadAnswerSheet(filepath.Join(t.TempDir(), "missing.yaml"), v)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestApplySheet(t *testing.T) {
	path := writeSheet(t, "sheet.json", `{"name": "AB", "answers": {"6": 1291.559, "2": 35, "3": [1, 2, 3, 4, 5]}}`)

	sheet, err := LoadAnswerSheet(path, validator.New())
	require.NoError(t, err)

	var console bytes.Buffer
	tracker, err := NewTracker(sheet.Name, WithConsole(&console))
	require.NoError(t, err)

	require.NoError(t, ApplySheet(context.Background(), tracker, sheet))

	assert.Equal(t, [6]float64{0, 35, 1.414, 0, 0, 1291.55}, tracker.Answers())
	assert.Equal(t, "Correct\nProbably, there is a mistake\nCorrect\n", console.String())
}

func TestApplySheet_StopsAtFirstError(t *testing.T) {
	path := writeSheet(t, "sheet.yaml", "name: AB\nanswers:\n  4: 0.4\n  5: oops\n  6: 1291.55\n")

	sheet, err := LoadAnswerSheet(path, validator.New())
	require.NoError(t, err)

	tracker, err := NewTracker(sheet.Name, WithConsole(&bytes.Buffer{}))
	require.NoError(t, err)

	err = ApplySheet(context.Background(), tracker, sheet)
	require.Error(t, err)
	assert.True(t, IsInvalidInput(err))
	assert.Equal(t, [6]float64{0, 0, 0, 0.4, 0, 0}, tracker.Answers())
}
