package validator

import (
	"testing"

	"github.com/SAP-F-2025/homework-grader/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type exerciseRequest struct {
	Index int    `json:"index" validate:"exercise_index"`
	Path  string `json:"output_path" validate:"required,report_path"`
}

func TestValidator_ExerciseIndex(t *testing.T) {
	v := New()

	for index := 1; index <= models.ExerciseCount; index++ {
		assert.NoError(t, v.ValidateStruct(exerciseRequest{Index: index, Path: "answers.txt"}))
	}

	for _, index := range []int{-1, 0, 7, 100} {
		err := v.ValidateStruct(exerciseRequest{Index: index, Path: "answers.txt"})
		require.Error(t, err)

		errs, ok := err.(ValidationErrors)
		require.True(t, ok)
		require.Len(t, errs, 1)
		assert.Equal(t, "index", errs[0].Field)
		assert.Equal(t, "exercise_index", errs[0].Rule)
	}
}

func TestValidator_ReportPath(t *testing.T) {
	v := New()

	assert.NoError(t, v.ValidateStruct(exerciseRequest{Index: 1, Path: "out.yaml"}))

	err := v.ValidateStruct(exerciseRequest{Index: 1, Path: "out.csv"})
	require.Error(t, err)
	errs := err.(ValidationErrors)
	assert.Equal(t, "output_path", errs[0].Field)
	assert.Equal(t, "must end in .txt, .json, .yaml, .yml or .xlsx", errs[0].Message)

	err = v.ValidateStruct(exerciseRequest{Index: 1})
	require.Error(t, err)
	assert.Equal(t, "is required", err.(ValidationErrors)[0].Message)
}

func TestValidator_AnswerSheetKeys(t *testing.T) {
	v := New()

	assert.NoError(t, v.ValidateStruct(models.AnswerSheet{
		Name:    "AB",
		Answers: map[int]any{3: []any{1, 2}, 4: 0.4},
	}))

	err := v.ValidateStruct(models.AnswerSheet{
		Name:    "AB",
		Answers: map[int]any{9: 1.0},
	})
	require.Error(t, err)
	assert.Equal(t, "exercise_index", err.(ValidationErrors)[0].Rule)

	err = v.ValidateStruct(models.AnswerSheet{})
	require.Error(t, err)
	assert.Equal(t, "name", err.(ValidationErrors)[0].Field)
}
