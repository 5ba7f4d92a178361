package validator

import (
	"reflect"
	"strings"

	"github.com/SAP-F-2025/homework-grader/internal/models"
	"github.com/go-playground/validator/v10"
)

// Validator wraps the struct validator with the grader's custom rules registered.
type Validator struct {
	structValidator *validator.Validate
}

// New creates a new validator instance
func New() *Validator {
	structValidator := validator.New()

	// Register all custom validators once
	registerCustomValidators(structValidator)

	return &Validator{
		structValidator: structValidator,
	}
}

// ValidateStruct validates struct tags and converts failures to ValidationErrors
func (v *Validator) ValidateStruct(s interface{}) error {
	if err := v.structValidator.Struct(s); err != nil {
		if errs := ToValidationErrors(err); len(errs) > 0 {
			return errs
		}
		return err
	}
	return nil
}

// registerCustomValidators registers all custom validation functions
func registerCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("exercise_index", validateExerciseIndex)
	validate.RegisterValidation("report_path", validateReportPath)

	// Custom tag name function for better error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateExerciseIndex(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		index := fl.Field().Int()
		return index >= 1 && index <= models.ExerciseCount
	default:
		return false
	}
}

func validateReportPath(fl validator.FieldLevel) bool {
	_, ok := models.ReportFormatFromPath(fl.Field().String())
	return ok
}
