package services

import (
	"fmt"
	"reflect"

	"github.com/SAP-F-2025/homework-grader/internal/models"
)

// exerciseTransform turns a raw submission into the value stored and compared.
type exerciseTransform func(input any) (float64, error)

// exerciseTransforms is indexed by exercise number minus one.
var exerciseTransforms = [models.ExerciseCount]exerciseTransform{
	invokeWith(5),
	invokeWith(7, 3),
	stdDevTruncated(3),
	truncated(2),
	truncated(2),
	truncated(2),
}

// invokeWith calls the submitted function with fixed arguments and keeps the result verbatim.
func invokeWith(args ...float64) exerciseTransform {
	return func(input any) (float64, error) {
		fn, ok := asFunc(input)
		if !ok {
			return 0, fmt.Errorf("%w: expected a function, got %T", ErrInvalidInput, input)
		}
		return fn(args...), nil
	}
}

func stdDevTruncated(decimals int) exerciseTransform {
	return func(input any) (float64, error) {
		values, ok := asFloats(input)
		if !ok {
			return 0, fmt.Errorf("%w: expected a sequence of numbers, got %T", ErrInvalidInput, input)
		}
		if len(values) == 0 {
			return 0, fmt.Errorf("%w: empty sequence", ErrInvalidInput)
		}
		return Trunc(PopulationStdDev(values), decimals), nil
	}
}

func truncated(decimals int) exerciseTransform {
	return func(input any) (float64, error) {
		value, ok := asFloat(input)
		if !ok {
			return 0, fmt.Errorf("%w: expected a number, got %T", ErrInvalidInput, input)
		}
		return Trunc(value, decimals), nil
	}
}

func asFunc(input any) (models.Func, bool) {
	switch fn := input.(type) {
	case models.Func:
		return fn, fn != nil
	case func(...float64) float64:
		return fn, fn != nil
	case func(float64) float64:
		if fn == nil {
			return nil, false
		}
		return func(args ...float64) float64 { return fn(args[0]) }, true
	case func(float64, float64) float64:
		if fn == nil {
			return nil, false
		}
		return func(args ...float64) float64 { return fn(args[0], args[1]) }, true
	default:
		return nil, false
	}
}

func asFloat(input any) (float64, bool) {
	switch v := input.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}

// asFloats accepts any slice or array whose elements are numbers.
func asFloats(input any) ([]float64, bool) {
	if values, ok := input.([]float64); ok {
		return values, true
	}

	rv := reflect.ValueOf(input)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	values := make([]float64, rv.Len())
	for i := range values {
		value, ok := asFloat(rv.Index(i).Interface())
		if !ok {
			return nil, false
		}
		values[i] = value
	}
	return values, true
}
