package models

// ExerciseCount is the fixed number of exercises in the homework.
const ExerciseCount = 6

// NotAnswered marks an answer slot that has not been submitted yet.
const NotAnswered = 0.0

// Func is the callable a student submits for the function exercises (1 and 2).
type Func func(args ...float64) float64

// DefaultAnswerKey returns a fresh copy of the reference values, index-aligned with the exercises.
func DefaultAnswerKey() [ExerciseCount]float64 {
	return [ExerciseCount]float64{
		120,
		35,
		10.023,
		0.40,
		0.66,
		1291.55,
	}
}
