package models

type ExerciseStatus string

const (
	ExerciseNotAnswered ExerciseStatus = "not_answered"
	ExerciseCorrect     ExerciseStatus = "correct"
	ExerciseIncorrect   ExerciseStatus = "incorrect"
)

// ExerciseResult is the finalize-time verdict for a single exercise.
// Index is 1-based.
type ExerciseResult struct {
	Index    int            `json:"index"`
	Answer   float64        `json:"answer"`
	Expected float64        `json:"expected"`
	Status   ExerciseStatus `json:"status"`
}

// AnswerSheet is a file-based set of answers used by the command line tool.
// Keys are exercise indices; values are a number or a list of numbers.
type AnswerSheet struct {
	Name    string      `json:"name" yaml:"name" validate:"required"`
	Answers map[int]any `json:"answers" yaml:"answers" validate:"dive,keys,exercise_index,endkeys,omitempty"`
}
