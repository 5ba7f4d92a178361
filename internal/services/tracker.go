package services

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/SAP-F-2025/homework-grader/internal/models"
	"github.com/SAP-F-2025/homework-grader/internal/utils"
	"github.com/SAP-F-2025/homework-grader/internal/validator"
)

const (
	msgCorrect = "Correct"
	msgMistake = "Probably, there is a mistake"
)

// Tracker collects one student's answers to the six exercises and writes the
// submission file. It is not safe for concurrent use.
type Tracker struct {
	name     string
	answers  [models.ExerciseCount]float64
	expected [models.ExerciseCount]float64

	outputPath string
	console    io.Writer
	writer     ReportWriter
	logger     *ServiceLogger
	validator  *validator.Validator
}

type TrackerOption func(*Tracker)

// WithOutputPath sets where Finalize writes the report. The extension picks the encoding.
func WithOutputPath(path string) TrackerOption {
	return func(t *Tracker) { t.outputPath = path }
}

// WithConsole redirects the feedback lines, stdout by default.
func WithConsole(w io.Writer) TrackerOption {
	return func(t *Tracker) { t.console = w }
}

func WithReportWriter(w ReportWriter) TrackerOption {
	return func(t *Tracker) { t.writer = w }
}

func WithLogger(logger utils.Logger) TrackerOption {
	return func(t *Tracker) {
		t.logger = NewServiceLogger(utils.ToSlogLogger(logger), LogConfig{
			Service:     "grader",
			Component:   "tracker",
			EnableDebug: true,
		})
	}
}

func WithValidator(v *validator.Validator) TrackerOption {
	return func(t *Tracker) { t.validator = v }
}

type trackerRequest struct {
	Name       string `json:"name" validate:"required"`
	OutputPath string `json:"output_path" validate:"required,report_path"`
}

type submitRequest struct {
	Index int `json:"index" validate:"exercise_index"`
}

// NewTracker starts an empty answer set for the named student.
func NewTracker(name string, opts ...TrackerOption) (*Tracker, error) {
	t := &Tracker{
		name:       name,
		expected:   models.DefaultAnswerKey(),
		outputPath: models.DefaultReportPath,
		console:    os.Stdout,
	}
	WithLogger(utils.NewNopLogger())(t)

	for _, opt := range opts {
		opt(t)
	}

	if t.validator == nil {
		t.validator = validator.New()
	}
	if t.writer == nil {
		t.writer = NewFileReportWriter(t.validator)
	}

	if err := t.validator.ValidateStruct(trackerRequest{Name: name, OutputPath: t.outputPath}); err != nil {
		return nil, err
	}

	return t, nil
}

func (t *Tracker) Name() string {
	return t.name
}

// Answers returns a copy of the stored answers.
func (t *Tracker) Answers() [models.ExerciseCount]float64 {
	return t.answers
}

// Expected returns a copy of the answer key.
func (t *Tracker) Expected() [models.ExerciseCount]float64 {
	return t.expected
}

// Submit transforms the input for the given 1-based exercise, stores the result
// and prints whether it matches the key. Later submissions overwrite earlier ones.
func (t *Tracker) Submit(ctx context.Context, index int, input any) (answer float64, err error) {
	timer := t.logger.WithOperation(ctx, "submit", t.name, index)
	defer func() { timer.LogResult(err) }()

	if verr := t.validator.ValidateStruct(submitRequest{Index: index}); verr != nil {
		return 0, NewValidationError("index", "must be an exercise number between 1 and 6", index).Wrap(ErrInvalidIndex)
	}

	answer, err = exerciseTransforms[index-1](input)
	if err != nil {
		return 0, fmt.Errorf("exercise %d: %w", index, err)
	}

	t.answers[index-1] = answer

	// Exact comparison, no tolerance.
	correct := answer == t.expected[index-1]
	t.logger.LogAnswer(ctx, index, answer, t.expected[index-1], correct)

	if correct {
		fmt.Fprintln(t.console, msgCorrect)
	} else {
		fmt.Fprintln(t.console, msgMistake)
	}

	return answer, nil
}

// Results reports the status of every exercise. A slot still holding the
// sentinel counts as not answered.
func (t *Tracker) Results() []models.ExerciseResult {
	results := make([]models.ExerciseResult, 0, models.ExerciseCount)
	for i, answer := range t.answers {
		status := models.ExerciseIncorrect
		switch {
		case answer == models.NotAnswered:
			status = models.ExerciseNotAnswered
		case answer == t.expected[i]:
			status = models.ExerciseCorrect
		}

		results = append(results, models.ExerciseResult{
			Index:    i + 1,
			Answer:   answer,
			Expected: t.expected[i],
			Status:   status,
		})
	}
	return results
}

// Checksum fingerprints the current answers and name, see ComputeChecksum.
func (t *Tracker) Checksum() float64 {
	return ComputeChecksum(t.answers[:], t.name)
}

// Report builds the submission record without writing it.
func (t *Tracker) Report() *models.Report {
	ans := make([]float64, len(t.answers))
	copy(ans, t.answers[:])

	return &models.Report{
		Ans: ans,
		Nm:  t.name,
		Crc: t.Checksum(),
	}
}

// Finalize prints the per-exercise report and writes the submission file,
// replacing any previous one. Write failures are returned as is.
func (t *Tracker) Finalize(ctx context.Context) (report *models.Report, err error) {
	timer := t.logger.WithOperation(ctx, "finalize", t.name, 0)
	defer func() { timer.LogResult(err) }()

	for _, result := range t.Results() {
		switch result.Status {
		case models.ExerciseNotAnswered:
			fmt.Fprintf(t.console, "[ %d ] is not answered !\n", result.Index)
		case models.ExerciseCorrect:
			fmt.Fprintf(t.console, "[ %d ] Correct\n", result.Index)
		default:
			fmt.Fprintf(t.console, "[ %d ] Incorrect\n", result.Index)
		}
	}

	report = t.Report()
	if err = t.writer.Write(ctx, t.outputPath, report); err != nil {
		return nil, err
	}

	fmt.Fprintf(t.console, "File %q was successfully generated. Don't forget to send it too.\n", t.outputPath)
	return report, nil
}
