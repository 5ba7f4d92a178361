package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// ServiceLogger provides structured logging for grader operations
type ServiceLogger struct {
	logger *slog.Logger
	config LogConfig
}

type LogConfig struct {
	Service     string
	Component   string
	EnableDebug bool
}

func NewServiceLogger(logger *slog.Logger, config LogConfig) *ServiceLogger {
	return &ServiceLogger{
		logger: logger.With("service", config.Service, "component", config.Component),
		config: config,
	}
}

// ===== OPERATION LOGGING =====

// LogOperation records one tracker operation. Input and validation failures are
// warnings; anything else, including failed writes, is an error.
func (l *ServiceLogger) LogOperation(ctx context.Context, operation string, student string, index int, duration time.Duration, err error) {
	level := slog.LevelInfo
	status := "success"

	if err != nil {
		level = slog.LevelError
		status = "error"

		switch {
		case IsInvalidIndex(err):
			level = slog.LevelWarn
			status = "invalid_index"
		case IsInvalidInput(err):
			level = slog.LevelWarn
			status = "invalid_input"
		case IsValidation(err):
			level = slog.LevelWarn
			status = "validation_error"
		case IsIOError(err):
			status = "io_error"
		}
	}

	attrs := []slog.Attr{
		slog.String("operation", operation),
		slog.String("student", student),
		slog.String("status", status),
		slog.Duration("duration", duration),
	}
	if index > 0 {
		attrs = append(attrs, slog.Int("exercise", index))
	}

	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))

		var ve *ValidationError
		if errors.As(err, &ve) {
			attrs = append(attrs, slog.String("field", ve.Field), slog.Any("value", ve.Value))
		}
	}

	l.logger.LogAttrs(ctx, level, fmt.Sprintf("%s operation %s", operation, status), attrs...)
}

// LogAnswer records the value stored for an exercise and whether it matched the key.
func (l *ServiceLogger) LogAnswer(ctx context.Context, index int, answer, expected float64, correct bool) {
	if !l.config.EnableDebug {
		return
	}

	l.logger.LogAttrs(ctx, slog.LevelDebug, "Answer stored",
		slog.Int("exercise", index),
		slog.Float64("answer", answer),
		slog.Float64("expected", expected),
		slog.Bool("correct", correct),
	)
}

// ===== HELPERS =====

// OperationTimer measures an operation and logs it when finished
type OperationTimer struct {
	logger    *ServiceLogger
	operation string
	student   string
	index     int
	startTime time.Time
	ctx       context.Context
}

func (l *ServiceLogger) WithOperation(ctx context.Context, operation string, student string, index int) *OperationTimer {
	return &OperationTimer{
		logger:    l,
		operation: operation,
		student:   student,
		index:     index,
		startTime: time.Now(),
		ctx:       ctx,
	}
}

func (t *OperationTimer) LogResult(err error) {
	t.logger.LogOperation(t.ctx, t.operation, t.student, t.index, time.Since(t.startTime), err)
}
