package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// ServiceLogger provides structured logging for service layer operations
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

// LogOperation records the outcome of one service call. Expected failures
// (not found, validation) are logged below error level.
func (l *ServiceLogger) LogOperation(ctx context.Context, operation string, studentID string, resourceID string, duration time.Duration, err error) {
	level := slog.LevelInfo
	status := "success"

	if err != nil {
		level = slog.LevelError
		status = "error"

		switch {
		case IsValidation(err) || IsBusinessRule(err):
			level = slog.LevelWarn
			status = "validation_error"
		case IsNotFound(err):
			level = slog.LevelInfo
			status = "not_found"
		}
	}

	attrs := []slog.Attr{
		slog.String("operation", operation),
		slog.String("student_id", studentID),
		slog.String("status", status),
		slog.Duration("duration", duration),
	}
	if resourceID != "" {
		attrs = append(attrs, slog.String("resource_id", resourceID))
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		if bre, ok := err.(*BusinessRuleError); ok {
			attrs = append(attrs, slog.String("business_rule", bre.Rule))
		}
	}

	l.logger.LogAttrs(ctx, level, fmt.Sprintf("%s operation %s", operation, status), attrs...)
}

// LogDebug is a no-op unless debug logging is enabled for the component.
func (l *ServiceLogger) LogDebug(ctx context.Context, msg string, args ...any) {
	if l.config.EnableDebug {
		l.logger.DebugContext(ctx, msg, args...)
	}
}

// ===== CONTEXTUAL LOGGER =====

type ContextualLogger struct {
	parent    *ServiceLogger
	ctx       context.Context
	operation string
	studentID string
	startTime time.Time
}

func (l *ServiceLogger) WithOperation(ctx context.Context, operation string, studentID string) *ContextualLogger {
	return &ContextualLogger{
		parent:    l,
		ctx:       ctx,
		operation: operation,
		studentID: studentID,
		startTime: time.Now(),
	}
}

// LogResult logs the operation with the time elapsed since WithOperation.
func (cl *ContextualLogger) LogResult(resourceID string, err error) {
	cl.parent.LogOperation(cl.ctx, cl.operation, cl.studentID, resourceID, time.Since(cl.startTime), err)
}
