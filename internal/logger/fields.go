package logger

import (
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/hire-ranker/internal/requirements"
)

// Keys shared by every ranking log line.
const (
	FieldMode    = "ranking_mode"
	FieldJobType = "job_type"
)

// CommonFields returns the ranking mode and job type fields. Blank values are skipped.
func CommonFields(mode, jobType string) []zap.Field {
	fields := make([]zap.Field, 0, 2)
	fields = appendNonBlank(fields, FieldMode, mode)
	fields = appendNonBlank(fields, FieldJobType, jobType)
	return fields
}

// WithCommonFields tags logger with the ranking mode and job type. A nil
// logger yields a no-op one.
func WithCommonFields(logger *zap.Logger, mode, jobType string) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	fields := CommonFields(mode, jobType)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(fields...)
}

// ApplicantFields identifies an applicant in a log line.
func ApplicantFields(name, email string) []zap.Field {
	fields := make([]zap.Field, 0, 2)
	fields = appendNonBlank(fields, "name", name)
	fields = appendNonBlank(fields, "email", email)
	return fields
}

func RequirementFields(req requirements.Requirement) []zap.Field {
	return []zap.Field{
		zap.String("type", string(req.Type)),
		zap.String("value", req.Value),
		zap.Int("importance", req.Importance),
	}
}

func appendNonBlank(fields []zap.Field, key, value string) []zap.Field {
	value = strings.TrimSpace(value)
	if value == "" {
		return fields
	}
	return append(fields, zap.String(key, value))
}
