package collector

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"meetingkeeper/internal/core/model"
)

// ErrInvalidFields indicates one or more meeting fields are missing, blank or out of range.
var ErrInvalidFields = errors.New("missing or invalid fields")

// Field names reported by ValidationError.
const (
	FieldGoal     = "goal"
	FieldAgenda   = "agenda"
	FieldDuration = "duration"
)

// ValidationError lists the fields that failed validation.
type ValidationError struct {
	Fields []string
}

func (err *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidFields, strings.Join(err.Fields, ", "))
}

func (err *ValidationError) Unwrap() error {
	return ErrInvalidFields
}

// Collector validates meeting input and remembers the last accepted values.
type Collector struct {
	defaultDuration int
	last            *model.Candidate
}

// New creates a collector whose prefill uses defaultDuration until a meeting is submitted.
func New(defaultDuration int) *Collector {
	if defaultDuration <= 0 {
		defaultDuration = model.DefaultSettings().DefaultDurationMinutes
	}
	return &Collector{defaultDuration: defaultDuration}
}

// Submit validates the candidate and returns the meeting configuration.
// It does not start any timer.
func (collector *Collector) Submit(candidate model.Candidate) (model.MeetingConfig, error) {
	if err := Validate(candidate); err != nil {
		return model.MeetingConfig{}, err
	}

	accepted := candidate
	collector.last = &accepted
	return model.MeetingConfig{
		Goal:            candidate.Goal,
		Agenda:          candidate.Agenda,
		DurationMinutes: candidate.DurationMinutes,
	}, nil
}

// Prefill returns the values the setup form should start with.
func (collector *Collector) Prefill() model.Candidate {
	if collector.last != nil {
		return *collector.last
	}
	return model.Candidate{DurationMinutes: collector.defaultDuration}
}

// Remember overrides the prefill values without validation (command line flags).
func (collector *Collector) Remember(candidate model.Candidate) {
	if candidate.DurationMinutes <= 0 {
		candidate.DurationMinutes = collector.defaultDuration
	}
	collector.last = &candidate
}

// Validate reports every invalid field of the candidate.
func Validate(candidate model.Candidate) error {
	var fields []string
	if strings.TrimSpace(candidate.Goal) == "" {
		fields = append(fields, FieldGoal)
	}
	if strings.TrimSpace(candidate.Agenda) == "" {
		fields = append(fields, FieldAgenda)
	}
	if candidate.DurationMinutes <= 0 {
		fields = append(fields, FieldDuration)
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// ParseDuration converts duration text to minutes. Non-numeric input becomes 0.
func ParseDuration(value string) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return parsed
}
