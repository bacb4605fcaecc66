package model

import (
	"errors"
	"fmt"
)

// ErrUnsupportedDataFormat is returned by LoadReportData when the file
// extension is neither YAML nor JSON.
var ErrUnsupportedDataFormat = errors.New("unsupported data file format: use .yaml, .yml or .json")

// MissingFieldError is returned when a required ReportData field is absent.
// Field is the dotted path of the field, e.g. "hero.status".
type MissingFieldError struct {
	Field string
}

// Error implements the error interface.
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// LengthMismatchError is returned when the history chart has a different
// number of labels and values.
type LengthMismatchError struct {
	Labels int
	Values int
}

// Error implements the error interface.
func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("history_chart length mismatch: %d labels, %d values", e.Labels, e.Values)
}

// InvalidNumberError is returned when a metric or chart value is NaN or
// infinite. Field is the dotted path of the value, e.g. "history_chart.values[2]".
type InvalidNumberError struct {
	Field string
	Value float64
}

// Error implements the error interface.
func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("invalid number in %s: %v is not finite", e.Field, e.Value)
}
