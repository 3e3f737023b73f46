package errors

import (
	"fmt"
	"strings"
)

// LoadError reports a dataset that cannot be loaded.
// It is fatal at startup: a process holding one must not serve queries.
type LoadError struct {
	Path   string // dataset path
	Column string // offending column (empty if file-level)
	Row    int    // 1-based data row (0 if unknown)
	Reason string // human-readable explanation
	Err    error  // underlying cause (may be nil)
}

func (e *LoadError) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("load %s", e.Path))

	if e.Column != "" {
		parts = append(parts, fmt.Sprintf("column %s", e.Column))
	}

	if e.Row > 0 {
		parts = append(parts, fmt.Sprintf("row %d", e.Row))
	}

	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}

	return strings.Join(parts, " - ")
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func NewMissingFile(path string, err error) *LoadError {
	return &LoadError{
		Path:   path,
		Reason: "cannot open dataset",
		Err:    err,
	}
}

func NewMissingColumn(path, column string) *LoadError {
	return &LoadError{
		Path:   path,
		Column: column,
		Reason: "required column missing from header",
	}
}

func NewCorruptRow(path, column string, row int, reason string, err error) *LoadError {
	return &LoadError{
		Path:   path,
		Column: column,
		Row:    row,
		Reason: reason,
		Err:    err,
	}
}

// InputError reports a malformed query parameter.
// The boundary maps it to a bad request; it never indicates broken data.
type InputError struct {
	Param  string
	Value  string
	Reason string
}

func (e *InputError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Param, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Param, e.Value, e.Reason)
}

func NewInputError(param, value, reason string) *InputError {
	return &InputError{Param: param, Value: value, Reason: reason}
}
