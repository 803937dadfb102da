package errors

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"os"
)

// Category represents the type of error.
type Category string

const (
	CategoryScan     Category = "scan"
	CategoryRoute    Category = "route"
	CategoryRegistry Category = "registry"
	CategoryConfig   Category = "config"
	CategoryCLI      Category = "cli"
)

// Location represents a source code location.
type Location struct {
	File   string
	Line   int
	Column int
}

// String returns the location as a formatted string.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	if l.Line > 0 {
		return fmt.Sprintf("%s:%d", l.File, l.Line)
	}
	return l.File
}

// EngineError is a structured error with the offending route file,
// suggestions, and documentation.
type EngineError struct {
	// Code is a unique error identifier (e.g., "R001").
	Code string

	// Category is the error type (scan, route, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Location is the route file where the error occurred.
	Location *Location

	// Context contains surrounding source code lines.
	Context []string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Example is code showing the correct approach.
	Example string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *EngineError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *EngineError) Unwrap() error {
	return e.Wrapped
}

// WithFile records the route file the error originates from.
func (e *EngineError) WithFile(file string) *EngineError {
	e.Location = &Location{File: file}
	return e
}

// WithLocation adds source location to the error.
func (e *EngineError) WithLocation(file string, line, column int) *EngineError {
	e.Location = &Location{File: file, Line: line, Column: column}
	e.Context = readContextLines(file, line, 5)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *EngineError) WithSuggestion(s string) *EngineError {
	e.Suggestion = s
	return e
}

// WithExample adds a code example to the error.
func (e *EngineError) WithExample(ex string) *EngineError {
	e.Example = ex
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *EngineError) WithDetail(d string) *EngineError {
	e.Detail = d
	return e
}

// WithDetailf adds a formatted detailed explanation to the error.
func (e *EngineError) WithDetailf(format string, args ...any) *EngineError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// Wrap wraps another error.
func (e *EngineError) Wrap(err error) *EngineError {
	e.Wrapped = err
	return e
}

// readContextLines reads lines around the specified line number from a file.
func readContextLines(filename string, targetLine, contextSize int) []string {
	file, err := os.Open(filename)
	if err != nil {
		return nil
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	lineNum := 0
	startLine := targetLine - contextSize/2
	endLine := targetLine + contextSize/2

	for scanner.Scan() {
		lineNum++
		if lineNum >= startLine && lineNum <= endLine {
			lines = append(lines, scanner.Text())
		}
		if lineNum > endLine {
			break
		}
	}

	return lines
}

// New creates an EngineError from a registered error code.
func New(code string) *EngineError {
	template, ok := registry[code]
	if !ok {
		return &EngineError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &EngineError{
		Code:       code,
		Category:   template.Category,
		Message:    template.Message,
		Detail:     template.Detail,
		Suggestion: template.Suggestion,
		Example:    template.Example,
		DocURL:     template.DocURL,
	}
}

// Newf creates a new EngineError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *EngineError {
	return &EngineError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in an EngineError.
func FromError(err error, code string) *EngineError {
	if err == nil {
		return nil
	}
	e := New(code)
	e.Wrapped = err
	if e.Detail == "" {
		e.Detail = err.Error()
	}
	return e
}

// IsCode reports whether err is an EngineError with the given code.
func IsCode(err error, code string) bool {
	var e *EngineError
	if !stderrors.As(err, &e) {
		return false
	}
	return e.Code == code
}
