package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the error category for logging and exit handling
type ErrorCode string

const (
	// CodeInput covers unreadable, empty, or malformed input files. Fatal.
	CodeInput ErrorCode = "INPUT_ERROR"
	// CodeColumnAnalysis covers a single column failing to analyze.
	// Recovered per column; the run continues with the rest.
	CodeColumnAnalysis ErrorCode = "COLUMN_ANALYSIS"
	// CodeRender covers a single chart or sheet failing to render.
	// Recovered per artifact; the run still exits zero.
	CodeRender ErrorCode = "RENDER"
	// CodeConfig covers invalid configuration values. Fatal.
	CodeConfig ErrorCode = "CONFIG_INVALID"
)

// AppError is the application error type carrying a category code
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError without a wrapped cause
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap creates an AppError wrapping a cause
func Wrap(code ErrorCode, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// Input builds a fatal input error
func Input(message string, err error) *AppError {
	return Wrap(CodeInput, message, err)
}

// ColumnAnalysis builds a recoverable per-column error
func ColumnAnalysis(column string, err error) *AppError {
	return Wrap(CodeColumnAnalysis, fmt.Sprintf("column %q", column), err)
}

// Render builds a recoverable per-artifact error
func Render(artifact string, err error) *AppError {
	return Wrap(CodeRender, fmt.Sprintf("artifact %q", artifact), err)
}

// Config builds a fatal configuration error
func Config(message string) *AppError {
	return New(CodeConfig, message)
}

// CodeOf extracts the category of an error chain, or "" if none
func CodeOf(err error) ErrorCode {
	var app *AppError
	if errors.As(err, &app) {
		return app.Code
	}
	return ""
}

// IsFatal reports whether an error must abort the run
func IsFatal(err error) bool {
	switch CodeOf(err) {
	case CodeInput, CodeConfig:
		return true
	}
	return false
}
