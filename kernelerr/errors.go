// Package kernelerr defines the error kinds the kernel raises (spec.md §7).
// Every user-visible error leaves the evaluator as an *EvalError; internal
// inconsistencies (unreachable branch, corrupt tag) leave it as an
// *InternalError and are meant to be fatal, matching the host's
// uw_throw(eval_error_s, ...) / abort() split.
package kernelerr

import "fmt"

// Kind enumerates the error kinds observable from the core.
type Kind string

const (
	UnboundVariable         Kind = "unbound-variable"
	UnboundFunctionOrOp     Kind = "unbound-function-or-operator"
	NotBindable             Kind = "not-bindable"
	BadPlace                Kind = "bad-place"
	ArityMismatch           Kind = "arity-mismatch"
	SyntaxError             Kind = "syntax-error"
	NotCallable             Kind = "not-callable"
)

// EvalError is the error the kernel raises for every user-visible failure.
// File and Line are zero values when no source location was available.
type EvalError struct {
	Kind    Kind
	Message string
	File    string
	Line    int
}

func (e *EvalError) Error() string {
	if e.Line > 0 {
		file := e.File
		if file == "" {
			file = "-"
		}
		return fmt.Sprintf("(%s:%d) %s", file, e.Line, e.Message)
	}
	return e.Message
}

// New builds an EvalError with no source location.
func New(kind Kind, format string, args ...any) *EvalError {
	return &EvalError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NewAt builds an EvalError carrying the given source location.
func NewAt(kind Kind, file string, line int, format string, args ...any) *EvalError {
	return &EvalError{Kind: kind, Message: fmt.Sprintf(format, args...), File: file, Line: line}
}

// InternalError marks an out-of-budget internal inconsistency: an unknown
// arity class, a corrupted tag. It is never expected to be recovered from
// locally.
type InternalError struct {
	Message string
}

func (e *InternalError) Error() string { return "internal error: " + e.Message }

func Internal(format string, args ...any) *InternalError {
	return &InternalError{Message: fmt.Sprintf(format, args...)}
}
