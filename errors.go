package menuscript

import (
	"errors"
	"fmt"
)

// ErrorKind classifies script errors so callers can react without string matching
type ErrorKind int

const (
	ErrSyntax         ErrorKind = iota // Malformed line (unterminated quote, etc.)
	ErrArgument                        // Wrong arity, type, or option for a known command
	ErrUnknownCommand                  // Command name not in the dispatch table
	ErrNotFound                        // Named entity missing from the registry
	ErrBinding                         // Bind-time or fire-time expression failure
	ErrAPICall                         // API configuration or dispatch failure
)

func (k ErrorKind) String() string {
	switch k {
	case ErrSyntax:
		return "syntax"
	case ErrArgument:
		return "argument"
	case ErrUnknownCommand:
		return "unknown-command"
	case ErrNotFound:
		return "not-found"
	case ErrBinding:
		return "binding"
	case ErrAPICall:
		return "api-call"
	default:
		return "unknown"
	}
}

// Category maps an error kind onto its logging category
func (k ErrorKind) Category() LogCategory {
	switch k {
	case ErrSyntax:
		return CatParse
	case ErrArgument:
		return CatArgument
	case ErrUnknownCommand:
		return CatCommand
	case ErrNotFound:
		return CatRegistry
	case ErrBinding:
		return CatBinding
	case ErrAPICall:
		return CatAPI
	default:
		return CatNone
	}
}

// ScriptError represents a per-line script error with position information.
// Script errors are reported and logged but never abort the surrounding script.
type ScriptError struct {
	Kind    ErrorKind
	Command string // Command being executed, "" if none applies
	Line    int    // 1-based script line, 0 if unknown
	Message string
}

func (e *ScriptError) Error() string {
	if e.Command != "" {
		return fmt.Sprintf("%s error in %s: %s", e.Kind, e.Command, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

// IsKind reports whether err is a ScriptError of the given kind
func IsKind(err error, kind ErrorKind) bool {
	var se *ScriptError
	return errors.As(err, &se) && se.Kind == kind
}

func syntaxErrorf(format string, args ...interface{}) *ScriptError {
	return &ScriptError{Kind: ErrSyntax, Message: fmt.Sprintf(format, args...)}
}

func argumentErrorf(cmd, format string, args ...interface{}) *ScriptError {
	return &ScriptError{Kind: ErrArgument, Command: cmd, Message: fmt.Sprintf(format, args...)}
}

func unknownCommandError(name string) *ScriptError {
	return &ScriptError{Kind: ErrUnknownCommand, Command: name, Message: fmt.Sprintf("unknown command %q", name)}
}

func notFoundErrorf(cmd, format string, args ...interface{}) *ScriptError {
	return &ScriptError{Kind: ErrNotFound, Command: cmd, Message: fmt.Sprintf(format, args...)}
}

func bindingErrorf(format string, args ...interface{}) *ScriptError {
	return &ScriptError{Kind: ErrBinding, Message: fmt.Sprintf(format, args...)}
}

func apiErrorf(cmd, format string, args ...interface{}) *ScriptError {
	return &ScriptError{Kind: ErrAPICall, Command: cmd, Message: fmt.Sprintf(format, args...)}
}
