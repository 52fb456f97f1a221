/*
Package opscan implements the context-sensitive half of the Operon lexer:
the tokens a declarative grammar cannot recognize on its own.

Consists of subpackages:
  - source: defines source text and the scanning cursor used by the tokenizer;
  - scanner: recognizes indentation structure (newline/indent/dedent) and
    string literals (prefixes, triple quoting, escapes, interpolation),
    keeping explicit state that survives incremental re-scans via a bounded
    binary encoding;
  - grammar: maps the grammar's external term names to scanner token kinds;
  - binding: thin adapters exposing a grammar and its tokenizer as an opaque
    handle to embedding runtimes.

Typical usage is:

1. Build a grammar description naming its external terms and resolve the
term names to token kind sets.

2. Create one scanner state per parse session. At each point where an
external token may appear, call Scan with the kinds the grammar currently
accepts; a scan either recognizes one token or consumes nothing.

3. For incremental reparsing, snapshot the state with Serialize at tree
checkpoints and bring it back with Restore before resuming.
*/
package opscan

import (
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	GrammarErrors = 1   // used by grammar
	BindingErrors = 101 // used by binding
)

// Error is the error type used by opscan subpackages.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message including source name and
	// position information if provided.
	Message string

	// SourceName contains source name that caused this error or empty string.
	SourceName string

	// Line contains line number in source file or 0.
	Line int

	// Col contains column number in source file or 0.
	Col int
}

// SourcePos is used to retrieve source name and position information when
// constructing an error; source.Pos implements this interface.
type SourcePos interface {
	// SourceName returns source name or empty string.
	SourceName() string
	// Line returns line number or 0.
	Line() int
	// Col returns column number or 0.
	Col() int
}

// NewError creates new Error structure.
// name, line, and col will be added to error message if provided (non-zero).
func NewError(code int, msg, name string, line, col int) *Error {
	if name != "" && line != 0 && col != 0 {
		msg += fmt.Sprintf(" in %s at line %d col %d", name, line, col)
	}
	return &Error{code, msg, name, line, col}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// FormatError creates Error structure with no source and position information.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, "", 0, 0)
}

// FormatErrorPos creates Error structure with source and position information.
// pos must not be nil.
// params will be added to error message using fmt.Sprintf function.
func FormatErrorPos(pos SourcePos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, pos.SourceName(), pos.Line(), pos.Col())
}
