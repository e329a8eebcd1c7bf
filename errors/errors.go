package errors

import (
	"fmt"
	"strings"
)

// Stage indicates where in processing the error occurred
type Stage string

const (
	StageHeader Stage = "header" // file header parsing
	StageRecord Stage = "record" // record grammar / dispatch
	StageModel  Stage = "model"  // reference resolution and invariants
	StageEncode Stage = "encode" // document to bytes
)

// Kind categorizes the error
type Kind string

const (
	KindOutOfBounds        Kind = "out_of_bounds"
	KindMalformedField     Kind = "malformed_field"
	KindEncodingError      Kind = "encoding_error"
	KindShortRecord        Kind = "short_record"
	KindUnknownKind        Kind = "unknown_kind"
	KindDanglingReference  Kind = "dangling_reference"
	KindInvariantViolation Kind = "invariant_violation"
	KindTrailingBytes      Kind = "trailing_bytes"
)

// Error is the structured error type used throughout the codec
type Error struct {
	Value  any
	Cause  error
	Stage  Stage
	Kind   Kind
	Offset int // absolute byte offset in the input, -1 when not applicable
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Stage))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Offset >= 0 {
		fmt.Fprintf(&b, " at offset %d", e.Offset)
	}

	if len(e.Path) > 0 {
		b.WriteString(" (")
		b.WriteString(strings.Join(e.Path, "."))
		b.WriteByte(')')
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Stage == t.Stage && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(stage Stage, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Stage:  stage,
			Kind:   kind,
			Offset: -1,
		},
	}
}

// Offset sets the absolute byte offset
func (b *Builder) Offset(off int) *Builder {
	b.err.Offset = off
	return b
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// OutOfBounds creates an error for a read past the end of the buffer
func OutOfBounds(stage Stage, offset, need, remain int) *Error {
	return &Error{
		Stage:  stage,
		Kind:   KindOutOfBounds,
		Offset: offset,
		Detail: fmt.Sprintf("need %d bytes, %d remain", need, remain),
	}
}

// MalformedField creates an error for a field that does not match its declared layout
func MalformedField(stage Stage, offset int, path []string, format string, args ...any) *Error {
	return &Error{
		Stage:  stage,
		Kind:   KindMalformedField,
		Offset: offset,
		Path:   path,
		Detail: fmt.Sprintf(format, args...),
	}
}

// EncodingError creates an error for text that cannot be converted under the Fail policy
func EncodingError(stage Stage, offset int, path []string, encoding, detail string) *Error {
	return &Error{
		Stage:  stage,
		Kind:   KindEncodingError,
		Offset: offset,
		Path:   path,
		Detail: fmt.Sprintf("%s: %s", encoding, detail),
	}
}

// ShortRecord creates an error for a record whose declared length exceeds the remaining bytes
func ShortRecord(offset, declared, remain int) *Error {
	return &Error{
		Stage:  StageRecord,
		Kind:   KindShortRecord,
		Offset: offset,
		Detail: fmt.Sprintf("declared %d payload bytes, %d remain", declared, remain),
	}
}

// UnknownKind creates an error for an unrecognized record discriminant
func UnknownKind(offset int, kind byte) *Error {
	return &Error{
		Stage:  StageRecord,
		Kind:   KindUnknownKind,
		Offset: offset,
		Detail: fmt.Sprintf("record kind 0x%02x", kind),
		Value:  kind,
	}
}

// DanglingReference creates an error for a reference that does not resolve to a record
func DanglingReference(offset int, path []string, ref uint32, count int) *Error {
	return &Error{
		Stage:  StageModel,
		Kind:   KindDanglingReference,
		Offset: offset,
		Path:   path,
		Detail: fmt.Sprintf("reference %d out of range (%d records)", ref, count),
		Value:  ref,
	}
}

// InvariantViolation creates an error for a failed whole-document check
func InvariantViolation(offset int, path []string, format string, args ...any) *Error {
	return &Error{
		Stage:  StageModel,
		Kind:   KindInvariantViolation,
		Offset: offset,
		Path:   path,
		Detail: fmt.Sprintf(format, args...),
	}
}

// TrailingBytes creates an error for unconsumed bytes after the last record in strict mode
func TrailingBytes(offset, count int) *Error {
	return &Error{
		Stage:  StageRecord,
		Kind:   KindTrailingBytes,
		Offset: offset,
		Detail: fmt.Sprintf("%d unconsumed bytes after last record", count),
	}
}

// Wrap wraps an existing error with stage and kind context
func Wrap(stage Stage, kind Kind, offset int, cause error, detail string) *Error {
	return &Error{
		Stage:  stage,
		Kind:   kind,
		Offset: offset,
		Detail: detail,
		Cause:  cause,
	}
}
