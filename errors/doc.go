// Package errors provides structured error types for the cls-codec library.
//
// Errors are categorized by Stage (where in the pipeline the error occurred)
// and Kind (error category). The Error type includes rich context: the
// absolute byte offset in the input, a field path, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.StageRecord, errors.KindOutOfBounds).
//		Offset(pos).
//		Detail("declared %d records, found %d", declared, found).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.ShortRecord(pos, declared, remain)
//	err := errors.UnknownKind(pos, kind)
//
// All errors implement the standard error interface. Is matches on
// Stage and Kind, so callers can test for a category:
//
//	errors.Is(err, &Error{Stage: StageRecord, Kind: KindShortRecord})
package errors
