package analytics

import "github.com/morikuni/failure"

// Failure codes used across the package. Callers classify errors with
// failure.Is / failure.CodeOf; anything not carrying one of these codes
// went through failure.MarkUnexpected and keeps its original message.
const (
	// NotFound: the input resource (CSV, dictionary, keyword file) does not exist.
	NotFound failure.StringCode = "NotFound"
	// EmptyInput: the input contains no usable data at all.
	EmptyInput failure.StringCode = "EmptyInput"
	// InvalidSchema: missing required columns, malformed rows or
	// unparseable timestamps, or records lacking a derived field.
	InvalidSchema failure.StringCode = "InvalidSchema"
	// InvalidArgument: an argument of the wrong shape (non-positive
	// limit and the like).
	InvalidArgument failure.StringCode = "InvalidArgument"
)
