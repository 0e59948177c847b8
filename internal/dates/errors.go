package dates

import "errors"

// Sentinel errors for the date recognizer. All of them are recoverable at
// the Extract boundary: a failing span becomes a ParseError entry instead
// of aborting the scan.
var (
	// ErrUnknownMonth indicates a month name lookup failed.
	ErrUnknownMonth = errors.New("unknown month name")

	// ErrUnknownOrdinal indicates a written day-word lookup failed.
	ErrUnknownOrdinal = errors.New("unknown ordinal day word")

	// ErrMalformedDateSpan indicates a matched substring cannot be
	// assembled into a valid calendar date (month 13, day 32, ...).
	ErrMalformedDateSpan = errors.New("malformed date span")

	// ErrInvertedRange indicates the parsed start is after the parsed end.
	ErrInvertedRange = errors.New("range start is after range end")

	// ErrNoYear indicates the span contains no recognizable year token.
	ErrNoYear = errors.New("no year found in span")
)
