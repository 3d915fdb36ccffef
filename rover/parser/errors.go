package parser

import "errors"

// Sentinel errors classifying every way mission text can be rejected. Each
// Parse failure wraps exactly one of these; match with errors.Is.
var (
	// ErrEmptyInput means no usable lines remained after trimming.
	ErrEmptyInput = errors.New("input is empty")

	// ErrStructure means the overall line count is wrong: fewer than three
	// lines, or rover lines that do not come in position/commands pairs.
	ErrStructure = errors.New("invalid mission structure")

	// ErrFormat means a plateau or position line has the wrong field count.
	ErrFormat = errors.New("invalid line format")

	// ErrIntegerParse means a numeric field is not a valid integer. This covers
	// non-numeric text, fractional values, NaN and Infinity.
	ErrIntegerParse = errors.New("not a valid integer")

	// ErrRange means a negative plateau bound or a starting position outside
	// the plateau bounds.
	ErrRange = errors.New("value out of range")

	// ErrInvalidDirection means a direction letter outside {N,E,S,W}.
	ErrInvalidDirection = errors.New("invalid direction")

	// ErrInvalidCommand means a commands line that is empty or contains a
	// character outside {L,R,M}.
	ErrInvalidCommand = errors.New("invalid commands")
)
