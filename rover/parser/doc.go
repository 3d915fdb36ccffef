// Package parser converts raw mission text into a validated engine.Mission.
//
// The parser performs a single left-to-right pass over the trimmed, non-blank
// lines of the input. Blank lines and surrounding whitespace are tolerated;
// everything else is validated fail-fast with no error aggregation and no
// partial result.
//
// Mission Text Format (UTF-8, newline-separated):
//
//	<maxX> <maxY>
//	<x> <y> <DIR>
//	<commands>
//	[repeat position/commands pair per rover]
//
// <DIR> is one of N/E/S/W (case-insensitive) and <commands> is a non-empty
// string over L/R/M (case-insensitive). Fields split on any whitespace run,
// tabs included.
//
// Error Taxonomy:
//
// Every failure wraps exactly one of the package's sentinel errors
// (ErrEmptyInput, ErrStructure, ErrFormat, ErrIntegerParse, ErrRange,
// ErrInvalidDirection, ErrInvalidCommand) so callers can classify with
// errors.Is while the message names the offending line and value.
//
// Numeric fields must be in strict integer lexical form: "2.0" is rejected
// with ErrIntegerParse even though it denotes an integral value.
package parser
