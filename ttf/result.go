package ttf

import (
	"errors"
	"fmt"

	"golang.org/x/image/font/sfnt"
)

// Result is the outcome code of a font engine operation.
type Result int

const (
	ResultOK            Result = iota
	ResultGlyphNotFound        // codepoint or glyph id not present in the font
	ResultColoredGlyph         // glyph has no vector outline (bitmap or color data)
	ResultClipped              // outline did not fit the destination region
	ResultInvalidFont          // malformed font tables
	ResultInvalidGlyph         // malformed glyph data
	ResultBadRegion            // destination region is empty or mis-sized
	ResultParseFailed          // font blob could not be parsed
)

var resultNames = [...]string{
	ResultOK:            "ok",
	ResultGlyphNotFound: "glyph not found",
	ResultColoredGlyph:  "colored glyph",
	ResultClipped:       "outline clipped",
	ResultInvalidFont:   "invalid font",
	ResultInvalidGlyph:  "invalid glyph",
	ResultBadRegion:     "bad region",
	ResultParseFailed:   "parse failed",
}

// String returns the human-readable name of the result.
func (r Result) String() string {
	if r < 0 || int(r) >= len(resultNames) {
		return fmt.Sprintf("result(%d)", int(r))
	}
	return resultNames[r]
}

// Fatal reports whether the result must abort the dependent step.
func (r Result) Fatal() bool {
	switch r {
	case ResultOK, ResultGlyphNotFound, ResultColoredGlyph, ResultClipped:
		return false
	default:
		return true
	}
}

// Error is returned by font engine operations.
type Error struct {
	Op     string     // operation that failed, e.g. "load header"
	Glyph  GlyphIndex // glyph involved, when applicable
	Result Result
	Err    error // underlying sfnt error, may be nil
}

func (e *Error) Error() string {
	msg := "ttf: " + e.Op
	if e.Glyph != 0 {
		msg += fmt.Sprintf(" (glyph %d)", e.Glyph)
	}
	msg += ": " + e.Result.String()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// IsFatal reports whether err must abort the dependent step.
// Errors that did not originate in this package are always fatal.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Result.Fatal()
	}
	return true
}

// ResultOf extracts the Result code from err, ResultOK for nil.
func ResultOf(err error) Result {
	if err == nil {
		return ResultOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Result
	}
	return ResultInvalidFont
}

// wrapGlyphErr classifies an sfnt error returned for glyph g.
func wrapGlyphErr(op string, g GlyphIndex, err error) error {
	res := ResultInvalidGlyph
	switch {
	case errors.Is(err, sfnt.ErrNotFound):
		res = ResultGlyphNotFound
	case errors.Is(err, sfnt.ErrColoredGlyph):
		res = ResultColoredGlyph
	}
	return &Error{Op: op, Glyph: g, Result: res, Err: err}
}
