package ttf

import "golang.org/x/image/math/fixed"

// Header holds the metrics of one glyph at a fixed pixels-per-em.
// Bounds use the sfnt convention: the y axis grows downwards and the
// origin is the glyph's baseline dot.
type Header struct {
	Glyph    GlyphIndex
	PPEM     fixed.Int26_6
	Contours int
	Bounds   fixed.Rectangle26_6
	Advance  fixed.Int26_6
}

// Empty reports whether the glyph has no contours (e.g. a space).
// Empty glyphs advance the pen but are never rasterized.
func (h Header) Empty() bool { return h.Contours == 0 }

// LeftSideBearing is the distance from the dot to the left ink edge.
func (h Header) LeftSideBearing() fixed.Int26_6 { return h.Bounds.Min.X }

// RightExtent is the distance from the dot to the right ink edge.
func (h Header) RightExtent() fixed.Int26_6 { return h.Bounds.Max.X }

// Ascender is the height of the ink above the baseline.
func (h Header) Ascender() fixed.Int26_6 { return -h.Bounds.Min.Y }

// Descender is the (usually negative) depth of the ink below the baseline.
func (h Header) Descender() fixed.Int26_6 { return -h.Bounds.Max.Y }

// PixelWidth is the width in whole pixels covered by the ink.
func (h Header) PixelWidth() int {
	if h.Empty() {
		return 0
	}
	return h.Bounds.Max.X.Ceil() - h.Bounds.Min.X.Floor()
}

// PixelHeight is the height in whole pixels covered by the ink.
func (h Header) PixelHeight() int {
	if h.Empty() {
		return 0
	}
	return h.Bounds.Max.Y.Ceil() - h.Bounds.Min.Y.Floor()
}

// ToFloat converts a 26.6 fixed point value to float32.
func ToFloat(v fixed.Int26_6) float32 { return float32(v) / 64 }
