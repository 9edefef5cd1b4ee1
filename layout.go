package hellotext

import (
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"

	"github.com/go-theft-auto/hellotext/ttf"
)

// GraphicalChar is one drawn occurrence of a character.
type GraphicalChar struct {
	Char   int  // Index into GlyphSet.Chars
	Origin Vec2 // Quad position before centering
	Quad   Quad // Quad positioned on the surface
}

// Text is a laid out string.
type Text struct {
	Chars  []GraphicalChar // One per drawn occurrence, in text order
	Width  float32         // Horizontal extent used for centering
	Height float32         // Ascender minus descender of the first occurrence

	surfaceW, surfaceH int
	sized              bool
}

// LayoutText positions one quad per drawable occurrence of text.
//
// The pen starts at 0 and moves by each glyph's advance; the last
// occurrence, when it has ink, only moves the pen to its right edge. Empty
// occurrences move the pen but get no quad. The width is the final pen
// position plus the first occurrence's left side bearing. Quads are placed
// in a y-down space whose baseline sits at the first occurrence's ascender.
func LayoutText(gs *GlyphSet, text string, cfg Config) (*Text, error) {
	runes := []rune(norm.NFC.String(text))
	if len(runes) == 0 {
		return nil, ErrEmptyText
	}

	first := gs.Chars[gs.Lookup(runes[0])].Header
	baseline := ttf.ToFloat(first.Ascender())

	t := &Text{
		Chars:  make([]GraphicalChar, 0, len(runes)),
		Height: baseline - ttf.ToFloat(first.Descender()),
	}

	pad := float32(cfg.halfBleed())
	cell := Vec2{X: float32(gs.CellWidth), Y: float32(gs.CellHeight)}
	last := len(runes) - 1

	var pen fixed.Int26_6
	for i, r := range runes {
		idx := gs.Lookup(r)
		c := gs.Chars[idx]
		h := c.Header

		if c.Drawable() {
			origin := Vec2{
				X: ttf.ToFloat(pen) + float32(h.Bounds.Min.X.Floor()) - pad,
				Y: baseline + float32(h.Bounds.Min.Y.Floor()) - pad,
			}
			t.Chars = append(t.Chars, GraphicalChar{
				Char:   idx,
				Origin: origin,
				Quad: Quad{
					Pos:   origin,
					Size:  cell,
					Layer: c.Depth,
					UV:    fullLayerUV,
				},
			})
		}

		if i == last && !h.Empty() {
			pen += h.RightExtent()
		} else {
			pen += h.Advance
		}
	}

	t.Width = ttf.ToFloat(pen + first.LeftSideBearing())
	Logger().Debug("text laid out", "occurrences", len(runes), "quads", len(t.Chars),
		"width", t.Width, "height", t.Height)
	return t, nil
}

// Extent returns the size of the text box used for centering.
func (t *Text) Extent() Vec2 {
	return Vec2{X: t.Width, Y: t.Height}
}

// Recenter moves every quad so the text box is centered on a surface of
// the given size. It returns false without touching the quads when the
// size equals the last one observed.
func (t *Text) Recenter(width, height int) bool {
	if t.sized && width == t.surfaceW && height == t.surfaceH {
		return false
	}
	t.surfaceW, t.surfaceH, t.sized = width, height, true

	offset := Vec2{X: float32(width), Y: float32(height)}.Mul(0.5).Sub(t.Extent().Mul(0.5))
	for i := range t.Chars {
		t.Chars[i].Quad.Pos = t.Chars[i].Origin.Add(offset)
	}
	return true
}

// Quads returns the positioned quads in text order.
func (t *Text) Quads() []Quad {
	quads := make([]Quad, len(t.Chars))
	for i, gc := range t.Chars {
		quads[i] = gc.Quad
	}
	return quads
}
