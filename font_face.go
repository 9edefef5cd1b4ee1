package hellotext

import "github.com/go-theft-auto/hellotext/ttf"

// FontFace is the font engine surface used to resolve and rasterize glyphs.
// *ttf.Font satisfies it; tests inject fakes to exercise failure paths.
//
// Example usage:
//
//	face, err := ttf.Open("fonts/font.ttf")
//	if err != nil {
//	    return err
//	}
//	chars, err := hellotext.ResolveCharacters(face, "Hello", hellotext.DefaultConfig())
type FontFace interface {
	// GlyphIndex maps a codepoint to a glyph id, 0 when the font lacks it.
	GlyphIndex(r rune) (ttf.GlyphIndex, error)

	// LoadHeader returns the glyph header at the given point size and DPI.
	LoadHeader(g ttf.GlyphIndex, size, dpi float64) (ttf.Header, error)

	// LoadOutline converts a header into an outline stored in s.
	LoadOutline(h ttf.Header, s *ttf.Scratch) (ttf.Outline, error)
}

var _ FontFace = (*ttf.Font)(nil)
