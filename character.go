package hellotext

import "github.com/go-theft-auto/hellotext/ttf"

// NoDepth marks a character that owns no atlas layer.
const NoDepth = -1

// Character is one unique glyph needed to render the text.
type Character struct {
	Codepoint rune           // Source codepoint (FallbackRune for slot 0)
	Glyph     ttf.GlyphIndex // Glyph id in the font
	Header    ttf.Header     // Metrics at the configured size
	Depth     int            // Atlas layer, NoDepth when not drawn
}

// Drawable reports whether the character owns an atlas layer.
func (c Character) Drawable() bool { return c.Depth != NoDepth }

// GlyphSet is the deduplicated character table of a text.
// Chars[0] is always the fallback (missing glyph) slot.
type GlyphSet struct {
	Chars      []Character
	CellWidth  int // Atlas cell width, bleed included
	CellHeight int // Atlas cell height, bleed included
	Layers     int // Number of drawable characters

	index map[rune]int // every codepoint of the text -> Chars index
}

// Lookup returns the index into Chars used to draw r.
// Codepoints that were not part of the resolved text map to the fallback slot.
func (gs *GlyphSet) Lookup(r rune) int {
	if i, ok := gs.index[r]; ok {
		return i
	}
	return 0
}

// Drawable returns the drawable characters ordered by depth.
func (gs *GlyphSet) Drawable() []Character {
	out := make([]Character, 0, gs.Layers)
	for _, c := range gs.Chars {
		if c.Drawable() {
			out = append(out, c)
		}
	}
	return out
}
