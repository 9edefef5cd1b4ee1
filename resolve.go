package hellotext

import (
	"fmt"

	"github.com/go-text/typesetting/language"
	"golang.org/x/text/unicode/norm"

	"github.com/go-theft-auto/hellotext/ttf"
)

// ResolveCharacters builds the unique character table for text.
//
// The table keeps first-occurrence order after the fallback slot at index 0.
// A codepoint is skipped when it was already seen, when it maps to the
// fallback glyph, or when its glyph was already recorded for another
// codepoint. A header that fails to load with a fatal result aborts the
// whole resolution; a non-fatal result is logged and the codepoint is drawn
// with the fallback slot.
//
// Drawable characters (non-empty, and the fallback only when some codepoint
// actually fell back to it) receive dense depths in table order. The cell
// size is the largest drawable ink box plus cfg.Bleed on each axis.
func ResolveCharacters(face FontFace, text string, cfg Config) (*GlyphSet, error) {
	text = norm.NFC.String(text)
	if text == "" {
		return nil, ErrEmptyText
	}
	logScripts(text)
	log := Logger()

	fallbackID, err := face.GlyphIndex(cfg.FallbackRune)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFallbackGlyph, err)
	}
	fallback, err := face.LoadHeader(fallbackID, cfg.PointSize, cfg.DPI)
	if err != nil {
		return nil, fmt.Errorf("%w: glyph %d: %w", ErrFallbackGlyph, fallbackID, err)
	}

	gs := &GlyphSet{
		Chars: []Character{{
			Codepoint: cfg.FallbackRune,
			Glyph:     fallbackID,
			Header:    fallback,
			Depth:     NoDepth,
		}},
		index: make(map[rune]int),
	}
	byGlyph := map[ttf.GlyphIndex]int{fallbackID: 0}
	fallbackUsed := false

	for _, r := range text {
		if _, ok := gs.index[r]; ok {
			continue
		}

		g, err := face.GlyphIndex(r)
		if err != nil {
			return nil, fmt.Errorf("hellotext: glyph index of %q: %w", r, err)
		}
		if g == fallbackID {
			log.Debug("codepoint uses fallback glyph", "rune", string(r), "glyph", g)
			gs.index[r] = 0
			fallbackUsed = true
			continue
		}
		if i, ok := byGlyph[g]; ok {
			// Several codepoints sharing one glyph collapse to one character.
			log.Debug("codepoint shares glyph", "rune", string(r), "with", string(gs.Chars[i].Codepoint), "glyph", g)
			gs.index[r] = i
			continue
		}

		h, err := face.LoadHeader(g, cfg.PointSize, cfg.DPI)
		if err != nil {
			if ttf.IsFatal(err) {
				return nil, fmt.Errorf("hellotext: header of %q: %w", r, err)
			}
			log.Warn("glyph header unavailable, using fallback", "rune", string(r),
				"glyph", g, "result", ttf.ResultOf(err).String())
			gs.index[r] = 0
			fallbackUsed = true
			continue
		}
		log.Debug("glyph loaded", "rune", string(r), "glyph", g,
			"contours", h.Contours, "advance", ttf.ToFloat(h.Advance))

		byGlyph[g] = len(gs.Chars)
		gs.index[r] = len(gs.Chars)
		gs.Chars = append(gs.Chars, Character{Codepoint: r, Glyph: g, Header: h, Depth: NoDepth})
	}

	var maxW, maxH int
	for i := range gs.Chars {
		c := &gs.Chars[i]
		if c.Header.Empty() || (i == 0 && !fallbackUsed) {
			continue
		}
		c.Depth = gs.Layers
		gs.Layers++
		maxW = max(maxW, c.Header.PixelWidth())
		maxH = max(maxH, c.Header.PixelHeight())
	}
	if cfg.MaxLayers > 0 && gs.Layers > cfg.MaxLayers {
		return nil, fmt.Errorf("%w: %d layers, limit %d", ErrTooManyGlyphs, gs.Layers, cfg.MaxLayers)
	}
	if gs.Layers > 0 {
		gs.CellWidth = maxW + cfg.Bleed
		gs.CellHeight = maxH + cfg.Bleed
	}

	log.Debug("characters resolved", "unique", len(gs.Chars), "layers", gs.Layers,
		"cell", fmt.Sprintf("%dx%d", gs.CellWidth, gs.CellHeight))
	return gs, nil
}

// logScripts reports the scripts of text. Layout is strictly left to right
// without shaping, so anything beyond Latin and the shared scripts is
// flagged.
func logScripts(text string) {
	log := Logger()
	seen := make(map[language.Script]bool)
	var scripts []language.Script
	for _, r := range text {
		s := language.LookupScript(r)
		if seen[s] {
			continue
		}
		seen[s] = true
		scripts = append(scripts, s)
	}
	log.Debug("text scripts", "scripts", scripts)

	for _, s := range scripts {
		switch s {
		case language.Latin, language.Common, language.Inherited:
		default:
			log.Warn("script drawn without shaping", "script", s)
		}
	}
}
