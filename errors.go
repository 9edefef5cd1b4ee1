package hellotext

import "errors"

// Sentinel errors for hellotext package.
var (
	// ErrEmptyText is returned when there is nothing to lay out.
	ErrEmptyText = errors.New("hellotext: empty text")

	// ErrFallbackGlyph is returned when the missing-glyph slot cannot be loaded.
	ErrFallbackGlyph = errors.New("hellotext: cannot load fallback glyph")

	// ErrNoDrawableGlyphs is returned when the text has no glyph with contours.
	ErrNoDrawableGlyphs = errors.New("hellotext: no drawable glyphs")

	// ErrTooManyGlyphs is returned when the drawable glyphs exceed Config.MaxLayers.
	ErrTooManyGlyphs = errors.New("hellotext: too many glyphs for texture array")

	// ErrTooManyQuads is returned when a QuadBuffer exceeds 16-bit indexing.
	ErrTooManyQuads = errors.New("hellotext: too many quads")

	// ErrNotAttached is returned by Scene.Frame before Scene.Attach.
	ErrNotAttached = errors.New("hellotext: scene has no renderer")
)
