package hellotext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/hellotext"
	"github.com/go-theft-auto/hellotext/ttf"
)

func layoutLetters(t *testing.T, text string) (*hellotext.GlyphSet, *hellotext.Text) {
	t.Helper()
	cfg := hellotext.DefaultConfig()
	gs, err := hellotext.ResolveCharacters(letterFace(), text, cfg)
	require.NoError(t, err)
	laid, err := hellotext.LayoutText(gs, text, cfg)
	require.NoError(t, err)
	return gs, laid
}

func TestLayoutRepeatedAndEmpty(t *testing.T) {
	gs, laid := layoutLetters(t, "aa ")

	// Two quads for the two 'a', none for the space.
	require.Len(t, laid.Chars, 2)
	assert.Equal(t, laid.Chars[0].Char, laid.Chars[1].Char)
	assert.Equal(t, 'a', gs.Chars[laid.Chars[0].Char].Codepoint)

	// pen + floor(minX) - bleed/2, baseline + floor(minY) - bleed/2
	assert.Equal(t, hellotext.Vec2{X: 0, Y: -1}, laid.Chars[0].Origin)
	assert.Equal(t, hellotext.Vec2{X: 10, Y: -1}, laid.Chars[1].Origin)

	for _, gc := range laid.Chars {
		assert.Equal(t, hellotext.Vec2{X: float32(gs.CellWidth), Y: float32(gs.CellHeight)}, gc.Quad.Size)
		assert.Equal(t, 0, gc.Quad.Layer)
		assert.Equal(t, [4]float32{0, 0, 1, 1}, gc.Quad.UV)
	}

	// 10 + 10 + 5 for the trailing space, plus the left side bearing of 'a'.
	assert.Equal(t, float32(26), laid.Width)
	assert.Equal(t, float32(10), laid.Height)
}

func TestLayoutLastGlyphRightExtent(t *testing.T) {
	_, laid := layoutLetters(t, "aa")

	// The last 'a' stops at its right edge (9) instead of its advance (10).
	assert.Equal(t, float32(10+9+1), laid.Width)
}

func TestRecenter(t *testing.T) {
	_, laid := layoutLetters(t, "aa ")

	require.True(t, laid.Recenter(800, 600))
	q := laid.Quads()
	require.Len(t, q, 2)
	// 400 - 26/2, 300 - 10/2
	assert.InDelta(t, 387, q[0].Pos.X, 1e-4)
	assert.InDelta(t, 294, q[0].Pos.Y, 1e-4)
	assert.InDelta(t, 397, q[1].Pos.X, 1e-4)

	before := laid.Quads()
	require.True(t, laid.Recenter(1024, 600))
	after := laid.Quads()
	for i := range after {
		assert.InDelta(t, 112, after[i].Pos.X-before[i].Pos.X, 1e-4)
		assert.Equal(t, before[i].Pos.Y, after[i].Pos.Y)
	}
}

func TestRecenterIdempotent(t *testing.T) {
	_, laid := layoutLetters(t, "aa ")

	require.True(t, laid.Recenter(640, 480))
	first := laid.Quads()
	assert.False(t, laid.Recenter(640, 480))
	assert.Equal(t, first, laid.Quads())

	// Returning to an earlier size gives the same positions.
	require.True(t, laid.Recenter(1280, 720))
	require.True(t, laid.Recenter(640, 480))
	for i, q := range laid.Quads() {
		assert.InDelta(t, first[i].Pos.X, q.Pos.X, 1e-4)
		assert.InDelta(t, first[i].Pos.Y, q.Pos.Y, 1e-4)
	}
}

func TestLayoutOccurrenceCount(t *testing.T) {
	font := parseGoRegular(t)
	cfg := hellotext.DefaultConfig()
	const text = "Hello, world."

	gs, err := hellotext.ResolveCharacters(font, text, cfg)
	require.NoError(t, err)
	laid, err := hellotext.LayoutText(gs, text, cfg)
	require.NoError(t, err)

	// Every character but the space is drawn.
	assert.Len(t, laid.Chars, len(text)-1)
	assert.Positive(t, laid.Width)
	assert.Positive(t, laid.Height)

	// Quads advance left to right.
	for i := 1; i < len(laid.Chars); i++ {
		assert.Greater(t, laid.Chars[i].Origin.X, laid.Chars[i-1].Origin.X)
	}
}

func TestLayoutEmptyText(t *testing.T) {
	gs, _ := layoutLetters(t, "a")
	_, err := hellotext.LayoutText(gs, "", hellotext.DefaultConfig())
	assert.ErrorIs(t, err, hellotext.ErrEmptyText)
}

func TestLayoutAliasDrawn(t *testing.T) {
	face := letterFace()
	face.runes['A'] = 1 // same glyph as 'a'
	cfg := hellotext.DefaultConfig()

	gs, err := hellotext.ResolveCharacters(face, "aA", cfg)
	require.NoError(t, err)
	laid, err := hellotext.LayoutText(gs, "aA", cfg)
	require.NoError(t, err)

	require.Len(t, laid.Chars, 2)
	assert.Equal(t, laid.Chars[0].Char, laid.Chars[1].Char)
	assert.Equal(t, laid.Chars[0].Quad.Layer, laid.Chars[1].Quad.Layer)
	assert.Equal(t, float32(10), laid.Chars[1].Origin.X)
}

func TestLayoutFallbackDrawn(t *testing.T) {
	gs, laid := layoutLetters(t, "a\u4e00")

	require.Len(t, laid.Chars, 2)
	assert.Equal(t, 1, laid.Chars[0].Char)
	assert.Equal(t, 1, laid.Chars[0].Quad.Layer)
	assert.Equal(t, 0, laid.Chars[1].Char)
	assert.Equal(t, gs.Chars[0].Depth, laid.Chars[1].Quad.Layer)
	assert.Equal(t, 0, laid.Chars[1].Quad.Layer)
	assert.Equal(t, float32(10), laid.Chars[1].Origin.X)
}

func TestLayoutNonFatalHeaderDrawnWithFallback(t *testing.T) {
	face := letterFace()
	face.glyph(3, boxHeader(0, -12, 6, 2, 7), 'b')
	face.headerErr[3] = &ttf.Error{Op: "load header", Glyph: 3, Result: ttf.ResultGlyphNotFound}
	cfg := hellotext.DefaultConfig()

	gs, err := hellotext.ResolveCharacters(face, "ab", cfg)
	require.NoError(t, err)
	laid, err := hellotext.LayoutText(gs, "ab", cfg)
	require.NoError(t, err)

	require.Len(t, laid.Chars, 2)
	assert.Equal(t, 0, laid.Chars[1].Char)
	assert.Equal(t, 0, laid.Chars[1].Quad.Layer)
}
