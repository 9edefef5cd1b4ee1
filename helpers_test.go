package hellotext_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/go-theft-auto/hellotext"
	"github.com/go-theft-auto/hellotext/ttf"
)

// fakeFace is a font engine with hand-made metrics. Glyph outlines are the
// boxes of the header bounds.
type fakeFace struct {
	runes      map[rune]ttf.GlyphIndex
	headers    map[ttf.GlyphIndex]ttf.Header
	headerErr  map[ttf.GlyphIndex]error
	outlineErr map[ttf.GlyphIndex]error
}

func newFakeFace() *fakeFace {
	f := &fakeFace{
		runes:      map[rune]ttf.GlyphIndex{},
		headers:    map[ttf.GlyphIndex]ttf.Header{},
		headerErr:  map[ttf.GlyphIndex]error{},
		outlineErr: map[ttf.GlyphIndex]error{},
	}
	// .notdef
	f.glyph(0, boxHeader(1, -10, 7, 0, 8))
	return f
}

// glyph registers g with header h and maps runes to it.
func (f *fakeFace) glyph(g ttf.GlyphIndex, h ttf.Header, runes ...rune) {
	h.Glyph = g
	f.headers[g] = h
	for _, r := range runes {
		f.runes[r] = g
	}
}

func (f *fakeFace) GlyphIndex(r rune) (ttf.GlyphIndex, error) {
	return f.runes[r], nil
}

func (f *fakeFace) LoadHeader(g ttf.GlyphIndex, size, dpi float64) (ttf.Header, error) {
	if err := f.headerErr[g]; err != nil {
		return ttf.Header{}, err
	}
	h, ok := f.headers[g]
	if !ok {
		return ttf.Header{}, &ttf.Error{Op: "load header", Glyph: g, Result: ttf.ResultInvalidGlyph}
	}
	return h, nil
}

func (f *fakeFace) LoadOutline(h ttf.Header, s *ttf.Scratch) (ttf.Outline, error) {
	if err := f.outlineErr[h.Glyph]; err != nil {
		return ttf.Outline{}, err
	}
	b := h.Bounds
	segs := sfnt.Segments{
		{Op: sfnt.SegmentOpMoveTo, Args: [3]fixed.Point26_6{b.Min}},
		{Op: sfnt.SegmentOpLineTo, Args: [3]fixed.Point26_6{{X: b.Max.X, Y: b.Min.Y}}},
		{Op: sfnt.SegmentOpLineTo, Args: [3]fixed.Point26_6{b.Max}},
		{Op: sfnt.SegmentOpLineTo, Args: [3]fixed.Point26_6{{X: b.Min.X, Y: b.Max.Y}}},
	}
	return ttf.Outline{Segments: segs, Bounds: b}, nil
}

// boxHeader is a one-contour glyph with bounds in whole pixels (y down).
func boxHeader(minX, minY, maxX, maxY, advance int) ttf.Header {
	return ttf.Header{
		Contours: 1,
		Bounds: fixed.Rectangle26_6{
			Min: fixed.P(minX, minY),
			Max: fixed.P(maxX, maxY),
		},
		Advance: fixed.I(advance),
	}
}

// emptyHeader is a glyph without contours, like a space.
func emptyHeader(advance int) ttf.Header {
	return ttf.Header{Advance: fixed.I(advance)}
}

// letterFace maps 'a' to a box 8x10 px with advance 10 and ' ' to an
// empty glyph with advance 5.
func letterFace() *fakeFace {
	f := newFakeFace()
	f.glyph(1, boxHeader(1, -10, 9, 0, 10), 'a')
	f.glyph(2, emptyHeader(5), ' ')
	return f
}

func parseGoRegular(t *testing.T) *ttf.Font {
	t.Helper()
	f, err := ttf.Parse(goregular.TTF)
	require.NoError(t, err)
	return f
}

// mockRenderer is a test renderer that doesn't render anything.
type mockRenderer struct {
	uploadErr error

	uploadCalls    int
	uploadedLayers int
	updateCalls    int
	resizeCalls    int
	renderCalls    int
	deleteCalls    int

	width, height int
	quads         []hellotext.Quad
}

func (m *mockRenderer) UploadAtlas(a *hellotext.Atlas) error {
	m.uploadCalls++
	if m.uploadErr != nil {
		return m.uploadErr
	}
	m.uploadedLayers = a.Layers
	return nil
}

func (m *mockRenderer) UpdateQuads(quads []hellotext.Quad) error {
	m.updateCalls++
	m.quads = quads
	return nil
}

func (m *mockRenderer) Resize(width, height int) {
	m.resizeCalls++
	m.width, m.height = width, height
}

func (m *mockRenderer) Render() error {
	m.renderCalls++
	return nil
}

func (m *mockRenderer) Delete() {
	m.deleteCalls++
}
