package ttf_test

import (
	"bytes"
	"compress/gzip"
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/go-theft-auto/hellotext/ttf"
)

func parseGoRegular(t *testing.T) *ttf.Font {
	t.Helper()
	f, err := ttf.Parse(goregular.TTF)
	require.NoError(t, err)
	return f
}

func TestParse(t *testing.T) {
	f := parseGoRegular(t)
	assert.NotEmpty(t, f.Name())
	assert.Greater(t, f.NumGlyphs(), 100)
}

func TestParseInvalid(t *testing.T) {
	_, err := ttf.Parse([]byte("definitely not a font"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ttf.ErrParse))
	assert.True(t, ttf.IsFatal(err))
	assert.Equal(t, ttf.ResultParseFailed, ttf.ResultOf(err))

	_, err = ttf.Parse(nil)
	assert.True(t, errors.Is(err, ttf.ErrParse))
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "go.ttf")
	require.NoError(t, os.WriteFile(plain, goregular.TTF, 0o600))
	f, err := ttf.Open(plain)
	require.NoError(t, err)
	assert.Equal(t, parseGoRegular(t).Name(), f.Name())

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err = zw.Write(goregular.TTF)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	zipped := filepath.Join(dir, "go.ttf.gz")
	require.NoError(t, os.WriteFile(zipped, buf.Bytes(), 0o600))
	_, err = ttf.Open(zipped)
	require.NoError(t, err)
}

func TestOpenMissing(t *testing.T) {
	_, err := ttf.Open(filepath.Join(t.TempDir(), "missing.ttf"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ttf.ErrOpen))
}

func TestGlyphIndex(t *testing.T) {
	f := parseGoRegular(t)

	a, err := f.GlyphIndex('a')
	require.NoError(t, err)
	assert.NotZero(t, a)

	b, err := f.GlyphIndex('b')
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	// Private use area codepoint, not covered by Go Regular.
	missing, err := f.GlyphIndex('\U000F0000')
	require.NoError(t, err)
	assert.Zero(t, missing)
}

func TestLoadHeader(t *testing.T) {
	f := parseGoRegular(t)

	g, err := f.GlyphIndex('H')
	require.NoError(t, err)
	h, err := f.LoadHeader(g, 48, 96)
	require.NoError(t, err)

	assert.False(t, h.Empty())
	assert.Greater(t, h.Contours, 0)
	assert.Equal(t, ttf.PPEM(48, 96), h.PPEM)
	assert.Greater(t, h.Advance, fixed.Int26_6(0))
	assert.Greater(t, h.RightExtent(), h.LeftSideBearing())
	assert.Greater(t, h.Ascender(), h.Descender())
	assert.Greater(t, h.PixelWidth(), 0)
	assert.Greater(t, h.PixelHeight(), 0)

	space, err := f.GlyphIndex(' ')
	require.NoError(t, err)
	sh, err := f.LoadHeader(space, 48, 96)
	require.NoError(t, err)
	assert.True(t, sh.Empty())
	assert.Greater(t, sh.Advance, fixed.Int26_6(0))
	assert.Zero(t, sh.PixelWidth())
}

func TestLoadHeaderInvalidGlyph(t *testing.T) {
	f := parseGoRegular(t)
	_, err := f.LoadHeader(ttf.GlyphIndex(f.NumGlyphs()+10), 48, 96)
	require.Error(t, err)
	assert.True(t, ttf.IsFatal(err) || ttf.ResultOf(err) == ttf.ResultGlyphNotFound)
}

func TestRasterize(t *testing.T) {
	f := parseGoRegular(t)
	g, err := f.GlyphIndex('o')
	require.NoError(t, err)
	h, err := f.LoadHeader(g, 32, 72)
	require.NoError(t, err)

	s := ttf.NewScratch()
	defer s.Release()
	o, err := f.LoadOutline(h, s)
	require.NoError(t, err)
	require.NotEmpty(t, o.Segments)

	w, ht := h.PixelWidth()+2, h.PixelHeight()+2
	dst := image.NewRGBA(image.Rect(0, 0, w, ht))
	origin := image.Pt(1-h.Bounds.Min.X.Floor(), 1-h.Bounds.Min.Y.Floor())
	require.NoError(t, ttf.Rasterize(o, s, dst, origin, ttf.MethodSmooth))

	var covered, partial int
	for i := 0; i < len(dst.Pix); i += 4 {
		px := dst.Pix[i : i+4]
		assert.Equal(t, px[3], px[0], "premultiplied white")
		if px[3] > 0 {
			covered++
		}
		if px[3] > 0 && px[3] < 255 {
			partial++
		}
	}
	assert.Greater(t, covered, 0)
	assert.Greater(t, partial, 0, "smooth keeps anti-aliased edges")

	// The bleed border stays clear.
	for x := 0; x < w; x++ {
		assert.Zero(t, dst.RGBAAt(x, 0).A)
	}

	require.NoError(t, ttf.Rasterize(o, s, dst, origin, ttf.MethodSharp))
	for i := 3; i < len(dst.Pix); i += 4 {
		assert.Contains(t, []uint8{0, 255}, dst.Pix[i])
	}
}

func TestRasterizeClipped(t *testing.T) {
	f := parseGoRegular(t)
	g, err := f.GlyphIndex('W')
	require.NoError(t, err)
	h, err := f.LoadHeader(g, 32, 72)
	require.NoError(t, err)

	s := ttf.NewScratch()
	o, err := f.LoadOutline(h, s)
	require.NoError(t, err)

	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	err = ttf.Rasterize(o, s, dst, image.Pt(0, 0), ttf.MethodSmooth)
	require.Error(t, err)
	assert.Equal(t, ttf.ResultClipped, ttf.ResultOf(err))
	assert.False(t, ttf.IsFatal(err))

	err = ttf.Rasterize(o, s, image.NewRGBA(image.Rectangle{}), image.Pt(0, 0), ttf.MethodSmooth)
	assert.True(t, ttf.IsFatal(err))
}
