package ttf

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/flopp/go-findfont"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// GlyphIndex is a glyph identifier within a font.
type GlyphIndex = sfnt.GlyphIndex

// Sentinel errors for font loading.
var (
	// ErrOpen is returned when the font file cannot be located, opened or read.
	ErrOpen = errors.New("ttf: cannot open font")

	// ErrParse is returned when the font data cannot be parsed.
	ErrParse = errors.New("ttf: cannot parse font")
)

// Font is a parsed TrueType or OpenType font.
type Font struct {
	sfnt *sfnt.Font
	buf  sfnt.Buffer
	name string
}

// Open reads and parses the font at path. Files ending in .gz are
// decompressed first. When path does not exist and is a bare file name
// (no directory part), the system font directories are searched for it.
func Open(path string) (*Font, error) {
	resolved, err := locate(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer file.Close()

	var r io.Reader = file
	if strings.HasSuffix(resolved, ".gz") {
		gz, err := gzip.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrOpen, resolved, err)
		}
		defer gz.Close()
		r = gz
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrOpen, resolved, err)
	}
	return Parse(data)
}

// locate returns the path to read for the given font path.
func locate(path string) (string, error) {
	_, err := os.Stat(path)
	if err == nil {
		return path, nil
	}
	if !errors.Is(err, fs.ErrNotExist) || filepath.Base(path) != path {
		return "", fmt.Errorf("%w: %w", ErrOpen, err)
	}

	found, ferr := findfont.Find(path)
	if ferr != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrOpen, path, ferr)
	}
	return found, nil
}

// Parse parses font data. The data must not be modified while the
// font is in use.
func Parse(data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrParse, &Error{Op: "parse", Result: ResultParseFailed})
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, &Error{Op: "parse", Result: ResultParseFailed, Err: err})
	}

	fnt := &Font{sfnt: f}
	if name, err := f.Name(&fnt.buf, sfnt.NameIDFull); err == nil {
		fnt.name = name
	}
	return fnt, nil
}

// Name returns the full font name, or "" if the font has none.
func (f *Font) Name() string { return f.name }

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int { return f.sfnt.NumGlyphs() }

// GlyphIndex maps r to a glyph id. A codepoint missing from the font
// maps to 0 without error.
func (f *Font) GlyphIndex(r rune) (GlyphIndex, error) {
	g, err := f.sfnt.GlyphIndex(&f.buf, r)
	if err != nil {
		return 0, &Error{Op: "glyph index", Result: ResultInvalidFont, Err: err}
	}
	return g, nil
}

// LoadHeader reads the header of glyph g at the given point size and
// density (dots per inch).
func (f *Font) LoadHeader(g GlyphIndex, size, dpi float64) (Header, error) {
	ppem := PPEM(size, dpi)
	if ppem <= 0 {
		return Header{}, &Error{Op: "load header", Glyph: g, Result: ResultBadRegion}
	}

	segs, err := f.sfnt.LoadGlyph(&f.buf, g, ppem, nil)
	if err != nil {
		return Header{}, wrapGlyphErr("load header", g, err)
	}
	contours := countContours(segs)

	bounds, advance, err := f.sfnt.GlyphBounds(&f.buf, g, ppem, font.HintingNone)
	if err != nil {
		return Header{}, wrapGlyphErr("load header", g, err)
	}
	if contours == 0 {
		bounds = fixed.Rectangle26_6{}
	}

	return Header{
		Glyph:    g,
		PPEM:     ppem,
		Contours: contours,
		Bounds:   bounds,
		Advance:  advance,
	}, nil
}

// LoadOutline converts h into its outline, stored in s. The outline is
// valid until the next LoadOutline call with the same scratch.
func (f *Font) LoadOutline(h Header, s *Scratch) (Outline, error) {
	segs, err := f.sfnt.LoadGlyph(&s.buf, h.Glyph, h.PPEM, nil)
	if err != nil {
		return Outline{}, wrapGlyphErr("load outline", h.Glyph, err)
	}
	s.segs = append(s.segs[:0], segs...)
	return Outline{Segments: s.segs, Bounds: s.segs.Bounds()}, nil
}

// PPEM converts a point size at the given density to pixels per em.
func PPEM(size, dpi float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(size * dpi / 72 * 64))
}

// countContours counts the closed paths of an outline.
func countContours(segs sfnt.Segments) int {
	n := 0
	for _, seg := range segs {
		if seg.Op == sfnt.SegmentOpMoveTo {
			n++
		}
	}
	return n
}
