package ttf

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// scratchSegments is the initial segment capacity of a Scratch. Outlines
// with more segments grow the scratch once and keep the capacity.
const scratchSegments = 256

// Method selects the anti-aliasing applied by Rasterize.
type Method int

const (
	// MethodSmooth keeps the exact coverage computed by the rasterizer.
	MethodSmooth Method = iota
	// MethodSharp quantizes coverage to fully opaque or fully transparent.
	MethodSharp
)

func (m Method) String() string {
	switch m {
	case MethodSmooth:
		return "smooth"
	case MethodSharp:
		return "sharp"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// Scratch is the per-glyph working memory used to convert headers into
// outlines and outlines into coverage.
type Scratch struct {
	buf  sfnt.Buffer
	segs sfnt.Segments
	rast vector.Rasterizer
}

// NewScratch allocates working memory for LoadOutline and Rasterize.
//
// sfnt exposes no per-font upper bound on outline size, so the segment
// buffer starts at scratchSegments and LoadOutline grows it by append when
// a glyph needs more. The grown capacity is kept for the following glyphs,
// so one scratch reaches the largest outline of the text at most once.
func NewScratch() *Scratch {
	return &Scratch{segs: make(sfnt.Segments, 0, scratchSegments)}
}

// Release drops the scratch memory. The scratch must not be used afterwards.
func (s *Scratch) Release() {
	s.buf = sfnt.Buffer{}
	s.segs = nil
	s.rast = vector.Rasterizer{}
}

// Outline is a glyph outline in pixel units (y down, origin at the dot).
type Outline struct {
	Segments sfnt.Segments
	Bounds   fixed.Rectangle26_6
}

// Rasterize draws o into dst with the glyph dot placed at origin, which is
// relative to the top-left corner of dst. Coverage is written as premultiplied white, so
// every channel of a pixel holds the same value.
//
// An outline reaching outside dst is drawn clipped and reported with the
// non-fatal ResultClipped.
func Rasterize(o Outline, s *Scratch, dst *image.RGBA, origin image.Point, m Method) error {
	r := dst.Bounds()
	if r.Empty() {
		return &Error{Op: "rasterize", Result: ResultBadRegion}
	}

	s.rast.Reset(r.Dx(), r.Dy())
	s.rast.DrawOp = draw.Src

	ox := float32(origin.X)
	oy := float32(origin.Y)
	point := func(p fixed.Point26_6) (float32, float32) {
		return ToFloat(p.X) + ox, ToFloat(p.Y) + oy
	}

	started := false
	for _, seg := range o.Segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if started {
				s.rast.ClosePath()
			}
			s.rast.MoveTo(point(seg.Args[0]))
			started = true
		case sfnt.SegmentOpLineTo:
			s.rast.LineTo(point(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			bx, by := point(seg.Args[0])
			cx, cy := point(seg.Args[1])
			s.rast.QuadTo(bx, by, cx, cy)
		case sfnt.SegmentOpCubeTo:
			bx, by := point(seg.Args[0])
			cx, cy := point(seg.Args[1])
			dx, dy := point(seg.Args[2])
			s.rast.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	if !started {
		return nil
	}
	s.rast.ClosePath()

	s.rast.Draw(dst, r, image.White, image.Point{})

	if m == MethodSharp {
		sharpen(dst)
	}

	ink := image.Rect(
		o.Bounds.Min.X.Floor()+origin.X, o.Bounds.Min.Y.Floor()+origin.Y,
		o.Bounds.Max.X.Ceil()+origin.X, o.Bounds.Max.Y.Ceil()+origin.Y,
	).Add(r.Min)
	if !ink.In(r) {
		return &Error{Op: "rasterize", Result: ResultClipped}
	}
	return nil
}

// sharpen quantizes coverage with a 50% threshold.
func sharpen(dst *image.RGBA) {
	r := dst.Bounds()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := dst.Pix[dst.PixOffset(r.Min.X, y):dst.PixOffset(r.Max.X, y)]
		for i := range row {
			if row[i] < 128 {
				row[i] = 0
			} else {
				row[i] = 255
			}
		}
	}
}
