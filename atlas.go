package hellotext

import (
	"fmt"
	"image"

	"github.com/go-theft-auto/hellotext/ttf"
)

// Atlas is the CPU side of a 2D-array texture: one RGBA layer per
// drawable character, all layers sharing the same cell size.
type Atlas struct {
	CellWidth  int
	CellHeight int
	Layers     int
	Pix        []byte // Layers * CellWidth * CellHeight * 4 bytes, layer-major
}

// LayerSize is the number of bytes of one layer.
func (a *Atlas) LayerSize() int {
	return a.CellWidth * a.CellHeight * 4
}

// Layer returns an image sharing the pixels of layer i.
func (a *Atlas) Layer(i int) *image.RGBA {
	n := a.LayerSize()
	return &image.RGBA{
		Pix:    a.Pix[i*n : (i+1)*n : (i+1)*n],
		Stride: a.CellWidth * 4,
		Rect:   image.Rect(0, 0, a.CellWidth, a.CellHeight),
	}
}

// Release drops the pixel buffer once it has been uploaded.
func (a *Atlas) Release() {
	a.Pix = nil
}

// Released reports whether the pixel buffer was dropped.
func (a *Atlas) Released() bool {
	return a.Pix == nil
}

// BuildAtlas rasterizes every drawable character of gs into its own layer.
//
// Characters are rasterized in table order into layer Character.Depth, with
// the ink placed Bleed/2 pixels from the cell's top-left corner. Non-fatal
// engine results are logged and the next glyph is processed; a fatal result
// releases the pixel buffer and aborts.
func BuildAtlas(face FontFace, gs *GlyphSet, cfg Config) (*Atlas, error) {
	if gs.Layers == 0 {
		return nil, ErrNoDrawableGlyphs
	}
	log := Logger()

	a := &Atlas{
		CellWidth:  gs.CellWidth,
		CellHeight: gs.CellHeight,
		Layers:     gs.Layers,
	}
	a.Pix = make([]byte, a.Layers*a.LayerSize())

	scratch := ttf.NewScratch()
	defer scratch.Release()

	pad := cfg.halfBleed()
	for _, c := range gs.Chars {
		if !c.Drawable() {
			continue
		}

		o, err := face.LoadOutline(c.Header, scratch)
		if err == nil {
			origin := image.Pt(pad-c.Header.Bounds.Min.X.Floor(), pad-c.Header.Bounds.Min.Y.Floor())
			err = ttf.Rasterize(o, scratch, a.Layer(c.Depth), origin, cfg.Method)
		}
		if err != nil {
			if ttf.IsFatal(err) {
				a.Release()
				return nil, fmt.Errorf("hellotext: rasterize %q: %w", c.Codepoint, err)
			}
			log.Warn("glyph rasterized with issues", "rune", string(c.Codepoint),
				"glyph", c.Glyph, "result", ttf.ResultOf(err).String())
			continue
		}
		log.Debug("glyph rasterized", "rune", string(c.Codepoint), "layer", c.Depth)
	}

	log.Info("atlas built", "layers", a.Layers, "cell", fmt.Sprintf("%dx%d", a.CellWidth, a.CellHeight),
		"method", cfg.Method.String(), "bytes", len(a.Pix))
	return a, nil
}
