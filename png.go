package hellotext

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
)

// AtlasSheet lays the atlas layers out left to right in one image.
func AtlasSheet(a *Atlas) (*image.RGBA, error) {
	if a.Released() {
		return nil, fmt.Errorf("hellotext: atlas pixels already released")
	}
	sheet := image.NewRGBA(image.Rect(0, 0, a.CellWidth*a.Layers, a.CellHeight))
	for i := 0; i < a.Layers; i++ {
		dst := image.Rect(i*a.CellWidth, 0, (i+1)*a.CellWidth, a.CellHeight)
		draw.Draw(sheet, dst, a.Layer(i), image.Point{}, draw.Src)
	}
	return sheet, nil
}

// WriteAtlasPNG encodes the atlas sheet as PNG.
func WriteAtlasPNG(w io.Writer, a *Atlas) error {
	sheet, err := AtlasSheet(a)
	if err != nil {
		return err
	}
	return png.Encode(w, sheet)
}
