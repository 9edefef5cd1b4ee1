// Command gen rasterizes the glyphs of a string and saves the atlas as a PNG
// sheet (one cell per layer, left to right) to doc/imgs/. No window or GL
// context is needed.
//
// Usage:
//
//	go run ./doc/gen/
//	go run ./doc/gen/ -font DejaVuSans.ttf -text "Grüße, Welt." -sharp
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/go-theft-auto/hellotext"
	"github.com/go-theft-auto/hellotext/ttf"
)

var (
	fontPath  = flag.String("font", "", "font file or system font name (default: Go Regular)")
	outDir    = flag.String("out", filepath.Join("doc", "imgs"), "output directory")
	pointSize = flag.Float64("size", hellotext.DefaultConfig().PointSize, "point size")
	sharp     = flag.Bool("sharp", false, "rasterize without anti-aliasing")
)

// sheet defines a single atlas sheet to generate.
type sheet struct {
	name string // filename without extension
	text string
}

var sheets = []sheet{
	{name: "hello", text: "Hello, world."},
	{name: "pangram", text: "The quick brown fox jumps over the lazy dog"},
	{name: "digits", text: "0123456789 +-*/=()"},
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	font, err := loadFont()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	opts := []hellotext.Option{hellotext.WithPointSize(*pointSize)}
	if *sharp {
		opts = append(opts, hellotext.WithMethod(ttf.MethodSharp))
	}
	cfg := hellotext.NewConfig(opts...)

	for _, s := range sheets {
		layers, err := generate(font, s, cfg)
		if err != nil {
			return fmt.Errorf("sheet %s: %w", s.name, err)
		}
		fmt.Printf("  %s.png (%d layers)\n", s.name, layers)
	}

	fmt.Printf("\nGenerated %d atlas sheets in %s/\n", len(sheets), *outDir)
	return nil
}

func loadFont() (*ttf.Font, error) {
	if *fontPath == "" {
		return ttf.Parse(goregular.TTF)
	}
	return ttf.Open(*fontPath)
}

func generate(font *ttf.Font, s sheet, cfg hellotext.Config) (int, error) {
	gs, err := hellotext.ResolveCharacters(font, s.text, cfg)
	if err != nil {
		return 0, err
	}
	atlas, err := hellotext.BuildAtlas(font, gs, cfg)
	if err != nil {
		return 0, err
	}
	defer atlas.Release()

	f, err := os.Create(filepath.Join(*outDir, s.name+".png"))
	if err != nil {
		return 0, err
	}
	defer f.Close()

	if err := hellotext.WriteAtlasPNG(f, atlas); err != nil {
		return 0, err
	}
	return atlas.Layers, nil
}
