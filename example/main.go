// Example opens a window and draws one line of text centered in it.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// The glyphs of the string are rasterized once into a texture array, one
// layer per unique glyph, and drawn as textured quads. The text stays
// centered when the window is resized. Press Escape or close the window
// to quit.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/go-theft-auto/hellotext"
	"github.com/go-theft-auto/hellotext/backend/opengl"
	"github.com/go-theft-auto/hellotext/ttf"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "hellotext"
)

var (
	fontPath  = flag.String("font", "fonts/font.ttf", "font file (TTF/OTF, optionally .gz) or system font name")
	text      = flag.String("text", "Hello, world.", "text to draw")
	pointSize = flag.Float64("size", hellotext.DefaultConfig().PointSize, "point size")
	dpi       = flag.Float64("dpi", hellotext.DefaultConfig().DPI, "dots per inch")
	sharp     = flag.Bool("sharp", false, "rasterize without anti-aliasing")
	fps       = flag.Int("fps", hellotext.DefaultConfig().FPS, "frame rate target, 0 disables pacing")
	fallback  = flag.String("fallback", string(hellotext.DefaultConfig().FallbackRune), "character whose glyph stands in for missing ones")
	color     = flag.String("color", "ffffffff", "text color as RRGGBBAA hex")
	dumpAtlas = flag.String("dump-atlas", "", "write the glyph atlas to this PNG file")
	debug     = flag.Bool("debug", false, "enable debug logging")
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	hellotext.SetLogger(logger)

	if err := run(); err != nil {
		fmt.Fprintln(os.Stdout, err)
		os.Exit(-1)
	}
}

func run() error {
	font, err := ttf.Open(*fontPath)
	if err != nil {
		return err
	}

	opts, err := configOptions()
	if err != nil {
		return err
	}
	cfg := hellotext.NewConfig(opts...)

	window, err := opengl.NewWindow(windowWidth, windowHeight, windowTitle, cfg.FPS)
	if err != nil {
		return err
	}
	defer window.Destroy()

	opts = append(opts, hellotext.WithMaxLayers(min(cfg.MaxLayers, opengl.MaxLayers())))
	scene, err := hellotext.NewScene(font, *text, opts...)
	if err != nil {
		return err
	}
	defer scene.Close()

	gs := scene.Glyphs()
	slog.Info("glyphs resolved",
		"font", font.Name(),
		"characters", len(gs.Chars),
		"layers", gs.Layers,
		"cell", fmt.Sprintf("%dx%d", gs.CellWidth, gs.CellHeight))

	if *dumpAtlas != "" {
		if err := writeAtlas(*dumpAtlas, scene.Atlas()); err != nil {
			return err
		}
	}

	w, h := window.FramebufferSize()
	renderer, err := opengl.NewRenderer(w, h)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	renderer.SetColor(scene.Config().Color)
	if err := scene.Attach(renderer); err != nil {
		return err
	}

	// Main loop.
	for !window.ShouldClose() {
		window.PollEvents()

		w, h := window.FramebufferSize()
		if err := scene.Frame(w, h); err != nil {
			return fmt.Errorf("render: %w", err)
		}

		window.EndFrame()
	}

	return nil
}

// configOptions turns the command line flags into scene options.
func configOptions() ([]hellotext.Option, error) {
	method := ttf.MethodSmooth
	if *sharp {
		method = ttf.MethodSharp
	}

	fb := []rune(*fallback)
	if len(fb) != 1 {
		return nil, fmt.Errorf("-fallback must be a single character, got %q", *fallback)
	}

	rgba, err := strconv.ParseUint(strings.TrimPrefix(*color, "#"), 16, 32)
	if err != nil || len(strings.TrimPrefix(*color, "#")) != 8 {
		return nil, fmt.Errorf("-color must be RRGGBBAA hex, got %q", *color)
	}

	return []hellotext.Option{
		hellotext.WithPointSize(*pointSize),
		hellotext.WithDPI(*dpi),
		hellotext.WithMethod(method),
		hellotext.WithFPS(*fps),
		hellotext.WithFallbackRune(fb[0]),
		hellotext.WithColor(hellotext.RGBA(uint8(rgba>>24), uint8(rgba>>16), uint8(rgba>>8), uint8(rgba))),
	}, nil
}

func writeAtlas(path string, a *hellotext.Atlas) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dump atlas: %w", err)
	}
	defer f.Close()

	if err := hellotext.WriteAtlasPNG(f, a); err != nil {
		return fmt.Errorf("dump atlas: %w", err)
	}
	slog.Info("atlas written", "path", path)
	return nil
}
