package hellotext

import "github.com/go-theft-auto/hellotext/ttf"

// Config holds the parameters of glyph resolution, rasterization and layout.
type Config struct {
	PointSize    float64    // Font size in points
	DPI          float64    // Display density used to convert points to pixels
	Method       ttf.Method // Anti-aliasing method
	Bleed        int        // Extra pixels added to each atlas cell axis
	MaxLayers    int        // Upper bound on texture array layers
	FallbackRune rune       // Codepoint of the missing-glyph placeholder
	FPS          int        // Frame pacing target
	Color        uint32     // Text color (packed RGBA)
}

// DefaultConfig returns the configuration of the demo.
func DefaultConfig() Config {
	return Config{
		PointSize:    48,
		DPI:          96,
		Method:       ttf.MethodSmooth,
		Bleed:        2,
		MaxLayers:    256,
		FallbackRune: '\uFFFD',
		FPS:          100,
		Color:        ColorWhite,
	}
}

// Option configures a Config.
type Option func(*Config)

// WithPointSize sets the font size in points.
func WithPointSize(size float64) Option {
	return func(c *Config) { c.PointSize = size }
}

// WithDPI sets the display density.
func WithDPI(dpi float64) Option {
	return func(c *Config) { c.DPI = dpi }
}

// WithMethod sets the anti-aliasing method.
func WithMethod(m ttf.Method) Option {
	return func(c *Config) { c.Method = m }
}

// WithBleed sets the padding added to each cell axis. Odd values are
// rounded up so the padding splits evenly between both sides.
func WithBleed(px int) Option {
	return func(c *Config) { c.Bleed = px + px%2 }
}

// WithMaxLayers caps the number of texture array layers, typically to the
// backend's GL_MAX_ARRAY_TEXTURE_LAYERS.
func WithMaxLayers(n int) Option {
	return func(c *Config) { c.MaxLayers = n }
}

// WithFallbackRune sets the codepoint whose glyph fills the missing-glyph slot.
func WithFallbackRune(r rune) Option {
	return func(c *Config) { c.FallbackRune = r }
}

// WithFPS sets the frame pacing target.
func WithFPS(fps int) Option {
	return func(c *Config) { c.FPS = fps }
}

// WithColor sets the text color.
func WithColor(color uint32) Option {
	return func(c *Config) { c.Color = color }
}

// NewConfig applies opts on top of DefaultConfig.
func NewConfig(opts ...Option) Config {
	c := DefaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// halfBleed is the padding on each side of a cell.
func (c Config) halfBleed() int { return c.Bleed / 2 }
