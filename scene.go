package hellotext

import "fmt"

// Renderer is the interface for drawing a scene on the GPU.
type Renderer interface {
	// UploadAtlas creates the texture array from the atlas pixels.
	UploadAtlas(a *Atlas) error
	// UpdateQuads replaces the GPU quad buffer.
	UpdateQuads(quads []Quad) error
	// Resize updates the viewport and projection.
	Resize(width, height int)
	// Render draws the quads.
	Render() error
	// Delete releases GPU resources.
	Delete()
}

// Scene owns every stage of drawing one string: the character table, the
// atlas (until uploaded), the laid out text and the attached renderer.
type Scene struct {
	cfg      Config
	glyphs   *GlyphSet
	atlas    *Atlas
	text     *Text
	renderer Renderer
}

// NewScene resolves, rasterizes and lays out text.
func NewScene(face FontFace, text string, opts ...Option) (*Scene, error) {
	cfg := NewConfig(opts...)

	glyphs, err := ResolveCharacters(face, text, cfg)
	if err != nil {
		return nil, err
	}
	atlas, err := BuildAtlas(face, glyphs, cfg)
	if err != nil {
		return nil, err
	}
	laid, err := LayoutText(glyphs, text, cfg)
	if err != nil {
		atlas.Release()
		return nil, err
	}

	return &Scene{
		cfg:    cfg,
		glyphs: glyphs,
		atlas:  atlas,
		text:   laid,
	}, nil
}

// Config returns the configuration the scene was built with.
func (s *Scene) Config() Config { return s.cfg }

// Glyphs returns the character table.
func (s *Scene) Glyphs() *GlyphSet { return s.glyphs }

// Atlas returns the atlas. Its pixels are released once attached.
func (s *Scene) Atlas() *Atlas { return s.atlas }

// Text returns the laid out text.
func (s *Scene) Text() *Text { return s.text }

// Attach uploads the atlas to r and releases the CPU pixels.
// The scene takes ownership of r and deletes it in Close.
func (s *Scene) Attach(r Renderer) error {
	if s.atlas.Released() {
		return fmt.Errorf("hellotext: atlas already released")
	}
	if err := r.UploadAtlas(s.atlas); err != nil {
		r.Delete()
		return fmt.Errorf("hellotext: upload atlas: %w", err)
	}
	s.atlas.Release()
	s.renderer = r
	Logger().Info("renderer attached", "layers", s.atlas.Layers, "quads", len(s.text.Chars))
	return nil
}

// Frame draws one frame on a surface of the given size. When the size
// changed since the previous frame the quads are re-centered and pushed
// to the renderer first.
func (s *Scene) Frame(width, height int) error {
	if s.renderer == nil {
		return ErrNotAttached
	}
	if s.text.Recenter(width, height) {
		s.renderer.Resize(width, height)
		if err := s.renderer.UpdateQuads(s.text.Quads()); err != nil {
			return fmt.Errorf("hellotext: update quads: %w", err)
		}
		Logger().Debug("text recentered", "width", width, "height", height)
	}
	return s.renderer.Render()
}

// Close releases the renderer and any pixels still held.
// It is safe to call Close more than once.
func (s *Scene) Close() {
	if s.renderer != nil {
		s.renderer.Delete()
		s.renderer = nil
	}
	if s.atlas != nil {
		s.atlas.Release()
	}
}
