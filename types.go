package hellotext

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Quad is one positioned, textured glyph cell.
type Quad struct {
	Pos   Vec2       // Top-left corner in screen pixels
	Size  Vec2       // Atlas cell size in pixels
	Layer int        // Texture array layer (Character.Depth)
	UV    [4]float32 // Texture coordinates (u0, v0, u1, v1)
}

// fullLayerUV spans a whole texture array layer.
var fullLayerUV = [4]float32{0, 0, 1, 1}

// Vertex represents a vertex for glyph rendering.
// Memory layout matches OpenGL vertex attribute expectations.
type Vertex struct {
	Pos      [2]float32 // Position (x, y)
	TexCoord [3]float32 // Texture coordinates (u, v, layer)
	Color    uint32     // RGBA packed color
}

// Color constants (RGBA packed as 0xAABBGGRR for OpenGL compatibility)
const (
	ColorWhite  uint32 = 0xFFFFFFFF
	ColorBlack  uint32 = 0xFF000000
	ColorYellow uint32 = 0xFF00FFFF
)

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}
