package hellotext

import (
	"fmt"
	"math"
	"sync"
)

// maxQuads is the most quads addressable with 16-bit indices.
const maxQuads = (math.MaxUint16 + 1) / 4

// quadBufferPool provides reuse of QuadBuffer storage across resizes.
var quadBufferPool = sync.Pool{
	New: func() any {
		return &QuadBuffer{
			VtxBuffer: make([]Vertex, 0, 64),
			IdxBuffer: make([]uint16, 0, 96),
		}
	},
}

// AcquireQuadBuffer gets a QuadBuffer from the pool.
// Call ReleaseQuadBuffer when done to return it.
func AcquireQuadBuffer() *QuadBuffer {
	b := quadBufferPool.Get().(*QuadBuffer)
	b.Clear()
	return b
}

// ReleaseQuadBuffer returns a QuadBuffer to the pool for reuse.
func ReleaseQuadBuffer(b *QuadBuffer) {
	if b != nil {
		quadBufferPool.Put(b)
	}
}

// QuadBuffer holds the vertex and index data of a set of glyph quads.
type QuadBuffer struct {
	VtxBuffer []Vertex // Four vertices per quad
	IdxBuffer []uint16 // Six indices per quad (two triangles)
}

// Clear resets the buffer, keeping allocated capacity.
func (b *QuadBuffer) Clear() {
	b.VtxBuffer = b.VtxBuffer[:0]
	b.IdxBuffer = b.IdxBuffer[:0]
}

// Len returns the number of quads in the buffer.
func (b *QuadBuffer) Len() int {
	return len(b.VtxBuffer) / 4
}

// AddQuad appends a quad. The layer travels in the third texture coordinate.
func (b *QuadBuffer) AddQuad(q Quad, color uint32) error {
	if b.Len() >= maxQuads {
		return fmt.Errorf("%w: limit %d", ErrTooManyQuads, maxQuads)
	}

	x0, y0 := q.Pos.X, q.Pos.Y
	x1, y1 := x0+q.Size.X, y0+q.Size.Y
	layer := float32(q.Layer)

	idx := uint16(len(b.VtxBuffer))
	b.VtxBuffer = append(b.VtxBuffer,
		Vertex{Pos: [2]float32{x0, y0}, TexCoord: [3]float32{q.UV[0], q.UV[1], layer}, Color: color},
		Vertex{Pos: [2]float32{x1, y0}, TexCoord: [3]float32{q.UV[2], q.UV[1], layer}, Color: color},
		Vertex{Pos: [2]float32{x1, y1}, TexCoord: [3]float32{q.UV[2], q.UV[3], layer}, Color: color},
		Vertex{Pos: [2]float32{x0, y1}, TexCoord: [3]float32{q.UV[0], q.UV[3], layer}, Color: color},
	)
	b.IdxBuffer = append(b.IdxBuffer, idx, idx+1, idx+2, idx, idx+2, idx+3)
	return nil
}

// Build replaces the buffer contents with quads.
func (b *QuadBuffer) Build(quads []Quad, color uint32) error {
	b.Clear()
	if len(quads) > maxQuads {
		return fmt.Errorf("%w: %d quads, limit %d", ErrTooManyQuads, len(quads), maxQuads)
	}
	for _, q := range quads {
		if err := b.AddQuad(q, color); err != nil {
			return err
		}
	}
	return nil
}
