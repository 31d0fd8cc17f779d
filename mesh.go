package lightgroup

import (
	"math"

	"github.com/cogentcore/webgpu/wgpu"
)

// ConeVertex is the per-vertex format of the spot volume proxy mesh.
type ConeVertex struct {
	Position [3]float32
}

// Mesh is a proxy mesh drawn once per light instance. It carries the
// per-vertex layout and, after InitializeMesh, the per-instance layout
// used when creating the render pipeline.
type Mesh struct {
	Vertices []ConeVertex
	Indices  []uint16

	instanceLayout *wgpu.VertexBufferLayout
}

// NewConeMesh builds a unit cone for the spot volume: apex at the origin,
// base ring of the given segment count at z=-1 with radius 1. The light's
// perspective transform scales it to the cone's world-space extent.
func NewConeMesh(segments int) *Mesh {
	if segments < 3 {
		panic("cone mesh needs at least 3 segments")
	}

	vertices := make([]ConeVertex, 0, segments+2)
	vertices = append(vertices, ConeVertex{Position: [3]float32{0, 0, 0}}) // apex
	for i := 0; i < segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		vertices = append(vertices, ConeVertex{
			Position: [3]float32{float32(math.Cos(angle)), float32(math.Sin(angle)), -1},
		})
	}
	base := uint16(len(vertices))
	vertices = append(vertices, ConeVertex{Position: [3]float32{0, 0, -1}}) // base center

	indices := make([]uint16, 0, segments*6)
	for i := 0; i < segments; i++ {
		curr := uint16(1 + i)
		next := uint16(1 + (i+1)%segments)
		// side
		indices = append(indices, 0, next, curr)
		// base cap
		indices = append(indices, base, curr, next)
	}

	return &Mesh{Vertices: vertices, Indices: indices}
}

// VertexLayout is the per-vertex buffer layout (shader location 0).
func (m *Mesh) VertexLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: 12,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{ShaderLocation: 0, Offset: 0, Format: wgpu.VertexFormatFloat32x3},
		},
	}
}

func (m *Mesh) SetInstanceLayout(layout wgpu.VertexBufferLayout) {
	m.instanceLayout = &layout
}

// InstanceLayout returns the per-instance layout configured by
// InitializeMesh. Panics if the mesh has not been initialized.
func (m *Mesh) InstanceLayout() wgpu.VertexBufferLayout {
	if m.instanceLayout == nil {
		panic("mesh instance layout not configured, call InitializeMesh first")
	}
	return *m.instanceLayout
}

// BufferLayouts returns the layouts in binding-slot order for pipeline
// creation: slot 0 per-vertex, slot 1 per-instance.
func (m *Mesh) BufferLayouts() []wgpu.VertexBufferLayout {
	return []wgpu.VertexBufferLayout{m.VertexLayout(), m.InstanceLayout()}
}
