package lightgroup

import (
	"encoding/binary"
	"math"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// Byte offsets of the fields inside one GPU spot light record. The record
// is tightly packed little-endian float32, matching the per-instance
// vertex attributes declared by SpotInstanceLayout. Direction and
// Translation are in view space, Perspective is column-major
// worldToPersp * light.Matrix().
const (
	InnerAngleOffset  = 0
	OuterAngleOffset  = 4
	DiffAngleOffset   = 8
	AttenuationOffset = 12 // vec4: constant, linear, quadratic, depth
	DiffuseOffset     = 28 // vec4 RGBA
	DirectionOffset   = 44 // vec3, view space, unit length
	SpecularOffset    = 56 // vec3 RGB
	TranslationOffset = 68 // vec3, view space
	PerspectiveOffset = 80 // mat4, column-major

	// RecordSize is the natural size of one record in bytes.
	RecordSize = PerspectiveOffset + 64
)

// SpotInstanceLayout declares the per-instance vertex attributes of the
// spot record: one value per instance (step mode instance), the
// perspective matrix occupying four consecutive shader locations.
func SpotInstanceLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: RecordSize,
		StepMode:    wgpu.VertexStepModeInstance,
		Attributes: []wgpu.VertexAttribute{
			{ShaderLocation: 1, Offset: TranslationOffset, Format: wgpu.VertexFormatFloat32x3},
			{ShaderLocation: 2, Offset: DirectionOffset, Format: wgpu.VertexFormatFloat32x3},
			{ShaderLocation: 4, Offset: AttenuationOffset, Format: wgpu.VertexFormatFloat32x4},
			{ShaderLocation: 5, Offset: DiffuseOffset, Format: wgpu.VertexFormatFloat32x4},
			{ShaderLocation: 6, Offset: SpecularOffset, Format: wgpu.VertexFormatFloat32x3},
			{ShaderLocation: 7, Offset: PerspectiveOffset, Format: wgpu.VertexFormatFloat32x4},
			{ShaderLocation: 8, Offset: PerspectiveOffset + 16, Format: wgpu.VertexFormatFloat32x4},
			{ShaderLocation: 9, Offset: PerspectiveOffset + 32, Format: wgpu.VertexFormatFloat32x4},
			{ShaderLocation: 10, Offset: PerspectiveOffset + 48, Format: wgpu.VertexFormatFloat32x4},
		},
	}
}

// AlignedStride rounds RecordSize up to a multiple of alignment, for
// uniform-array layouts that must honor the device's minimum uniform
// buffer offset alignment.
func AlignedStride(alignment int) int {
	return (RecordSize + alignment - 1) / alignment * alignment
}

// writeSpotRecord computes one GPU record from a light and the frame's
// view state and stores it into dst, which must hold RecordSize bytes.
func writeSpotRecord(dst []byte, block *RenderBlock, l *SpotLight) {
	direction := block.WorldToView.Mul4x1(l.Direction.Vec4(0)).Vec3().Normalize()
	translation := block.WorldToView.Mul4x1(l.Translation.Vec4(1)).Vec3()
	persp := block.WorldToPersp.Mul4(l.Matrix())

	putFloat32(dst, InnerAngleOffset, l.InnerAngle)
	putFloat32(dst, OuterAngleOffset, l.OuterAngle)
	putFloat32(dst, DiffAngleOffset, l.OuterAngle-l.InnerAngle)
	putVec4(dst, AttenuationOffset, l.Attenuation.Vec4(l.Depth))
	putVec4(dst, DiffuseOffset, l.Diffuse)
	putVec3(dst, DirectionOffset, direction)
	putVec3(dst, SpecularOffset, l.Specular)
	putVec3(dst, TranslationOffset, translation)
	putMat4(dst, PerspectiveOffset, persp)
}

func putFloat32(dst []byte, offset int, v float32) {
	binary.LittleEndian.PutUint32(dst[offset:offset+4], math.Float32bits(v))
}

func putVec3(dst []byte, offset int, v mgl32.Vec3) {
	putFloat32(dst, offset, v.X())
	putFloat32(dst, offset+4, v.Y())
	putFloat32(dst, offset+8, v.Z())
}

func putVec4(dst []byte, offset int, v mgl32.Vec4) {
	putFloat32(dst, offset, v.X())
	putFloat32(dst, offset+4, v.Y())
	putFloat32(dst, offset+8, v.Z())
	putFloat32(dst, offset+12, v.W())
}

func putMat4(dst []byte, offset int, m mgl32.Mat4) {
	// mgl32 matrices are column-major, same as the shader side
	for i := 0; i < 16; i++ {
		putFloat32(dst, offset+i*4, m[i])
	}
}
