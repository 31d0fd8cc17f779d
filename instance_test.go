package lightgroup

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordLayout(t *testing.T) {
	// fixed offsets, matched by the shader-side struct
	assert.Equal(t, 0, InnerAngleOffset)
	assert.Equal(t, 4, OuterAngleOffset)
	assert.Equal(t, 8, DiffAngleOffset)
	assert.Equal(t, 12, AttenuationOffset)
	assert.Equal(t, 28, DiffuseOffset)
	assert.Equal(t, 44, DirectionOffset)
	assert.Equal(t, 56, SpecularOffset)
	assert.Equal(t, 68, TranslationOffset)
	assert.Equal(t, 80, PerspectiveOffset)
	assert.Equal(t, 144, RecordSize)
}

func TestSpotInstanceLayout(t *testing.T) {
	layout := SpotInstanceLayout()

	assert.Equal(t, uint64(RecordSize), layout.ArrayStride)
	assert.Equal(t, wgpu.VertexStepModeInstance, layout.StepMode)
	require.Len(t, layout.Attributes, 9)

	wantLocations := []uint32{1, 2, 4, 5, 6, 7, 8, 9, 10}
	for i, attr := range layout.Attributes {
		assert.Equal(t, wantLocations[i], attr.ShaderLocation)
	}

	// the perspective matrix occupies 4 consecutive locations at
	// consecutive column offsets
	for i := 0; i < 4; i++ {
		attr := layout.Attributes[5+i]
		assert.Equal(t, uint64(PerspectiveOffset+16*i), attr.Offset)
		assert.Equal(t, wgpu.VertexFormatFloat32x4, attr.Format)
	}

	assert.Equal(t, wgpu.VertexFormatFloat32x3, layout.Attributes[0].Format) // translation
	assert.Equal(t, wgpu.VertexFormatFloat32x3, layout.Attributes[1].Format) // direction
	assert.Equal(t, wgpu.VertexFormatFloat32x4, layout.Attributes[2].Format) // attenuation
	assert.Equal(t, wgpu.VertexFormatFloat32x4, layout.Attributes[3].Format) // diffuse
	assert.Equal(t, wgpu.VertexFormatFloat32x3, layout.Attributes[4].Format) // specular
}

func TestAlignedStride(t *testing.T) {
	assert.Equal(t, 256, AlignedStride(256))
	assert.Equal(t, 144, AlignedStride(16))
	assert.Equal(t, 160, AlignedStride(32))
	assert.Equal(t, RecordSize, AlignedStride(1))
}
