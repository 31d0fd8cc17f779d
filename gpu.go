package lightgroup

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// CreateMeshBuffers allocates the vertex and index buffers for the proxy
// mesh.
func CreateMeshBuffers(device *wgpu.Device, mesh *Mesh) (vertexBuf *wgpu.Buffer, indexBuf *wgpu.Buffer) {
	vertexBuf, err := device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Spot Cone Vertex Buffer",
		Contents: wgpu.ToBytes(mesh.Vertices),
		Usage:    wgpu.BufferUsageVertex,
	})
	if err != nil {
		panic(err)
	}
	indexBuf, err = device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Spot Cone Index Buffer",
		Contents: wgpu.ToBytes(mesh.Indices),
		Usage:    wgpu.BufferUsageIndex,
	})
	if err != nil {
		panic(err)
	}
	return vertexBuf, indexBuf
}

// CreateInstanceBuffer translates the group through the view state and
// uploads the records into a new vertex buffer for instanced drawing.
func CreateInstanceBuffer(device *wgpu.Device, block *RenderBlock, group *SpotLightGroup) *wgpu.Buffer {
	data := make([]byte, group.BufferSize())
	group.TranslateBuffer(block, data)

	buffer, err := device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Spot Instance Buffer",
		Contents: data,
		Usage:    wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		panic(err)
	}
	return buffer
}

// UpdateInstanceBuffer retranslates the group for the current frame and
// writes the records over the existing instance buffer.
func UpdateInstanceBuffer(queue *wgpu.Queue, buffer *wgpu.Buffer, block *RenderBlock, group *SpotLightGroup) {
	data := make([]byte, group.BufferSize())
	group.TranslateBuffer(block, data)
	if err := queue.WriteBuffer(buffer, 0, data); err != nil {
		panic(err)
	}
}

// CreateUniformBuffer translates the group into a new uniform buffer with
// the given element stride. Pass AlignedStride of the device's minimum
// uniform buffer offset alignment.
func CreateUniformBuffer(device *wgpu.Device, block *RenderBlock, group *SpotLightGroup, stride int) *wgpu.Buffer {
	data := make([]byte, group.UniformSize(stride))
	group.TranslateUniforms(block, data, stride)

	buffer, err := device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Spot Uniform Buffer",
		Contents: data,
		Usage:    wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		panic(err)
	}
	return buffer
}

// UpdateUniformBuffer retranslates the group over the existing uniform
// buffer at the given stride.
func UpdateUniformBuffer(queue *wgpu.Queue, buffer *wgpu.Buffer, block *RenderBlock, group *SpotLightGroup, stride int) {
	data := make([]byte, group.UniformSize(stride))
	group.TranslateUniforms(block, data, stride)
	if err := queue.WriteBuffer(buffer, 0, data); err != nil {
		panic(err)
	}
}
