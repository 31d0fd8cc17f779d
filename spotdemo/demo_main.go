package main

import (
	"flag"
	"math"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/lightgroup"
)

const shaderCode = `
struct VsIn {
    @location(0) pos: vec3<f32>,
    @location(1) translation: vec3<f32>,
    @location(2) direction: vec3<f32>,
    @location(4) attenuation: vec4<f32>,
    @location(5) diffuse: vec4<f32>,
    @location(6) specular: vec3<f32>,
    @location(7) persp0: vec4<f32>,
    @location(8) persp1: vec4<f32>,
    @location(9) persp2: vec4<f32>,
    @location(10) persp3: vec4<f32>,
};

struct VsOut {
    @builtin(position) pos: vec4<f32>,
    @location(0) color: vec4<f32>,
};

@vertex
fn vs_main(in: VsIn) -> VsOut {
    let persp = mat4x4<f32>(in.persp0, in.persp1, in.persp2, in.persp3);
    var out: VsOut;
    out.pos = persp * vec4<f32>(in.pos, 1.0);
    out.color = vec4<f32>(in.diffuse.rgb, 0.35);
    return out;
}

@fragment
fn fs_main(in: VsOut) -> @location(0) vec4<f32> {
    return in.color;
}
`

type demoState struct {
	window        *glfw.Window
	surface       *wgpu.Surface
	adapter       *wgpu.Adapter
	device        *wgpu.Device
	queue         *wgpu.Queue
	surfaceConfig *wgpu.SurfaceConfiguration
	pipeline      *wgpu.RenderPipeline

	vertexBuf   *wgpu.Buffer
	indexBuf    *wgpu.Buffer
	instanceBuf *wgpu.Buffer
	indexCount  uint32

	group *lightgroup.SpotLightGroup
	mesh  *lightgroup.Mesh
}

func init() {
	runtime.LockOSThread()
}

func main() {
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	window, err := glfw.CreateWindow(1280, 720, "Spot Light Group", nil, nil)
	if err != nil {
		panic(err)
	}
	defer window.Destroy()

	s := newDemoState(window, *debug)

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		s.resize(width, height)
	})

	for !window.ShouldClose() {
		glfw.PollEvents()
		s.frame(glfw.GetTime())
	}
}

func newDemoState(window *glfw.Window, debug bool) *demoState {
	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	surface := instance.CreateSurface(wgpuglfw.GetSurfaceDescriptor(window))
	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: surface,
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		panic(err)
	}
	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Spot Demo Device",
	})
	if err != nil {
		panic(err)
	}
	queue := device.GetQueue()

	width, height := window.GetFramebufferSize()
	caps := surface.GetCapabilities(adapter)
	surfaceConfig := wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      caps.Formats[0],
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: wgpu.PresentModeFifo, // vsync
		AlphaMode:   caps.AlphaModes[0],
	}
	surface.Configure(adapter, device, &surfaceConfig)

	group := lightgroup.NewSpotLightGroup()
	group.SetLogger(lightgroup.NewDefaultLogger("spotdemo", debug))
	spawnLights(group)

	mesh := lightgroup.NewConeMesh(24)
	group.InitializeMesh(mesh)

	pipeline := createConePipeline(device, surfaceConfig.Format, mesh)
	vertexBuf, indexBuf := lightgroup.CreateMeshBuffers(device, mesh)
	instanceBuf := lightgroup.CreateInstanceBuffer(device, viewBlock(width, height, 0), group)

	return &demoState{
		window:        window,
		surface:       surface,
		adapter:       adapter,
		device:        device,
		queue:         queue,
		surfaceConfig: &surfaceConfig,
		pipeline:      pipeline,
		vertexBuf:     vertexBuf,
		indexBuf:      indexBuf,
		instanceBuf:   instanceBuf,
		indexCount:    uint32(len(mesh.Indices)),
		group:         group,
		mesh:          mesh,
	}
}

func spawnLights(group *lightgroup.SpotLightGroup) {
	colors := []mgl32.Vec4{
		{1.0, 0.3, 0.2, 1},
		{0.2, 1.0, 0.3, 1},
		{0.3, 0.4, 1.0, 1},
		{1.0, 0.9, 0.3, 1},
	}
	for i, color := range colors {
		l := lightgroup.NewSpotLight()
		l.InnerAngle = 20
		l.OuterAngle = 40
		l.Depth = 12
		l.Diffuse = color
		l.Translation = mgl32.Vec3{float32(i-2) * 6, 8, 0}
		l.Direction = mgl32.Vec3{0, -1, 0}
		group.Add(l)
	}
}

func createConePipeline(device *wgpu.Device, format wgpu.TextureFormat, mesh *lightgroup.Mesh) *wgpu.RenderPipeline {
	shader, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "Spot Cone Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shaderCode},
	})
	if err != nil {
		panic(err)
	}
	defer shader.Release()

	pipeline, err := device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label: "Spot Cone Pipeline",
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
			Buffers:    mesh.BufferLayouts(),
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format: format,
					Blend: &wgpu.BlendState{
						Color: wgpu.BlendComponent{
							SrcFactor: wgpu.BlendFactorSrcAlpha,
							DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
							Operation: wgpu.BlendOperationAdd,
						},
						Alpha: wgpu.BlendComponent{
							SrcFactor: wgpu.BlendFactorOne,
							DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
							Operation: wgpu.BlendOperationAdd,
						},
					},
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		DepthStencil: nil,
		Multisample: wgpu.MultisampleState{
			Count:                  1,
			Mask:                   0xFFFFFFFF,
			AlphaToCoverageEnabled: false,
		},
	})
	if err != nil {
		panic(err)
	}
	return pipeline
}

func viewBlock(width, height int, t float64) *lightgroup.RenderBlock {
	eye := mgl32.Vec3{
		float32(25 * math.Sin(t*0.2)),
		12,
		float32(25 * math.Cos(t*0.2)),
	}
	aspect := float32(width) / float32(height)
	return lightgroup.BlockFromCamera(eye, mgl32.Vec3{0, 2, 0}, mgl32.Vec3{0, 1, 0}, 60, aspect, 0.1, 200)
}

func (s *demoState) resize(width, height int) {
	if width == 0 || height == 0 {
		return
	}
	s.surfaceConfig.Width = uint32(width)
	s.surfaceConfig.Height = uint32(height)
	s.surface.Configure(s.adapter, s.device, s.surfaceConfig)
}

func (s *demoState) frame(t float64) {
	// sweep the lights so the instance path visibly updates every frame
	for i, l := range s.group.Lights() {
		phase := t + float64(i)*math.Pi/2
		l.Direction = mgl32.Vec3{
			float32(0.4 * math.Sin(phase)),
			-1,
			float32(0.4 * math.Cos(phase)),
		}.Normalize()
	}

	width := int(s.surfaceConfig.Width)
	height := int(s.surfaceConfig.Height)
	lightgroup.UpdateInstanceBuffer(s.queue, s.instanceBuf, viewBlock(width, height, t), s.group)

	nextTexture, err := s.surface.GetCurrentTexture()
	if err != nil {
		panic(err)
	}
	view, err := nextTexture.CreateView(nil)
	if err != nil {
		panic(err)
	}
	defer view.Release()

	encoder, err := s.device.CreateCommandEncoder(nil)
	if err != nil {
		panic(err)
	}
	defer encoder.Release()

	renderPass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: wgpu.Color{R: 0.02, G: 0.02, B: 0.04, A: 1.0},
			},
		},
	})
	defer renderPass.Release()

	renderPass.SetPipeline(s.pipeline)
	renderPass.SetVertexBuffer(0, s.vertexBuf, 0, wgpu.WholeSize)
	renderPass.SetVertexBuffer(1, s.instanceBuf, 0, wgpu.WholeSize)
	renderPass.SetIndexBuffer(s.indexBuf, wgpu.IndexFormatUint16, 0, wgpu.WholeSize)
	renderPass.DrawIndexed(s.indexCount, uint32(s.group.Len()), 0, 0, 0)

	if err := renderPass.End(); err != nil {
		panic(err)
	}

	cmdBuffer, err := encoder.Finish(nil)
	if err != nil {
		panic(err)
	}
	defer cmdBuffer.Release()

	s.queue.Submit(cmdBuffer)
	s.surface.Present()
}
