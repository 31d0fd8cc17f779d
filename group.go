package lightgroup

import (
	"fmt"

	"github.com/google/uuid"
)

type LightId string

// SpotLightGroup owns an ordered collection of spot lights and translates
// them into GPU instance or uniform buffers. Translation is synchronous;
// the destination is exclusively owned by the caller for the call.
type SpotLightGroup struct {
	lights []*SpotLight
	ids    []LightId
	log    Logger
}

func NewSpotLightGroup() *SpotLightGroup {
	return &SpotLightGroup{log: NewNopLogger()}
}

func (g *SpotLightGroup) SetLogger(log Logger) {
	if log == nil {
		log = NewNopLogger()
	}
	g.log = log
}

// Add appends a light to the group and returns its id.
func (g *SpotLightGroup) Add(l *SpotLight) LightId {
	id := LightId(uuid.NewString())
	g.lights = append(g.lights, l)
	g.ids = append(g.ids, id)
	g.log.Debugf("added spot light %s (total %d)", id, len(g.lights))
	return id
}

// Remove deletes the light with the given id, preserving the order of the
// remaining lights. Returns false if the id is not in the group.
func (g *SpotLightGroup) Remove(id LightId) bool {
	for i, known := range g.ids {
		if known == id {
			g.lights = append(g.lights[:i], g.lights[i+1:]...)
			g.ids = append(g.ids[:i], g.ids[i+1:]...)
			g.log.Debugf("removed spot light %s (total %d)", id, len(g.lights))
			return true
		}
	}
	return false
}

// Lights returns the group's lights in insertion order.
func (g *SpotLightGroup) Lights() []*SpotLight {
	return g.lights
}

func (g *SpotLightGroup) Len() int {
	return len(g.lights)
}

// BufferSize is the destination size TranslateBuffer needs for the whole
// group, in bytes.
func (g *SpotLightGroup) BufferSize() int {
	return len(g.lights) * RecordSize
}

// UniformSize is the destination size TranslateUniforms needs for the
// whole group at the given stride.
func (g *SpotLightGroup) UniformSize(stride int) int {
	if len(g.lights) == 0 {
		return 0
	}
	return (len(g.lights)-1)*stride + RecordSize
}

// InitializeMesh configures the mesh's per-instance vertex binding state
// to the spot record layout. The mesh's vertex format must match the
// record layout exactly.
func (g *SpotLightGroup) InitializeMesh(mesh *Mesh) {
	mesh.SetInstanceLayout(SpotInstanceLayout())
}

// TranslateBuffer writes one record per group light into dst at unit
// stride. dst must hold at least BufferSize() bytes.
func (g *SpotLightGroup) TranslateBuffer(block *RenderBlock, dst []byte) {
	TranslateBuffer(block, dst, g.lights)
}

// TranslateUniforms writes one record per group light into dst, advancing
// by stride bytes between records.
func (g *SpotLightGroup) TranslateUniforms(block *RenderBlock, dst []byte, stride int) {
	TranslateUniforms(block, dst, stride, g.lights)
}

// TranslateBuffer writes one tightly packed GPU record per light into
// dst. The destination must hold len(lights)*RecordSize bytes; a short
// destination is a caller bug and panics.
func TranslateBuffer(block *RenderBlock, dst []byte, lights []*SpotLight) {
	TranslateUniforms(block, dst, RecordSize, lights)
}

// TranslateUniforms writes one GPU record per light into dst, with
// consecutive record start offsets differing by exactly stride bytes.
// Supports packed uniform-array layouts with alignment padding between
// elements.
func TranslateUniforms(block *RenderBlock, dst []byte, stride int, lights []*SpotLight) {
	if len(lights) == 0 {
		return
	}
	if need := (len(lights)-1)*stride + RecordSize; len(dst) < need {
		panic(fmt.Sprintf("lightgroup: destination holds %d bytes, %d lights at stride %d need %d",
			len(dst), len(lights), stride, need))
	}
	offset := 0
	for _, l := range lights {
		writeSpotRecord(dst[offset:offset+RecordSize], block, l)
		offset += stride
	}
}
