package lightgroup

import (
	"github.com/go-gl/mathgl/mgl32"
)

// RenderBlock carries the per-frame view state the translation reads:
// the world-to-view and world-to-perspective matrices. It is borrowed by
// the translate calls for the duration of a single frame.
type RenderBlock struct {
	WorldToView  mgl32.Mat4
	WorldToPersp mgl32.Mat4
}

func NewRenderBlock(worldToView, worldToPersp mgl32.Mat4) *RenderBlock {
	return &RenderBlock{
		WorldToView:  worldToView,
		WorldToPersp: worldToPersp,
	}
}

// BlockFromCamera builds a RenderBlock from camera parameters.
// fov is the vertical field of view in degrees.
func BlockFromCamera(eye, target, up mgl32.Vec3, fov, aspect, near, far float32) *RenderBlock {
	view := mgl32.LookAtV(eye, target, up)
	proj := mgl32.Perspective(mgl32.DegToRad(fov), aspect, near, far)
	return &RenderBlock{
		WorldToView:  view,
		WorldToPersp: proj.Mul4(view),
	}
}
