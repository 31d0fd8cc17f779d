package lightgroup

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/cogentcore/webgpu/wgpu"
	"golang.org/x/image/draw"
)

// CookieSize is the fixed edge length of projected cookie textures.
const CookieSize = 256

// LoadCookie reads a PNG cookie (gobo) image and resamples it to
// CookieSize x CookieSize RGBA for projection by a spot light.
func LoadCookie(filename string) (*image.RGBA, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode cookie %s: %w", filename, err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, CookieSize, CookieSize))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}

// CreateCookieTexture uploads a cookie image and returns a view bindable
// as the spot projection texture.
func CreateCookieTexture(device *wgpu.Device, queue *wgpu.Queue, img *image.RGBA) *wgpu.TextureView {
	extent := wgpu.Extent3D{
		Width:              CookieSize,
		Height:             CookieSize,
		DepthOrArrayLayers: 1,
	}
	texture, err := device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         "Spot Cookie Texture",
		Size:          extent,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatRGBA8Unorm,
		Usage:         wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
	})
	if err != nil {
		panic(err)
	}
	defer texture.Release()

	view, err := texture.CreateView(nil)
	if err != nil {
		panic(err)
	}

	err = queue.WriteTexture(
		texture.AsImageCopy(),
		img.Pix,
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  4 * CookieSize,
			RowsPerImage: CookieSize,
		},
		&extent,
	)
	if err != nil {
		panic(err)
	}
	return view
}
