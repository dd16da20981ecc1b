package display

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"

	"github.com/df07/go-drt-raytracer/pkg/renderer"
)

// ToByte maps a channel in [0,1] to 0..255 as floor(255.999·c).
// Values outside the range are clamped and NaN maps to 0.
func ToByte(channel float32) uint8 {
	if math32.IsNaN(channel) {
		return 0
	}
	clamped := math32.Max(0, math32.Min(1, channel))
	return uint8(math32.Floor(255.999 * clamped))
}

// ToImage converts a frame buffer to an 8-bit image. Storage row 0 becomes
// image row 0, the top of the picture.
func ToImage(fb *renderer.FrameBuffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for row := 0; row < fb.Height; row++ {
		for x := 0; x < fb.Width; x++ {
			i := renderer.ChannelCount * (x + row*fb.Width)
			img.SetRGBA(x, row, color.RGBA{
				R: ToByte(fb.Data[i]),
				G: ToByte(fb.Data[i+1]),
				B: ToByte(fb.Data[i+2]),
				A: ToByte(fb.Data[i+3]),
			})
		}
	}
	return img
}
