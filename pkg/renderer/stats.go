package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels      int           // Total number of pixels rendered
	TotalSamples     int           // Total number of primary rays traced
	AverageSamples   float64       // Average primary rays per pixel
	Tiles            int           // Number of tiles the frame was split into
	Workers          int           // Number of workers that rendered tiles
	Duration         time.Duration // Wall time of the render
	TileTime         time.Duration // Summed render time of every tile across workers
	AverageLuminance float64       // Mean luminance of the finished buffer
}

// CalculateAverageLuminance returns the mean luminance of every pixel in fb
func CalculateAverageLuminance(fb *FrameBuffer) float64 {
	pixels := fb.Width * fb.Height
	if pixels == 0 {
		return 0
	}

	total := 0.0
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			total += fb.Pixel(x, y).Luminance()
		}
	}
	return total / float64(pixels)
}
