package display

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/bmp"

	"github.com/df07/go-drt-raytracer/pkg/renderer"
)

var ErrUnsupportedFormat = errors.New("display: unsupported image format")

// Extensions lists the file extensions Save understands
var Extensions = []string{".png", ".bmp"}

// SavePNG writes fb to path as a PNG image
func SavePNG(path string, fb *renderer.FrameBuffer) error {
	dc := gg.NewContextForRGBA(ToImage(fb))
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save png %s: %w", path, err)
	}
	return nil
}

// SaveBMP writes fb to path as a BMP image
func SaveBMP(path string, fb *renderer.FrameBuffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save bmp %s: %w", path, err)
	}
	defer f.Close()

	if err := bmp.Encode(f, ToImage(fb)); err != nil {
		return fmt.Errorf("save bmp %s: %w", path, err)
	}
	return f.Close()
}

// Save writes fb in the format named by the extension of path
func Save(path string, fb *renderer.FrameBuffer) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return SavePNG(path, fb)
	case ".bmp":
		return SaveBMP(path, fb)
	}
	return fmt.Errorf("%w: %q (want %s)", ErrUnsupportedFormat, filepath.Ext(path), strings.Join(Extensions, " or "))
}

// OutputPath derives the file name for the buffer named key from base,
// e.g. render.png and "depth" give render_depth.png.
func OutputPath(base, key string) string {
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + "_" + key + ext
}
