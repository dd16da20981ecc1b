package pipeline

import (
	"fmt"

	"github.com/df07/go-drt-raytracer/pkg/renderer"
	"github.com/df07/go-drt-raytracer/pkg/scene"
)

// Key names a value threaded through a flow
type Key string

// Keys understood by the built-in passes
const (
	KeyScene      Key = "scene"
	KeyHelloWorld Key = "helloWorld"
	KeyGray       Key = "gray"
	KeyDepth      Key = "depth"
	KeyNormal     Key = "normal"
	KeyShaded     Key = "shaded"
)

// BufferKeys lists every frame-buffer key in output order
var BufferKeys = []Key{KeyHelloWorld, KeyGray, KeyDepth, KeyNormal, KeyShaded}

// Uniforms is the typed record accumulated across the passes of a flow.
// A nil field means the key has not been produced yet.
type Uniforms struct {
	Scene *scene.Scene

	HelloWorld *renderer.FrameBuffer
	Gray       *renderer.FrameBuffer
	Depth      *renderer.FrameBuffer
	Normal     *renderer.FrameBuffer
	Shaded     *renderer.FrameBuffer

	// Stats holds render statistics keyed by the buffer they describe
	Stats map[Key]renderer.RenderStats
}

// Has reports whether key holds a value
func (u Uniforms) Has(key Key) bool {
	if key == KeyScene {
		return u.Scene != nil
	}
	return u.Buffer(key) != nil
}

// Buffer returns the frame buffer stored under key, or nil
func (u Uniforms) Buffer(key Key) *renderer.FrameBuffer {
	switch key {
	case KeyHelloWorld:
		return u.HelloWorld
	case KeyGray:
		return u.Gray
	case KeyDepth:
		return u.Depth
	case KeyNormal:
		return u.Normal
	case KeyShaded:
		return u.Shaded
	}
	return nil
}

// WithBuffer returns a copy of u with fb stored under key
func (u Uniforms) WithBuffer(key Key, fb *renderer.FrameBuffer) (Uniforms, error) {
	switch key {
	case KeyHelloWorld:
		u.HelloWorld = fb
	case KeyGray:
		u.Gray = fb
	case KeyDepth:
		u.Depth = fb
	case KeyNormal:
		u.Normal = fb
	case KeyShaded:
		u.Shaded = fb
	default:
		return u, fmt.Errorf("%w: %q is not a buffer", ErrUnknownKey, key)
	}
	return u, nil
}

// Merge returns u overlaid with every value present in other
func (u Uniforms) Merge(other Uniforms) Uniforms {
	result := u
	if other.Scene != nil {
		result.Scene = other.Scene
	}
	for _, key := range BufferKeys {
		if fb := other.Buffer(key); fb != nil {
			result, _ = result.WithBuffer(key, fb)
		}
	}

	if len(other.Stats) > 0 {
		result.Stats = make(map[Key]renderer.RenderStats, len(u.Stats)+len(other.Stats))
		for k, v := range u.Stats {
			result.Stats[k] = v
		}
		for k, v := range other.Stats {
			result.Stats[k] = v
		}
	}
	return result
}

// Buffers returns the keys of every produced buffer in BufferKeys order
func (u Uniforms) Buffers() []Key {
	var keys []Key
	for _, key := range BufferKeys {
		if u.Has(key) {
			keys = append(keys, key)
		}
	}
	return keys
}

// output builds a single-buffer result carrying its stats
func output(key Key, fb *renderer.FrameBuffer, stats renderer.RenderStats) Uniforms {
	out, _ := Uniforms{}.WithBuffer(key, fb)
	out.Stats = map[Key]renderer.RenderStats{key: stats}
	return out
}
