package pipeline

import (
	"errors"
	"testing"

	"github.com/df07/go-drt-raytracer/pkg/renderer"
	"github.com/df07/go-drt-raytracer/pkg/scene"
)

func TestUniforms_HasAndBuffer(t *testing.T) {
	fb := renderer.NewFrameBuffer(2, 2)
	u := Uniforms{Depth: fb}

	if !u.Has(KeyDepth) || u.Buffer(KeyDepth) != fb {
		t.Error("Expected depth buffer to be present")
	}
	if u.Has(KeyNormal) || u.Buffer(KeyNormal) != nil {
		t.Error("Expected normal buffer to be absent")
	}
	if u.Has(KeyScene) {
		t.Error("Expected scene to be absent")
	}
	if u.Buffer(KeyScene) != nil {
		t.Error("The scene key never holds a buffer")
	}

	u.Scene = scene.NewSingleSphereScene(2, 2)
	if !u.Has(KeyScene) {
		t.Error("Expected scene to be present")
	}
}

func TestUniforms_WithBuffer(t *testing.T) {
	fb := renderer.NewFrameBuffer(1, 1)

	for _, key := range BufferKeys {
		u, err := Uniforms{}.WithBuffer(key, fb)
		if err != nil {
			t.Fatalf("WithBuffer(%s) failed: %v", key, err)
		}
		if u.Buffer(key) != fb {
			t.Errorf("Expected buffer stored under %s", key)
		}
	}

	if _, err := (Uniforms{}).WithBuffer(KeyScene, fb); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("Expected ErrUnknownKey for the scene key, got %v", err)
	}
}

func TestUniforms_Merge(t *testing.T) {
	oldShaded := renderer.NewFrameBuffer(1, 1)
	newShaded := renderer.NewFrameBuffer(1, 1)
	depth := renderer.NewFrameBuffer(1, 1)
	sc := scene.NewSingleSphereScene(1, 1)

	base := Uniforms{
		Scene:  sc,
		Shaded: oldShaded,
		Depth:  depth,
		Stats:  map[Key]renderer.RenderStats{KeyShaded: {TotalPixels: 1}},
	}
	update := Uniforms{
		Shaded: newShaded,
		Stats:  map[Key]renderer.RenderStats{KeyShaded: {TotalPixels: 2}},
	}

	merged := base.Merge(update)
	if merged.Scene != sc {
		t.Error("Expected scene to survive a merge without one")
	}
	if merged.Shaded != newShaded {
		t.Error("Expected the newer buffer to win")
	}
	if merged.Depth != depth {
		t.Error("Expected untouched buffers to survive")
	}
	if merged.Stats[KeyShaded].TotalPixels != 2 {
		t.Errorf("Expected newer stats, got %+v", merged.Stats[KeyShaded])
	}
	if base.Stats[KeyShaded].TotalPixels != 1 || base.Shaded != oldShaded {
		t.Error("Merge must not modify the receiver")
	}
}

func TestUniforms_Buffers(t *testing.T) {
	fb := renderer.NewFrameBuffer(1, 1)
	u := Uniforms{Shaded: fb, Gray: fb, HelloWorld: fb}

	keys := u.Buffers()
	expected := []Key{KeyHelloWorld, KeyGray, KeyShaded}
	if len(keys) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, keys)
	}
	for i := range expected {
		if keys[i] != expected[i] {
			t.Errorf("Expected %v, got %v", expected, keys)
		}
	}
}
