package scene

import (
	"fmt"
	"sort"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Name used on the command line
	DisplayName string
	Description string
}

type sceneEntry struct {
	info   SceneInfo
	create func(width, height int) *Scene
}

var builtinScenes = map[string]sceneEntry{
	"base": {
		info:   SceneInfo{ID: "base", DisplayName: "Base", Description: "glossy spheres under a soft area light"},
		create: NewBaseScene,
	},
	"mirror": {
		info:   SceneInfo{ID: "mirror", DisplayName: "Mirror", Description: "perfect mirrors with a hard point light"},
		create: NewMirrorScene,
	},
	"single-sphere": {
		info:   SceneInfo{ID: "single-sphere", DisplayName: "Single sphere", Description: "one unlit red sphere"},
		create: NewSingleSphereScene,
	},
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, entry := range builtinScenes {
		scenes = append(scenes, entry.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Names returns the IDs of the built-in scenes
func Names() []string {
	var names []string
	for _, info := range ListScenes() {
		names = append(names, info.ID)
	}
	return names
}

// ByName creates and validates the named built-in scene for a width×height frame
func ByName(name string, width, height int) (*Scene, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	entry, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	s := entry.create(width, height)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
