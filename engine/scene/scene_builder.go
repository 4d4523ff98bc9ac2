package scene

import (
	"sync"

	"github.com/oxy-go/swrast/engine/camera"
	"github.com/oxy-go/swrast/engine/game_object"
	"github.com/oxy-go/swrast/engine/light"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// NewScene creates a new Scene with no camera, objects, or lights attached.
func NewScene(options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:       &sync.RWMutex{},
		registry: make(map[uint64]game_object.GameObject),
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// WithName sets the scene's identifier.
func WithName(name string) SceneBuilderOption {
	return func(s *scene) {
		s.name = name
	}
}

// WithActive sets whether the scene is active for rendering.
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithSceneCamera attaches a camera to the scene.
func WithSceneCamera(cam camera.Camera) SceneBuilderOption {
	return func(s *scene) {
		s.cam = cam
	}
}

// WithAmbientColor sets the scene's ambient light color.
func WithAmbientColor(r, g, b float32) SceneBuilderOption {
	return func(s *scene) {
		s.ambientColor = [3]float32{r, g, b}
	}
}

// WithObjects adds initial objects to the scene. Objects without IDs are
// assigned new IDs. Non-ephemeral objects are persisted in the registry;
// objects carrying an attached light are also registered as a scene light.
func WithObjects(objects ...game_object.GameObject) SceneBuilderOption {
	return func(s *scene) {
		for _, obj := range objects {
			if obj.ID() == 0 {
				s.nextID++
				obj.SetID(s.nextID)
			}
			s.drawables = append(s.drawables, obj)
			if !obj.Ephemeral() {
				s.registry[obj.ID()] = obj
			}
			if l := obj.Light(); l != nil {
				s.lights = append(s.lights, l)
			}
		}
	}
}

// WithLights adds initial lights to the scene, independent of any
// game-object attachment.
func WithLights(lights ...light.Light) SceneBuilderOption {
	return func(s *scene) {
		s.lights = append(s.lights, lights...)
	}
}
