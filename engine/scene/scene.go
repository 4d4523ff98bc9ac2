// Package scene manages a collection of GameObjects, a Camera, and a set of
// Lights, and drives the vertex pipeline each frame via raster.BuildFrame.
package scene

import (
	"sync"

	"github.com/oxy-go/swrast/engine/camera"
	"github.com/oxy-go/swrast/engine/game_object"
	"github.com/oxy-go/swrast/engine/light"
	"github.com/oxy-go/swrast/raster"
	"github.com/oxy-go/swrast/shadercontract"
)

// Scene manages a registry of GameObjects alongside a Camera and a set of
// Lights, and exposes BuildFrame to drive the vertex pipeline each frame.
// Scenes can be hot-swapped via the Active flag to switch between different
// views or levels. Thread-safe for concurrent access.
type Scene interface {
	raster.SceneView

	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Active returns whether this scene is currently active for rendering.
	Active() bool

	// SetActive sets whether this scene is active for rendering.
	SetActive(active bool)

	// Camera returns the scene's camera.
	Camera() camera.Camera

	// SetCamera replaces the scene's camera.
	SetCamera(cam camera.Camera)

	// Count returns the number of persisted GameObjects in the scene's
	// registry. Does not include ephemeral objects.
	Count() int

	// Add adds a GameObject to the scene's drawable list. If the object is
	// not ephemeral it is also persisted in the registry for later lookup
	// or removal by ID, and assigned an ID if it does not already have one.
	// If the object carries an attached Light, the light is also registered.
	//
	// Returns:
	//   - uint64: the object's ID (assigned if it was zero)
	Add(obj game_object.GameObject) uint64

	// Get retrieves a non-ephemeral GameObject by its ID. Returns nil if
	// not found.
	Get(id uint64) game_object.GameObject

	// Remove removes a non-ephemeral GameObject from the registry by ID,
	// detaching its light if it has one.
	Remove(id uint64)

	// Clear removes all objects and lights from the scene.
	Clear()

	// Tick advances every drawable's rotation by rotationSpeed*deltaTime
	// and updates the camera's matrices from its controller.
	Tick(deltaTime float32)

	// BuildFrame runs the vertex pipeline over every drawable currently
	// registered, against this scene's camera frustum, and returns the
	// clipped vertex stream and draw call list for the tile scheduler to
	// rasterize.
	BuildFrame(renderW, renderH float32, arena *shadercontract.Arena) (clipped []raster.Vertex, drawCalls []raster.DrawCall)

	// AddLight adds a light source to the scene.
	AddLight(l light.Light)

	// RemoveLight removes a light source from the scene by reference.
	RemoveLight(l light.Light)

	// DetachLight removes a game object's attached light from the scene's
	// light list. Non-ephemeral objects are cleaned up automatically via
	// Remove(); ephemeral object owners must call this explicitly when the
	// object's lifetime ends.
	DetachLight(obj game_object.GameObject)

	// AmbientColor returns the scene's ambient light color.
	AmbientColor() [3]float32

	// SetAmbientColor sets the scene's ambient light color.
	SetAmbientColor(color [3]float32)
}

type scene struct {
	mu *sync.RWMutex

	name   string
	active bool

	drawables []game_object.GameObject
	registry  map[uint64]game_object.GameObject
	nextID    uint64

	cam camera.Camera

	lights       []light.Light
	ambientColor [3]float32
}

var _ Scene = &scene{}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Camera() camera.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cam
}

func (s *scene) SetCamera(cam camera.Camera) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cam = cam
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.registry)
}

func (s *scene) Add(obj game_object.GameObject) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

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
	return obj.ID()
}

func (s *scene) Get(id uint64) game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry[id]
}

func (s *scene) Remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	obj, ok := s.registry[id]
	if !ok {
		return
	}
	delete(s.registry, id)
	s.removeDrawableLocked(obj)
	if l := obj.Light(); l != nil {
		s.removeLightLocked(l)
	}
}

func (s *scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drawables = nil
	s.registry = make(map[uint64]game_object.GameObject)
	s.lights = nil
}

func (s *scene) Tick(deltaTime float32) {
	s.mu.RLock()
	drawables := s.drawables
	cam := s.cam
	s.mu.RUnlock()

	for _, obj := range drawables {
		if !obj.Enabled() {
			continue
		}
		rx, ry, rz := obj.Rotation()
		sx, sy, sz := obj.RotationSpeed()
		obj.SetRotation(rx+sx*deltaTime, ry+sy*deltaTime, rz+sz*deltaTime)
	}
	if cam != nil {
		cam.Update()
	}
}

func (s *scene) BuildFrame(renderW, renderH float32, arena *shadercontract.Arena) ([]raster.Vertex, []raster.DrawCall) {
	s.mu.RLock()
	cam := s.cam
	drawables := make([]raster.Drawable, 0, len(s.drawables))
	for _, obj := range s.drawables {
		if obj.Enabled() {
			drawables = append(drawables, obj)
		}
	}
	s.mu.RUnlock()

	var frustum raster.FrustumTester = alwaysVisibleFrustum{}
	if cam != nil {
		frustum = cam
	}
	return raster.BuildFrame(s, frustum, drawables, renderW, renderH, arena)
}

// alwaysVisibleFrustum is used when a scene has no camera attached yet, so
// BuildFrame never dereferences a nil FrustumTester.
type alwaysVisibleFrustum struct{}

func (alwaysVisibleFrustum) CanSee(cx, cy, cz, radius float32) bool { return true }

func (s *scene) AddLight(l light.Light) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lights = append(s.lights, l)
}

func (s *scene) RemoveLight(l light.Light) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLightLocked(l)
}

func (s *scene) DetachLight(obj game_object.GameObject) {
	l := obj.Light()
	if l == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLightLocked(l)
}

func (s *scene) AmbientColor() [3]float32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ambientColor
}

func (s *scene) SetAmbientColor(color [3]float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ambientColor = color
}

// ViewProjectionMatrix implements raster.SceneView.
func (s *scene) ViewProjectionMatrix() [16]float32 {
	s.mu.RLock()
	cam := s.cam
	s.mu.RUnlock()
	if cam == nil {
		return [16]float32{1: 1, 5: 1, 10: 1, 15: 1}
	}
	return cam.ViewProjectionMatrix()
}

// EyePosition implements raster.SceneView.
func (s *scene) EyePosition() (x, y, z float32) {
	s.mu.RLock()
	cam := s.cam
	s.mu.RUnlock()
	if cam == nil || cam.Controller() == nil {
		return 0, 0, 0
	}
	return cam.Controller().Position()
}

// Lights implements raster.SceneView, adapting each engine light.Light to
// the structurally compatible raster.LightSource contract.
func (s *scene) Lights() []raster.LightSource {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]raster.LightSource, len(s.lights))
	for i, l := range s.lights {
		out[i] = l
	}
	return out
}

func (s *scene) removeDrawableLocked(obj game_object.GameObject) {
	for i, d := range s.drawables {
		if d == obj {
			s.drawables = append(s.drawables[:i], s.drawables[i+1:]...)
			return
		}
	}
}

func (s *scene) removeLightLocked(l light.Light) {
	for i, existing := range s.lights {
		if existing == l {
			s.lights = append(s.lights[:i], s.lights[i+1:]...)
			return
		}
	}
}
