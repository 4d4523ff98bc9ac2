package game_object

import (
	"sync/atomic"

	"github.com/oxy-go/swrast/common"
	"github.com/oxy-go/swrast/engine/light"
	"github.com/oxy-go/swrast/engine/model"
	"github.com/oxy-go/swrast/raster"
	"github.com/oxy-go/swrast/texture"
)

type gameObject struct {
	id        uint64
	enabled   atomic.Bool
	ephemeral bool

	mdl      model.Model
	shader   raster.Shader
	tex      texture.Texture
	cullMode raster.CullMode

	position      [3]float32
	scale         [3]float32
	rotation      [3]float32
	rotationSpeed [3]float32

	attachedLight light.Light
}

// GameObject defines the interface for a scene entity: a transform, a
// Model's geometry, a shader and texture binding, and an optional attached
// Light. It satisfies raster.Drawable so the vertex pipeline can consume
// it directly.
type GameObject interface {
	raster.ObjectView

	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Enabled returns whether this object is enabled for rendering.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// Ephemeral returns whether this object is ephemeral.
	// Ephemeral objects are not persisted in the scene's registry when added.
	//
	// Returns:
	//   - bool: true if ephemeral
	Ephemeral() bool

	// Model returns the Model associated with this object, or nil if not set.
	//
	// Returns:
	//   - model.Model: the associated model or nil
	Model() model.Model

	// Mesh returns the object's vertex buffer and triangle index list, for
	// raster.Drawable.
	Mesh() (vertices []raster.Vertex, indices []uint32)

	// WorldBoundingSphere returns the model's object-space bounding sphere
	// transformed by the object's current position and scale, for
	// raster.Drawable. Rotation is ignored; the conservative radius is
	// scaled by the largest axis scale factor.
	WorldBoundingSphere() (cx, cy, cz, radius float32)

	// Shader returns the shader bound to this object.
	Shader() raster.Shader

	// Texture returns the texture bound to this object, or nil.
	Texture() raster.Texture

	// CullMode returns the cull mode applied to this object's triangles.
	CullMode() raster.CullMode

	// Position returns the object's current world position.
	//
	// Returns:
	//   - x, y, z: position components
	Position() (x, y, z float32)

	// Rotation returns the object's current rotation, in radians.
	//
	// Returns:
	//   - rx, ry, rz: rotation angles
	Rotation() (rx, ry, rz float32)

	// RotationSpeed returns the object's per-axis rotation speed, in
	// radians per second.
	//
	// Returns:
	//   - rx, ry, rz: rotation speed values
	RotationSpeed() (rx, ry, rz float32)

	// Scale returns the object's current scale.
	//
	// Returns:
	//   - sx, sy, sz: scale components
	Scale() (sx, sy, sz float32)

	// SetID sets the object's unique identifier.
	//
	// Parameters:
	//   - id: the ID to assign
	SetID(id uint64)

	// SetEnabled sets whether the object is enabled for rendering.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// SetModel assigns a Model to this object.
	//
	// Parameters:
	//   - m: the Model to associate
	SetModel(m model.Model)

	// SetShader assigns the shader program used to render this object.
	//
	// Parameters:
	//   - s: the shader to associate
	SetShader(s raster.Shader)

	// SetTexture assigns the texture sampled by this object's shader.
	//
	// Parameters:
	//   - t: the texture to associate, or nil
	SetTexture(t texture.Texture)

	// SetCullMode sets the cull mode applied to this object's triangles.
	//
	// Parameters:
	//   - mode: the cull mode to set
	SetCullMode(mode raster.CullMode)

	// SetPosition updates the object's position.
	//
	// Parameters:
	//   - x, y, z: new position components
	SetPosition(x, y, z float32)

	// SetRotation updates the object's rotation, in radians.
	//
	// Parameters:
	//   - rx, ry, rz: new rotation angles
	SetRotation(rx, ry, rz float32)

	// SetRotationSpeed updates the object's rotation speed, in radians per second.
	//
	// Parameters:
	//   - rx, ry, rz: new rotation speed values
	SetRotationSpeed(rx, ry, rz float32)

	// SetScale updates the object's scale.
	//
	// Parameters:
	//   - sx, sy, sz: new scale factors
	SetScale(sx, sy, sz float32)

	// Light returns the Light attached to this object, or nil if none is set.
	//
	// Returns:
	//   - light.Light: the attached light or nil
	Light() light.Light

	// SetLight attaches a Light to this object. When the object is added to a
	// scene, the scene adds the light to its light list; the light's position
	// is not updated from the object's transform. Pass nil to detach.
	//
	// Parameters:
	//   - l: the Light to attach, or nil to detach
	SetLight(l light.Light)
}

var (
	_ GameObject     = &gameObject{}
	_ raster.Drawable = &gameObject{}
)

// NewGameObject creates a new GameObject configured with the given options.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		scale: [3]float32{1, 1, 1},
	}
	for _, option := range options {
		option(obj)
	}
	return obj
}

func (g *gameObject) ID() uint64 {
	return g.id
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) Ephemeral() bool {
	return g.ephemeral
}

func (g *gameObject) Model() model.Model {
	return g.mdl
}

func (g *gameObject) Mesh() ([]raster.Vertex, []uint32) {
	if g.mdl == nil {
		return nil, nil
	}
	return g.mdl.Vertices(), g.mdl.Indices()
}

func (g *gameObject) WorldBoundingSphere() (cx, cy, cz, radius float32) {
	if g.mdl == nil {
		return g.position[0], g.position[1], g.position[2], 0
	}
	sphere := g.mdl.BoundingSphere()
	maxScale := g.scale[0]
	if g.scale[1] > maxScale {
		maxScale = g.scale[1]
	}
	if g.scale[2] > maxScale {
		maxScale = g.scale[2]
	}
	cx = g.position[0] + sphere.CenterX*g.scale[0]
	cy = g.position[1] + sphere.CenterY*g.scale[1]
	cz = g.position[2] + sphere.CenterZ*g.scale[2]
	radius = sphere.Radius * maxScale
	return cx, cy, cz, radius
}

func (g *gameObject) Shader() raster.Shader {
	return g.shader
}

func (g *gameObject) Texture() raster.Texture {
	if g.tex == nil {
		return nil
	}
	return g.tex
}

func (g *gameObject) CullMode() raster.CullMode {
	return g.cullMode
}

func (g *gameObject) Position() (x, y, z float32) {
	return g.position[0], g.position[1], g.position[2]
}

func (g *gameObject) Rotation() (rx, ry, rz float32) {
	return g.rotation[0], g.rotation[1], g.rotation[2]
}

func (g *gameObject) RotationSpeed() (rx, ry, rz float32) {
	return g.rotationSpeed[0], g.rotationSpeed[1], g.rotationSpeed[2]
}

func (g *gameObject) Scale() (sx, sy, sz float32) {
	return g.scale[0], g.scale[1], g.scale[2]
}

// ModelMatrix builds this object's world model matrix from its current
// transform, for raster.ObjectView.
func (g *gameObject) ModelMatrix() [16]float32 {
	var out [16]float32
	common.BuildModelMatrix(out[:],
		g.position[0], g.position[1], g.position[2],
		g.rotation[0], g.rotation[1], g.rotation[2],
		g.scale[0], g.scale[1], g.scale[2])
	return out
}

func (g *gameObject) SetID(id uint64) {
	g.id = id
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) SetModel(m model.Model) {
	g.mdl = m
}

func (g *gameObject) SetShader(s raster.Shader) {
	g.shader = s
}

func (g *gameObject) SetTexture(t texture.Texture) {
	g.tex = t
}

func (g *gameObject) SetCullMode(mode raster.CullMode) {
	g.cullMode = mode
}

func (g *gameObject) SetPosition(x, y, z float32) {
	g.position = [3]float32{x, y, z}
}

func (g *gameObject) SetRotation(rx, ry, rz float32) {
	g.rotation = [3]float32{rx, ry, rz}
}

func (g *gameObject) SetRotationSpeed(rx, ry, rz float32) {
	g.rotationSpeed = [3]float32{rx, ry, rz}
}

func (g *gameObject) SetScale(sx, sy, sz float32) {
	g.scale = [3]float32{sx, sy, sz}
}

func (g *gameObject) Light() light.Light {
	return g.attachedLight
}

func (g *gameObject) SetLight(l light.Light) {
	g.attachedLight = l
}
