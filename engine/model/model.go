package model

import (
	"math"

	"github.com/oxy-go/swrast/common"
	"github.com/oxy-go/swrast/raster"
)

// model is the implementation of the Model interface.
type model struct {
	name     string
	vertices []raster.Vertex
	indices  []uint32
	bounds   BoundingSphere
	material common.ImportedMaterial
}

// Model defines the interface for a loaded 3D mesh: a CPU-resident vertex
// and index buffer ready for the vertex pipeline, a bounding sphere for
// frustum culling, and the imported material describing its texture.
type Model interface {
	// Name retrieves the model identifier.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// Vertices retrieves the mesh's vertex buffer.
	//
	// Returns:
	//   - []raster.Vertex: the vertex buffer
	Vertices() []raster.Vertex

	// Indices retrieves the mesh's triangle index list. Every three
	// consecutive indices form one triangle.
	//
	// Returns:
	//   - []uint32: the index buffer
	Indices() []uint32

	// BoundingSphere retrieves the object-space bounding sphere used for
	// frustum culling, before the owning drawable transforms it by its
	// model matrix.
	//
	// Returns:
	//   - BoundingSphere: the bounding sphere
	BoundingSphere() BoundingSphere

	// Material retrieves the imported material describing this model's
	// texture and shading parameters.
	//
	// Returns:
	//   - common.ImportedMaterial: the imported material
	Material() common.ImportedMaterial

	// SetVertices replaces the model's vertex buffer.
	//
	// Parameters:
	//   - vertices: the vertex buffer to set
	SetVertices(vertices []raster.Vertex)

	// SetIndices replaces the model's index buffer.
	//
	// Parameters:
	//   - indices: the index buffer to set
	SetIndices(indices []uint32)

	// SetBoundingSphere overrides the bounding sphere.
	//
	// Parameters:
	//   - sphere: the bounding sphere to set
	SetBoundingSphere(sphere BoundingSphere)
}

var _ Model = &model{}

// NewModel creates a new Model instance with the specified options applied.
// If no bounding sphere is supplied via WithBoundingSphere, one is computed
// from the vertex buffer.
//
// Parameters:
//   - options: a variadic list of ModelBuilderOption functions to configure the Model
//
// Returns:
//   - Model: a new instance of Model configured with the provided options
func NewModel(options ...ModelBuilderOption) Model {
	m := &model{}
	for _, opt := range options {
		opt(m)
	}
	if m.bounds.Radius == 0 && len(m.vertices) > 0 {
		m.bounds = computeBoundingSphere(m.vertices)
	}
	return m
}

// computeBoundingSphere returns the smallest origin-centered sphere that
// contains every vertex position, the conservative bound used when a
// model builder does not supply one explicitly.
func computeBoundingSphere(vertices []raster.Vertex) BoundingSphere {
	var maxDistSq float32
	for _, v := range vertices {
		x, y, z := v.Position[0], v.Position[1], v.Position[2]
		distSq := x*x + y*y + z*z
		if distSq > maxDistSq {
			maxDistSq = distSq
		}
	}
	return BoundingSphere{Radius: float32(math.Sqrt(float64(maxDistSq)))}
}

func (m *model) Name() string {
	return m.name
}

func (m *model) Vertices() []raster.Vertex {
	return m.vertices
}

func (m *model) Indices() []uint32 {
	return m.indices
}

func (m *model) BoundingSphere() BoundingSphere {
	return m.bounds
}

func (m *model) Material() common.ImportedMaterial {
	return m.material
}

func (m *model) SetVertices(vertices []raster.Vertex) {
	m.vertices = vertices
}

func (m *model) SetIndices(indices []uint32) {
	m.indices = indices
}

func (m *model) SetBoundingSphere(sphere BoundingSphere) {
	m.bounds = sphere
}
