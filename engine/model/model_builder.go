package model

import (
	"github.com/oxy-go/swrast/common"
	"github.com/oxy-go/swrast/raster"
)

// ModelBuilderOption is a functional option for configuring a Model via NewModel.
type ModelBuilderOption func(*model)

// WithName is an option builder that sets the name of the Model.
//
// Parameters:
//   - name: the model identifier
//
// Returns:
//   - ModelBuilderOption: a function that applies the name option to a model
func WithName(name string) ModelBuilderOption {
	return func(m *model) {
		m.name = name
	}
}

// WithVertices is an option builder that sets the model's vertex buffer.
//
// Parameters:
//   - vertices: the vertex buffer to set
//
// Returns:
//   - ModelBuilderOption: a function that applies the vertices option to a model
func WithVertices(vertices []raster.Vertex) ModelBuilderOption {
	return func(m *model) {
		m.vertices = vertices
	}
}

// WithIndices is an option builder that sets the model's triangle index list.
//
// Parameters:
//   - indices: the index buffer to set
//
// Returns:
//   - ModelBuilderOption: a function that applies the indices option to a model
func WithIndices(indices []uint32) ModelBuilderOption {
	return func(m *model) {
		m.indices = indices
	}
}

// WithMaterial is an option builder that sets the model's imported material.
//
// Parameters:
//   - material: the imported material to set
//
// Returns:
//   - ModelBuilderOption: a function that applies the material option to a model
func WithMaterial(material common.ImportedMaterial) ModelBuilderOption {
	return func(m *model) {
		m.material = material
	}
}

// WithBoundingSphere is an option builder that manually sets the bounding
// sphere, overriding the auto-computed value NewModel would otherwise
// derive from the vertex buffer. Use this when a manually tuned
// conservative bound is preferred, or the sphere is not origin-centered.
//
// Parameters:
//   - sphere: the bounding sphere to set
//
// Returns:
//   - ModelBuilderOption: a function that applies the bounding sphere option to a model
func WithBoundingSphere(sphere BoundingSphere) ModelBuilderOption {
	return func(m *model) {
		m.bounds = sphere
	}
}
