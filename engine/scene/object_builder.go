package scene

import (
	"github.com/Carmen-Shannon/oxy-inspect/engine/model"
	"github.com/Carmen-Shannon/oxy-inspect/engine/renderer/material"
)

// ObjectBuilderOption is a function that configures an object during construction.
type ObjectBuilderOption func(*object)

// WithKind sets whether the object is selectable or scaffolding.
//
// Parameters:
//   - kind: the object kind
//
// Returns:
//   - ObjectBuilderOption: option function to apply
func WithKind(kind Kind) ObjectBuilderOption {
	return func(o *object) {
		o.kind = kind
	}
}

// WithModel sets the object's world-space intersection geometry.
//
// Parameters:
//   - m: the geometry
//
// Returns:
//   - ObjectBuilderOption: option function to apply
func WithModel(m model.Model) ObjectBuilderOption {
	return func(o *object) {
		o.mdl = m
	}
}

// WithMaterial sets the object's initial (pristine) material.
//
// Parameters:
//   - m: the material
//
// Returns:
//   - ObjectBuilderOption: option function to apply
func WithMaterial(m material.Material) ObjectBuilderOption {
	return func(o *object) {
		o.mat = m
	}
}
