package scene

import (
	"github.com/Carmen-Shannon/oxy-inspect/common"
	"github.com/Carmen-Shannon/oxy-inspect/engine/model"
	"github.com/Carmen-Shannon/oxy-inspect/engine/renderer/material"
)

// Kind distinguishes objects the user may select from structural scaffolding.
type Kind int

const (
	// KindSelectable objects can be hovered, highlighted and selected.
	KindSelectable Kind = iota
	// KindScaffolding objects are rendered but never returned by a pick.
	KindScaffolding
)

func (k Kind) String() string {
	if k == KindScaffolding {
		return "scaffolding"
	}
	return "selectable"
}

type object struct {
	name string
	kind Kind
	mdl  model.Model
	mat  material.Material
}

// Object defines the interface for a pickable scene entity.
// Identity is the unique name; geometry is the world-space Model used only for ray tests;
// the current material is the one thing that changes after load (highlight and restore).
type Object interface {
	// Name returns the object's unique identifier within its scene.
	//
	// Returns:
	//   - string: the object name
	Name() string

	// Kind returns whether the object is selectable or scaffolding.
	//
	// Returns:
	//   - Kind: the object kind
	Kind() Kind

	// Selectable is shorthand for Kind() == KindSelectable.
	//
	// Returns:
	//   - bool: true if the object can be picked
	Selectable() bool

	// Model returns the intersection geometry, or nil if the object has none.
	//
	// Returns:
	//   - model.Model: the geometry or nil
	Model() model.Model

	// Bounds returns the world-space bounds of the geometry, or an empty box.
	//
	// Returns:
	//   - common.AABB: the bounds
	Bounds() common.AABB

	// Material returns the material currently applied to the object.
	//
	// Returns:
	//   - material.Material: the current material, may be nil
	Material() material.Material

	// SetMaterial replaces the applied material. Callers pass a clone they own; the object
	// keeps the reference.
	//
	// Parameters:
	//   - m: the material to apply
	SetMaterial(m material.Material)
}

var _ Object = &object{}

// NewObject creates a new Object configured with the provided options.
// Panics if no name is given, since the name is the object's identity.
//
// Parameters:
//   - name: unique object name
//   - options: variadic list of ObjectBuilderOption functions
//
// Returns:
//   - Object: the new object
func NewObject(name string, options ...ObjectBuilderOption) Object {
	if name == "" {
		panic("scene: NewObject requires a non-empty name")
	}
	o := &object{
		name: name,
		kind: KindSelectable,
	}
	for _, opt := range options {
		opt(o)
	}
	return o
}

func (o *object) Name() string {
	return o.name
}

func (o *object) Kind() Kind {
	return o.kind
}

func (o *object) Selectable() bool {
	return o.kind == KindSelectable
}

func (o *object) Model() model.Model {
	return o.mdl
}

func (o *object) Bounds() common.AABB {
	if o.mdl == nil {
		return common.EmptyAABB()
	}
	return o.mdl.Bounds()
}

func (o *object) Material() material.Material {
	return o.mat
}

func (o *object) SetMaterial(m material.Material) {
	o.mat = m
}
