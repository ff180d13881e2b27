package material

import (
	"github.com/jinzhu/copier"
)

// Properties holds the surface description of a material. Fields are exported so that
// Clone can deep copy them; treat a Properties value obtained from a Material as a snapshot.
type Properties struct {
	// Name is the material identifier, usually the glTF material name.
	Name string
	// BaseColor is the albedo RGBA color.
	BaseColor [4]float32
	// Emissive is the RGB emissive color.
	Emissive [3]float32
	// Metallic factor: 0 is dielectric, 1 is fully metallic.
	Metallic float32
	// Roughness factor: 0 is smooth, 1 is fully rough.
	Roughness float32
	// Opacity multiplies the base color alpha. Only honored when Transparent is set.
	Opacity float32
	// Transparent enables alpha blending for the material.
	Transparent bool
	// Extras carries free-form key/value data from the source asset.
	Extras map[string]string
}

// material is the implementation of the Material interface.
type material struct {
	props Properties
}

// Material defines the interface for a surface material applied to a scene object.
//
// Materials are values: once built they are never mutated. Swapping the look of an
// object (highlighting, restoring) is done by assigning a Clone to it, so that two
// objects never share the same instance.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// BaseColor retrieves the albedo/diffuse RGBA color of the material.
	//
	// Returns:
	//   - [4]float32: the base color as RGBA values
	BaseColor() [4]float32

	// Emissive retrieves the emissive RGB color of the material.
	//
	// Returns:
	//   - [3]float32: the emissive color
	Emissive() [3]float32

	// Metallic retrieves the metallic factor of the material.
	// A value of 0.0 represents a dielectric surface, 1.0 represents a fully metallic surface.
	//
	// Returns:
	//   - float32: the metallic factor
	Metallic() float32

	// Roughness retrieves the roughness factor of the material.
	// A value of 0.0 represents a perfectly smooth surface, 1.0 represents a fully rough surface.
	//
	// Returns:
	//   - float32: the roughness factor
	Roughness() float32

	// Opacity retrieves the opacity factor. Meaningful only when Transparent is true.
	//
	// Returns:
	//   - float32: opacity in [0, 1]
	Opacity() float32

	// Transparent reports whether the material is alpha blended.
	//
	// Returns:
	//   - bool: true if transparent
	Transparent() bool

	// Properties returns a deep copy of the material's surface description.
	//
	// Returns:
	//   - Properties: the copied properties
	Properties() Properties

	// Clone returns an independent deep copy of the material. Mutating the properties the
	// clone was built from, or the clone's Extras, never affects the receiver.
	//
	// Returns:
	//   - Material: the new material
	Clone() Material
}

var _ Material = &material{}

// NewMaterial creates a new Material instance configured with the provided options.
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{
		props: Properties{
			BaseColor: [4]float32{1, 1, 1, 1},
			Metallic:  0.0,
			Roughness: 1.0,
			Opacity:   1.0,
		},
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

// FromProperties builds a Material holding a deep copy of props.
//
// Parameters:
//   - props: the surface description
//
// Returns:
//   - Material: the new material
func FromProperties(props Properties) Material {
	return &material{props: copyProperties(props)}
}

func (m *material) Name() string {
	return m.props.Name
}

func (m *material) BaseColor() [4]float32 {
	return m.props.BaseColor
}

func (m *material) Emissive() [3]float32 {
	return m.props.Emissive
}

func (m *material) Metallic() float32 {
	return m.props.Metallic
}

func (m *material) Roughness() float32 {
	return m.props.Roughness
}

func (m *material) Opacity() float32 {
	return m.props.Opacity
}

func (m *material) Transparent() bool {
	return m.props.Transparent
}

func (m *material) Properties() Properties {
	return copyProperties(m.props)
}

func (m *material) Clone() Material {
	return &material{props: copyProperties(m.props)}
}

// copyProperties deep copies src. copier only fails on mismatched kinds, which cannot
// happen when copying a Properties onto a Properties.
func copyProperties(src Properties) Properties {
	var dst Properties
	if err := copier.CopyWithOption(&dst, &src, copier.Option{DeepCopy: true}); err != nil {
		panic("material: copy properties: " + err.Error())
	}
	return dst
}
