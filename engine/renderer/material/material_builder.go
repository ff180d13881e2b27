package material

// MaterialBuilderOption is a function that configures a material instance during construction.
type MaterialBuilderOption func(*material)

// WithName is an option builder that sets the name of the material.
//
// Parameters:
//   - name: the identifier for the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the name option to a material
func WithName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.props.Name = name
	}
}

// WithBaseColor is an option builder that sets the albedo/diffuse RGBA color of the material.
//
// Parameters:
//   - color: the base color as RGBA float32 values
//
// Returns:
//   - MaterialBuilderOption: a function that applies the base color option to a material
func WithBaseColor(color [4]float32) MaterialBuilderOption {
	return func(m *material) {
		m.props.BaseColor = color
	}
}

// WithEmissive is an option builder that sets the emissive RGB color of the material.
//
// Parameters:
//   - color: the emissive color
//
// Returns:
//   - MaterialBuilderOption: a function that applies the emissive option to a material
func WithEmissive(color [3]float32) MaterialBuilderOption {
	return func(m *material) {
		m.props.Emissive = color
	}
}

// WithMetallic is an option builder that sets the metallic factor of the material.
//
// Parameters:
//   - metallic: the metallic factor (0.0 = dielectric, 1.0 = metal)
//
// Returns:
//   - MaterialBuilderOption: a function that applies the metallic option to a material
func WithMetallic(metallic float32) MaterialBuilderOption {
	return func(m *material) {
		m.props.Metallic = metallic
	}
}

// WithRoughness is an option builder that sets the roughness factor of the material.
//
// Parameters:
//   - roughness: the roughness factor (0.0 = smooth, 1.0 = rough)
//
// Returns:
//   - MaterialBuilderOption: a function that applies the roughness option to a material
func WithRoughness(roughness float32) MaterialBuilderOption {
	return func(m *material) {
		m.props.Roughness = roughness
	}
}

// WithOpacity is an option builder that makes the material transparent with the given opacity.
//
// Parameters:
//   - opacity: opacity in [0, 1]
//
// Returns:
//   - MaterialBuilderOption: a function that applies the opacity option to a material
func WithOpacity(opacity float32) MaterialBuilderOption {
	return func(m *material) {
		m.props.Opacity = opacity
		m.props.Transparent = opacity < 1
	}
}

// WithExtra is an option builder that attaches a key/value pair to the material.
//
// Parameters:
//   - key: the extra's key
//   - value: the extra's value
//
// Returns:
//   - MaterialBuilderOption: a function that applies the extra to a material
func WithExtra(key, value string) MaterialBuilderOption {
	return func(m *material) {
		if m.props.Extras == nil {
			m.props.Extras = make(map[string]string)
		}
		m.props.Extras[key] = value
	}
}

// NewHighlight builds the shared highlight material from an RGB color and opacity.
// Each highlighted object receives its own Clone of it.
//
// Parameters:
//   - rgb: highlight color
//   - opacity: highlight opacity in [0, 1]
//
// Returns:
//   - Material: the highlight material
func NewHighlight(rgb [3]float32, opacity float32) Material {
	return NewMaterial(
		WithName("highlight"),
		WithBaseColor([4]float32{rgb[0], rgb[1], rgb[2], 1}),
		WithOpacity(opacity),
		WithRoughness(0.6),
	)
}
