package model

// ModelBuilderOption is a function that configures a model instance during construction.
type ModelBuilderOption func(*model)

// WithName is an option builder that sets the model's name.
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

// WithTriangles is an option builder that appends world-space triangles to the model.
// Degenerate triangles are dropped.
//
// Parameters:
//   - triangles: the triangles to add
//
// Returns:
//   - ModelBuilderOption: a function that applies the triangles to a model
func WithTriangles(triangles ...Triangle) ModelBuilderOption {
	return func(m *model) {
		for _, t := range triangles {
			if !t.Degenerate() {
				m.triangles = append(m.triangles, t)
			}
		}
	}
}
