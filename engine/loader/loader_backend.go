package loader

import (
	"io"
)

// loaderBackend defines the generic interface for importing a scene from a file or stream.
// Concrete implementations (e.g., gltfLoaderBackend) handle format-specific details.
type loaderBackend interface {
	// Load imports the scene at the given file path.
	//
	// Parameters:
	//   - path: the file path to load
	//
	// Returns:
	//   - *importedScene: the flattened scene data
	//   - error: error if loading fails
	Load(path string) (*importedScene, error)

	// LoadReader imports a scene from a reader stream.
	//
	// Parameters:
	//   - name: the scene name
	//   - r: the reader providing model data
	//   - isGLB: true if the reader provides GLB binary data
	//   - baseDir: directory for external resources, may be empty
	//
	// Returns:
	//   - *importedScene: the flattened scene data
	//   - error: error if loading fails
	LoadReader(name string, r io.Reader, isGLB bool, baseDir string) (*importedScene, error)
}
