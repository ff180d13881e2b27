package loader

import "go.uber.org/zap"

// LoaderBuilderOption is a functional option for configuring a Loader via NewLoader.
type LoaderBuilderOption func(*loader)

// WithWorkers sets how many goroutines extract triangles in parallel. Values below one use one.
//
// Parameters:
//   - n: the worker count, defaults to runtime.NumCPU
//
// Returns:
//   - LoaderBuilderOption: a function that applies the option to a loader
func WithWorkers(n int) LoaderBuilderOption {
	return func(l *loader) {
		if n < 1 {
			n = 1
		}
		l.workers = n
	}
}

// WithSurfaceOverride forces the roughness and metalness of every loaded material.
// A non-positive value keeps the factor from the file.
//
// Parameters:
//   - roughness: roughness to apply
//   - metalness: metalness to apply
//
// Returns:
//   - LoaderBuilderOption: a function that applies the option to a loader
func WithSurfaceOverride(roughness, metalness float32) LoaderBuilderOption {
	return func(l *loader) {
		l.override = surfaceOverride{Roughness: roughness, Metalness: metalness}
	}
}

// WithLogger sets the logger for load summaries.
//
// Parameters:
//   - logger: the zap logger, nil keeps the no-op logger
//
// Returns:
//   - LoaderBuilderOption: a function that applies the option to a loader
func WithLogger(logger *zap.Logger) LoaderBuilderOption {
	return func(l *loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}
