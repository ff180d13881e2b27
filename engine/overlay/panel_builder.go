package overlay

import (
	"go.uber.org/zap"
)

// PanelBuilderOption is a function that configures a panel during construction.
type PanelBuilderOption func(*Panel)

// WithSize sets the panel's size in pixels.
//
// Parameters:
//   - w: width
//   - h: height
//
// Returns:
//   - PanelBuilderOption: option function to apply
func WithSize(w, h float32) PanelBuilderOption {
	return func(p *Panel) {
		p.width = w
		p.height = h
	}
}

// WithCloseHandler sets the function called after the user closes the panel.
//
// Parameters:
//   - fn: the handler
//
// Returns:
//   - PanelBuilderOption: option function to apply
func WithCloseHandler(fn func()) PanelBuilderOption {
	return func(p *Panel) {
		p.onClose = fn
	}
}

// WithLogger sets the logger the panel reports to.
//
// Parameters:
//   - logger: the logger, nil keeps the no-op default
//
// Returns:
//   - PanelBuilderOption: option function to apply
func WithLogger(logger *zap.Logger) PanelBuilderOption {
	return func(p *Panel) {
		if logger != nil {
			p.logger = logger
		}
	}
}
