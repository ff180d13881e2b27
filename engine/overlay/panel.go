package overlay

import (
	"go.uber.org/zap"
)

// Panel is the in-process Overlay. It tracks visibility and the current payload and
// reports what it displays through the logger. Closing the panel by the user goes
// through Close so the registered close handler can release the pinned selection.
type Panel struct {
	width, height float32
	visible       bool
	current       Info
	onClose       func()
	logger        *zap.Logger
}

var _ Overlay = &Panel{}

// NewPanel creates a hidden panel configured with the provided options.
//
// Parameters:
//   - options: variadic list of PanelBuilderOption functions
//
// Returns:
//   - *Panel: the panel
func NewPanel(options ...PanelBuilderOption) *Panel {
	p := &Panel{
		width:  250,
		height: 170,
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

func (p *Panel) Visible() bool {
	return p.visible
}

func (p *Panel) Show(info Info) {
	p.current = info
	p.visible = true

	fields := make([]zap.Field, 0, len(info.Fields)+3)
	fields = append(fields,
		zap.String("object", info.Object),
		zap.Float32("x", info.Placement.X),
		zap.Float32("y", info.Placement.Y),
	)
	for _, f := range info.Fields {
		fields = append(fields, zap.String(f.Label, f.Value))
	}
	p.logger.Info(Title, fields...)
}

func (p *Panel) Hide() {
	if !p.visible {
		return
	}
	p.visible = false
	p.current = Info{}
	p.logger.Debug("overlay hidden")
}

func (p *Panel) Size() (float32, float32) {
	return p.width, p.height
}

// Current returns the payload being displayed, or the zero Info when hidden.
func (p *Panel) Current() Info {
	return p.current
}

// SetCloseHandler registers the function called after the panel is closed by the user.
//
// Parameters:
//   - fn: the handler, nil to clear
func (p *Panel) SetCloseHandler(fn func()) {
	p.onClose = fn
}

// Close models the user dismissing the panel: it hides the panel and then runs the close
// handler. Closing a hidden panel does nothing.
func (p *Panel) Close() {
	if !p.visible {
		return
	}
	p.Hide()
	if p.onClose != nil {
		p.onClose()
	}
}
