package common

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyW     = 87  // W key (ASCII), move forward
	KeyA     = 65  // A key (ASCII), strafe left
	KeyS     = 83  // S key (ASCII), move backward
	KeyD     = 68  // D key (ASCII), strafe right
	KeyQ     = 81  // Q key (ASCII), rise
	KeyE     = 69  // E key (ASCII), sink
	KeyX     = 88  // X key (ASCII), close the info panel
	KeySpace = 32  // Spacebar (ASCII), boost when combined with Shift
	KeyEsc   = 256 // Escape key (GLFW)
)

// Additional non-printable keys
const (
	KeyLeftShift  = 340 // Left Shift (GLFW)
	KeyLeftAlt    = 342 // Left Alt (GLFW)
	KeyRightShift = 344 // Right Shift (GLFW)
	KeyRightAlt   = 346 // Right Alt (GLFW)
)

// Modifier is a bit set of held modifier keys carried by every input event.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

// Has reports whether all bits of m2 are set in m.
//
// Parameters:
//   - m2: the modifier bits to test
//
// Returns:
//   - bool: true if every bit in m2 is held
func (m Modifier) Has(m2 Modifier) bool {
	return m&m2 == m2
}

// MouseButton identifies a mouse button. Values match GLFW mouse button indices.
type MouseButton int

const (
	MouseButtonLeft   MouseButton = 0
	MouseButtonRight  MouseButton = 1
	MouseButtonMiddle MouseButton = 2
)
