package hellotext

// Key represents a keyboard key the demo reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
	KeyCount
)

// InputState holds the keys currently held.
// This is typically populated by the application from GLFW or similar.
type InputState struct {
	keyDown [KeyCount]bool
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{}
}

// SetKey sets key state.
func (s *InputState) SetKey(key Key, down bool) {
	if key < 0 || key >= KeyCount {
		return
	}
	s.keyDown[key] = down
}

// KeyDown returns true if a key is currently held.
func (s *InputState) KeyDown(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

// QuitRequested reports whether the user asked to leave (Escape held).
func (s *InputState) QuitRequested() bool {
	return s.KeyDown(KeyEscape)
}
