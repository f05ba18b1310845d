// Package theme decides which palette mode the preview should show first.
package theme

// Mode selects which half of a holiday definition is displayed.
type Mode int

const (
	Light Mode = iota
	Dark
)

func (m Mode) String() string {
	if m == Dark {
		return "dark"
	}

	return "light"
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == Dark {
		return Light
	}

	return Dark
}
