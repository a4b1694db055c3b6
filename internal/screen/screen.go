package screen

import (
	tea "charm.land/bubbletea/v2"

	"quizdrill/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider is an optional interface for screens that want to fill
// the header's right-hand slot, e.g. with an elapsed-time readout.
type StatusProvider interface {
	HeaderStatus() string
}

// EscInterceptor is an optional interface for screens that sometimes
// need the Esc key for themselves (closing an inline editor or a
// confirmation prompt) instead of the default back navigation.
type EscInterceptor interface {
	WantsEsc() bool
}
