// Package style provides shared UI styling primitives including colors and
// icons for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Circle  = "○"
)

// Styles for the package listing.
var (
	Header     = lipgloss.NewStyle().Bold(true).Foreground(Iris)
	PackageID  = lipgloss.NewStyle().Bold(true)
	Version    = lipgloss.NewStyle().Foreground(Slate)
	Direct     = lipgloss.NewStyle().Foreground(Green)
	Transitive = lipgloss.NewStyle().Foreground(Slate)
	Framework  = lipgloss.NewStyle().Foreground(Yellow)
	Error      = lipgloss.NewStyle().Foreground(Red)
)
