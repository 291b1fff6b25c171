// Package style provides the colors and icons shared by the CLI output.
package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// MBTA line colors.
var (
	RedLine    = lipgloss.Color("#DA291C")
	OrangeLine = lipgloss.Color("#ED8B00")
	BlueLine   = lipgloss.Color("#003DA5")
	GreenLine  = lipgloss.Color("#00843D")
	SilverLine = lipgloss.Color("#7C878E")
)

// Icons.
const (
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
	Arrow   = "→"
)

// LineColor returns the color of the line a route belongs to, matched on its
// display name. Unknown routes use Slate.
func LineColor(route string) lipgloss.Color {
	switch name := strings.ToLower(route); {
	case strings.HasPrefix(name, "red"), strings.HasPrefix(name, "mattapan"):
		return RedLine
	case strings.HasPrefix(name, "orange"):
		return OrangeLine
	case strings.HasPrefix(name, "blue"):
		return BlueLine
	case strings.HasPrefix(name, "green"):
		return GreenLine
	case strings.HasPrefix(name, "silver"):
		return SilverLine
	default:
		return Slate
	}
}
