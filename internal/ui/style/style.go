// Package style holds the palette, icons and diff styles shared by the log
// handler and the check command.
package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette.
var (
	Accent  = lipgloss.Color("#8B5CF6")
	Muted   = lipgloss.Color("#667085")
	Success = lipgloss.Color("#22A06B")
	Danger  = lipgloss.Color("#D93025")
	Caution = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
)

// Diff styles the lines of a unified diff.
type Diff struct {
	Header  lipgloss.Style
	Added   lipgloss.Style
	Removed lipgloss.Style
	Hunk    lipgloss.Style
}

// NewDiff builds diff styles bound to r.
// Tabs are kept as is so diffed content is not altered.
func NewDiff(r *lipgloss.Renderer) Diff {
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	return Diff{
		Header:  base.Foreground(Muted),
		Added:   base.Foreground(Success),
		Removed: base.Foreground(Danger),
		Hunk:    base.Foreground(Accent),
	}
}

// Line returns the style for a single diff line and whether it is styled at all.
func (d Diff) Line(line string) (lipgloss.Style, bool) {
	switch {
	case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		return d.Header, true
	case strings.HasPrefix(line, "+"):
		return d.Added, true
	case strings.HasPrefix(line, "-"):
		return d.Removed, true
	case strings.HasPrefix(line, "@@"):
		return d.Hunk, true
	}
	return lipgloss.Style{}, false
}
