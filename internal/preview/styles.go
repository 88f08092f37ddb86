package preview

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - frame, title
	StarColor    = lipgloss.Color("#43BF6D") // Green - star tracks in the legend
	MutedColor   = lipgloss.Color("#626262") // Gray - legend labels, grid lines
	TextColor    = lipgloss.Color("#FFFFFF") // White - title text
)

var (
	// FrameStyle wraps the drawn grid.
	FrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PrimaryColor)

	// TitleStyle is for the document name above the frame.
	TitleStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(PrimaryColor).
			Bold(true).
			Padding(0, 1)

	// LegendLabelStyle is for "rows" / "columns" in the legend.
	LegendLabelStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				Width(9)

	// TrackStyle is for auto and fixed tracks in the legend.
	TrackStyle = lipgloss.NewStyle()

	// StarTrackStyle highlights star tracks in the legend.
	StarTrackStyle = lipgloss.NewStyle().
			Foreground(StarColor).
			Bold(true)
)
