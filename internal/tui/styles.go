package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
//
//nolint:gochecknoglobals // Shared palette referenced by every view.
var (
	ColorHeader    = lipgloss.AdaptiveColor{Light: "#1F4E79", Dark: "#7AB8FF"}
	ColorLabel     = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#A0A0A0"}
	ColorValue     = lipgloss.AdaptiveColor{Light: "#111111", Dark: "#EEEEEE"}
	ColorMuted     = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"}
	ColorBorder    = lipgloss.AdaptiveColor{Light: "#B0B0B0", Dark: "#4A4A4A"}
	ColorHighlight = lipgloss.AdaptiveColor{Light: "#E8F0FE", Dark: "#2A3A55"}
	ColorOK        = lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#81C784"}
	ColorWarning   = lipgloss.AdaptiveColor{Light: "#B26A00", Dark: "#FFB74D"}
	ColorCritical  = lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#EF5350"}
	ColorSpinner   = lipgloss.AdaptiveColor{Light: "#6A1B9A", Dark: "#CE93D8"}
)

// Text and container styles.
//
//nolint:gochecknoglobals // Shared styles referenced by every view.
var (
	HeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	LabelStyle    = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle    = lipgloss.NewStyle().Foreground(ColorValue)
	SubtleStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	OKStyle       = lipgloss.NewStyle().Foreground(ColorOK)
	WarningStyle  = lipgloss.NewStyle().Foreground(ColorWarning)
	CriticalStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorCritical)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorValue).
			Background(ColorHighlight)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	TableHeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader).Underline(true)
	TableSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorValue).Background(ColorHighlight)
)
