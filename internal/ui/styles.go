package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lumipallolabs/weightmap/internal/model"
)

// Colors
var (
	ColorPrimary = lipgloss.Color("#7D56F4")
	ColorMuted   = lipgloss.Color("#6B7280")
	ColorBorder  = lipgloss.Color("#3F3F46")
	ColorDanger  = lipgloss.Color("#F56565")
)

// Styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F1F23")).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#C084FC")).
			Bold(true)

	StatsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E4E4E7"))

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	PathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E4E4E7")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger).
			Padding(1, 2)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)
)

// tileStyle returns the cell style for a tile of the given node color.
// Text goes black on light fills and white on dark ones.
func tileStyle(c model.Color) lipgloss.Style {
	col := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	fg := "#FFFFFF"
	if _, _, l := col.Hsl(); l > 0.5 {
		fg = "#000000"
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(col.Hex())).
		Foreground(lipgloss.Color(fg))
}

// FormatSize formats bytes to a human readable string
func FormatSize(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
		TB = GB * 1024
	)

	switch {
	case bytes >= TB:
		return fmt.Sprintf("%.1fTB", float64(bytes)/TB)
	case bytes >= GB:
		return fmt.Sprintf("%.1fGB", float64(bytes)/GB)
	case bytes >= MB:
		return fmt.Sprintf("%.1fMB", float64(bytes)/MB)
	case bytes >= KB:
		return fmt.Sprintf("%.1fKB", float64(bytes)/KB)
	default:
		return fmt.Sprintf("%dB", bytes)
	}
}

// FormatCount formats a population-style count to a human readable string
func FormatCount(n int64) string {
	const (
		K = 1000
		M = K * 1000
		B = M * 1000
	)

	switch {
	case n >= B:
		return fmt.Sprintf("%.2fB", float64(n)/B)
	case n >= M:
		return fmt.Sprintf("%.1fM", float64(n)/M)
	case n >= K:
		return fmt.Sprintf("%.1fK", float64(n)/K)
	default:
		return fmt.Sprintf("%d", n)
	}
}
