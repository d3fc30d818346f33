package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Header displays the app name, the data source and aggregate stats
type Header struct {
	title          string
	format         func(int64) string
	width          int
	total          int64
	trimmedSession int64
	trimmedAllTime int64
	loading        bool
	progress       string
}

// NewHeader creates a header for the given source title
func NewHeader(title string, format func(int64) string) Header {
	if format == nil {
		format = FormatSize
	}
	return Header{title: title, format: format}
}

// SetWidth sets the header width
func (h *Header) SetWidth(w int) {
	h.width = w
}

// SetTotal sets the tree's total weight
func (h *Header) SetTotal(total int64) {
	h.total = total
}

// SetTrimmed sets the trimmed-weight counters
func (h *Header) SetTrimmed(session, allTime int64) {
	h.trimmedSession = session
	h.trimmedAllTime = allTime
}

// SetLoading sets the loading state and its progress text
func (h *Header) SetLoading(loading bool, progress string) {
	h.loading = loading
	h.progress = progress
}

// View renders the header line
func (h Header) View() string {
	name := TitleStyle.Render("WEIGHTMAP")
	source := StatsStyle.Render(h.title)
	sep := lipgloss.NewStyle().Foreground(ColorBorder).Render(" │ ")

	var right string
	switch {
	case h.loading:
		right = StatsStyle.Render(h.progress)
	default:
		right = StatsStyle.Render(fmt.Sprintf("Total: %s", h.format(h.total)))
		if h.trimmedSession > 0 || h.trimmedAllTime > 0 {
			right += sep + lipgloss.NewStyle().Foreground(ColorMuted).Render(
				fmt.Sprintf("Trimmed: %s session | %s total",
					h.format(h.trimmedSession), h.format(h.trimmedAllTime)))
		}
	}

	left := name + sep + source
	gap := h.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return HeaderStyle.MaxHeight(1).Render(left + strings.Repeat(" ", gap) + right)
}
