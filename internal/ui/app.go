package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lumipallolabs/weightmap/internal/logging"
	"github.com/lumipallolabs/weightmap/internal/model"
	"github.com/lumipallolabs/weightmap/internal/scanner"
	"github.com/lumipallolabs/weightmap/internal/stats"
)

// loadStartMsg triggers the actual load (after the UI has rendered once)
type loadStartMsg struct{}

// loadCompleteMsg is sent when the data source finishes loading
type loadCompleteMsg struct {
	root *model.Tree
	err  error
}

// spinnerTickMsg drives the spinner animation and progress refresh
type spinnerTickMsg struct{}

// Spinner frames
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerTickInterval = 80 * time.Millisecond

// headerHeight + footerHeight rows are reserved around the treemap
const (
	headerHeight = 1
	footerHeight = 1
)

// Options configures the application
type Options struct {
	// Title names the data source in the header
	Title string
	// Load builds the tree; called once from the event loop
	Load func(ctx context.Context) (*model.Tree, error)
	// Scanner, when non-nil, supplies progress counters during Load
	Scanner scanner.Scanner
	// FSRoot is the scanned path for filesystem sources; enables MIME
	// detection for selected files
	FSRoot string
	// Format prints weights (bytes for filesystems, counts for people)
	Format func(int64) string
	// Stats, when non-nil, accumulates trimmed weight across sessions
	Stats *stats.Manager
}

// App is the main application model
type App struct {
	header  Header
	treemap TreemapPanel
	keys    KeyMap
	opts    Options

	root           *model.Tree
	loading        bool
	spinnerFrame   int
	err            error
	trimmedSession int64
	footerInfo     string

	width  int
	height int
}

// NewApp creates a new application instance
func NewApp(opts Options) App {
	if opts.Format == nil {
		opts.Format = FormatSize
	}
	app := App{
		header:  NewHeader(opts.Title, opts.Format),
		treemap: NewTreemapPanel(opts.Format),
		keys:    DefaultKeyMap(),
		opts:    opts,
		loading: true,
	}
	if opts.Stats != nil {
		app.header.SetTrimmed(0, opts.Stats.TrimmedLifetime())
	}
	app.header.SetLoading(true, "")
	return app
}

// Init implements tea.Model
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("WEIGHTMAP"),
		func() tea.Msg { return loadStartMsg{} },
	)
}

// load runs the source loader and reports the result
func (a App) load() tea.Cmd {
	return func() tea.Msg {
		logging.Debug.Debugf("loading source %q", a.opts.Title)
		root, err := a.opts.Load(context.Background())
		logging.Debug.Debugf("load finished (err=%v)", err)
		return loadCompleteMsg{root: root, err: err}
	}
}

func tickSpinner() tea.Cmd {
	return tea.Tick(spinnerTickInterval, func(time.Time) tea.Msg {
		return spinnerTickMsg{}
	})
}

// Update implements tea.Model
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.header.SetWidth(msg.Width)
		a.treemap.SetSize(msg.Width, max(msg.Height-headerHeight-footerHeight, 0))
		return a, nil

	case loadStartMsg:
		return a, tea.Batch(a.load(), tickSpinner())

	case spinnerTickMsg:
		if !a.loading {
			return a, nil
		}
		a.spinnerFrame = (a.spinnerFrame + 1) % len(spinnerFrames)
		a.header.SetLoading(true, a.progressText())
		return a, tickSpinner()

	case loadCompleteMsg:
		a.loading = false
		a.header.SetLoading(false, "")
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		a.root = msg.root
		a.treemap.SetRoot(a.root)
		a.header.SetTotal(a.root.Weight)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.MouseMsg:
		return a.handleMouse(msg)
	}

	return a, nil
}

// progressText formats the scanner's counters for the header
func (a App) progressText() string {
	if a.opts.Scanner == nil {
		return "Loading..."
	}
	p := a.opts.Scanner.Progress()
	return fmt.Sprintf("%d files, %s", p.FilesScanned, FormatSize(p.BytesFound))
}

// handleKey dispatches keyboard input
func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.Quit) {
		if a.opts.Stats != nil {
			_ = a.opts.Stats.Close()
		}
		return a, tea.Quit
	}
	if a.loading || a.root == nil {
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.Up):
		a.treemap.MoveSelection(0, -1)
	case key.Matches(msg, a.keys.Down):
		a.treemap.MoveSelection(0, 1)
	case key.Matches(msg, a.keys.Left):
		a.treemap.MoveSelection(-1, 0)
	case key.Matches(msg, a.keys.Right):
		a.treemap.MoveSelection(1, 0)
	case key.Matches(msg, a.keys.Delete):
		a.deleteLeaf(a.treemap.Selected())
	case key.Matches(msg, a.keys.Grow):
		a.resizeSelected(model.Increase)
	case key.Matches(msg, a.keys.Shrink):
		a.resizeSelected(model.Decrease)
	case key.Matches(msg, a.keys.Clear):
		a.treemap.ClearSelection()
	}

	a.refreshFooter()
	return a, nil
}

// handleMouse implements the click bindings: left selects or deselects,
// right deletes
func (a App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if a.loading || a.root == nil || msg.Action != tea.MouseActionRelease {
		return a, nil
	}

	// Translate terminal coordinates into the treemap's grid
	x, y := msg.X, msg.Y-headerHeight

	switch msg.Button {
	case tea.MouseButtonLeft:
		a.treemap.SelectAt(x, y)
	case tea.MouseButtonRight:
		a.deleteLeaf(a.treemap.LeafAt(x, y))
	}

	a.refreshFooter()
	return a, nil
}

// deleteLeaf removes the leaf's weight from the tree and regenerates the
// layout so tiles and leaves stay in lockstep
func (a *App) deleteLeaf(leaf *model.Tree) {
	if leaf == nil || leaf.IsEmpty() || len(leaf.Children) > 0 {
		return
	}
	weight := leaf.Weight
	logging.Debug.Debugf("delete %q (weight %d)", leaf.Path(), weight)

	leaf.Delete()
	a.trimmedSession += weight
	if a.opts.Stats != nil {
		a.opts.Stats.AddTrimmed(weight)
	}

	a.treemap.ClearSelection()
	a.treemap.Relayout()
	a.header.SetTotal(a.root.Weight)
	allTime := a.trimmedSession
	if a.opts.Stats != nil {
		allTime = a.opts.Stats.TrimmedLifetime()
	}
	a.header.SetTrimmed(a.trimmedSession, allTime)
}

// resizeSelected grows or shrinks the selected leaf by 1% and relayouts
func (a *App) resizeSelected(d model.Direction) {
	leaf := a.treemap.Selected()
	if leaf == nil || len(leaf.Children) > 0 {
		return
	}
	leaf.ChangeSize(d)
	a.treemap.Relayout()
	a.header.SetTotal(a.root.Weight)
}

// refreshFooter rebuilds the footer text for the current selection
func (a *App) refreshFooter() {
	leaf := a.treemap.Selected()
	if leaf == nil {
		a.footerInfo = ""
		return
	}

	info := fmt.Sprintf("%s  (%s)", leaf.Path(), a.opts.Format(leaf.Weight))
	if a.opts.FSRoot != "" {
		if mime := detectMime(leafFilePath(a.opts.FSRoot, leaf)); mime != "" {
			info += "  " + mime
		}
	}
	a.footerInfo = info
}

// View implements tea.Model
func (a App) View() string {
	if a.err != nil {
		return ErrorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", a.err))
	}

	header := a.header.View()

	if a.loading {
		spinner := SpinnerStyle.Render(spinnerFrames[a.spinnerFrame]) +
			StatsStyle.Render(" Loading "+a.opts.Title+"...")
		body := lipgloss.Place(a.width, max(a.height-headerHeight, 1),
			lipgloss.Center, lipgloss.Center, spinner)
		return header + "\n" + body
	}

	footer := a.footerView()
	return header + "\n" + a.treemap.View() + "\n" + footer
}

// footerView shows the selection info on the left and key help on the
// right
func (a App) footerView() string {
	help := "←↑↓→ select · x delete · +/- resize · q quit"
	left := a.footerInfo
	if left == "" {
		left = "click or arrow-select a tile"
	}

	leftR := PathStyle.Render(left)
	rightR := FooterStyle.Render(help)
	gap := a.width - lipgloss.Width(leftR) - lipgloss.Width(rightR) - 1
	if gap < 1 {
		return leftR
	}
	return leftR + strings.Repeat(" ", gap) + rightR
}
