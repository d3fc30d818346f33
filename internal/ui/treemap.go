package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lumipallolabs/weightmap/internal/layout"
	"github.com/lumipallolabs/weightmap/internal/model"
)

// TreemapPanel displays a weighted tree as a treemap and tracks the
// selected leaf. Selection and hit-testing rely on tiles and leaves
// staying in lockstep, so every mutation must go through Relayout before
// the next lookup.
type TreemapPanel struct {
	root     *model.Tree
	tiles    []layout.Tile
	leaves   []*model.Tree
	selected *model.Tree
	format   func(int64) string
	width    int
	height   int
}

// NewTreemapPanel creates a treemap panel using format to print weights
func NewTreemapPanel(format func(int64) string) TreemapPanel {
	if format == nil {
		format = FormatSize
	}
	return TreemapPanel{format: format}
}

// SetRoot sets the tree to display
func (t *TreemapPanel) SetRoot(root *model.Tree) {
	t.root = root
	t.selected = nil
	t.Relayout()
}

// SetSize sets the panel dimensions
func (t *TreemapPanel) SetSize(w, h int) {
	if t.width != w || t.height != h {
		t.width = w
		t.height = h
		t.Relayout()
	}
}

// Relayout regenerates tiles and the matching leaf sequence from the
// current tree state
func (t *TreemapPanel) Relayout() {
	t.tiles = nil
	t.leaves = nil
	if t.root == nil || t.width < 1 || t.height < 1 {
		return
	}
	t.tiles = layout.Generate(t.root, layout.Rect{X: 0, Y: 0, Width: t.width, Height: t.height})
	t.leaves = t.root.Leaves()
	if t.selected != nil && !t.contains(t.selected) {
		t.selected = nil
	}
}

// contains reports whether leaf is still in the visible leaf sequence
func (t *TreemapPanel) contains(leaf *model.Tree) bool {
	for _, l := range t.leaves {
		if l == leaf {
			return true
		}
	}
	return false
}

// Selected returns the currently selected leaf, or nil
func (t *TreemapPanel) Selected() *model.Tree {
	return t.selected
}

// ClearSelection drops the current selection
func (t *TreemapPanel) ClearSelection() {
	t.selected = nil
}

// SelectAt selects the leaf under the given panel coordinates, or
// deselects when the same leaf is clicked again. Returns the leaf under
// the point, nil when the point hits no tile.
func (t *TreemapPanel) SelectAt(x, y int) *model.Tree {
	if t.root == nil {
		return nil
	}
	leaf := layout.LeafAt(t.root, x, y, t.tiles)
	if leaf == nil {
		return nil
	}
	if leaf == t.selected {
		t.selected = nil
	} else {
		t.selected = leaf
	}
	return leaf
}

// LeafAt returns the leaf under the given panel coordinates without
// changing the selection
func (t *TreemapPanel) LeafAt(x, y int) *model.Tree {
	if t.root == nil {
		return nil
	}
	return layout.LeafAt(t.root, x, y, t.tiles)
}

// tileIndex returns the tile index of the given leaf, or -1
func (t *TreemapPanel) tileIndex(leaf *model.Tree) int {
	for i, l := range t.leaves {
		if l == leaf {
			return i
		}
	}
	return -1
}

// MoveSelection moves the selection to the nearest tile in the requested
// direction, judged by tile centers. With no current selection the first
// tile is selected.
func (t *TreemapPanel) MoveSelection(dx, dy int) {
	if len(t.tiles) == 0 {
		return
	}

	current := -1
	if t.selected != nil {
		current = t.tileIndex(t.selected)
	}
	if current < 0 {
		t.selected = t.leaves[0]
		return
	}

	cur := t.tiles[current].Rect
	cx := cur.X + cur.Width/2
	cy := cur.Y + cur.Height/2

	best := -1
	bestDist := -1
	for i := range t.tiles {
		if i == current {
			continue
		}
		r := t.tiles[i].Rect
		bx := r.X + r.Width/2
		by := r.Y + r.Height/2

		if dx > 0 && bx <= cx {
			continue
		}
		if dx < 0 && bx >= cx {
			continue
		}
		if dy > 0 && by <= cy {
			continue
		}
		if dy < 0 && by >= cy {
			continue
		}

		dist := abs(bx-cx) + abs(by-cy)
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			best = i
		}
	}

	if best >= 0 {
		t.selected = t.leaves[best]
	}
}

// View renders the treemap grid
func (t *TreemapPanel) View() string {
	if t.width < 1 || t.height < 1 {
		return ""
	}

	grid := make([][]rune, t.height)
	styles := make([][]lipgloss.Style, t.height)
	for y := range grid {
		grid[y] = make([]rune, t.width)
		styles[y] = make([]lipgloss.Style, t.width)
		for x := range grid[y] {
			grid[y][x] = ' '
			styles[y][x] = lipgloss.NewStyle()
		}
	}

	for _, tile := range t.tiles {
		t.drawTile(grid, styles, tile, tile.Leaf == t.selected && t.selected != nil)
	}

	lines := make([]string, t.height)
	for y := 0; y < t.height; y++ {
		var line strings.Builder
		for x := 0; x < t.width; x++ {
			line.WriteString(styles[y][x].Render(string(grid[y][x])))
		}
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}

// drawTile fills one tile's cells and draws its label when it fits
func (t *TreemapPanel) drawTile(grid [][]rune, styles [][]lipgloss.Style, tile layout.Tile, selected bool) {
	r := tile.Rect
	if r.Width < 1 || r.Height < 1 {
		return
	}

	style := tileStyle(tile.Color)
	if selected {
		style = lipgloss.NewStyle().
			Background(ColorPrimary).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true)
	}

	for y := r.Y; y < r.Y+r.Height && y < t.height; y++ {
		for x := r.X; x < r.X+r.Width && x < t.width; x++ {
			if y >= 0 && x >= 0 {
				grid[y][x] = ' '
				styles[y][x] = style
			}
		}
	}

	if tile.Leaf == nil || r.Width <= 4 || r.Height <= 1 {
		return
	}

	label := tile.Leaf.Label
	maxLen := r.Width - 2
	if len(label) > maxLen {
		label = label[:maxLen]
	}
	labelY := r.Y
	if r.Height > 2 {
		labelY = r.Y + 1
	}
	t.drawText(grid, styles, label, r.X+1, labelY, r.X+r.Width-1, style)

	// Weight on the next line when there is room
	if r.Height > 3 {
		t.drawText(grid, styles, t.format(tile.Leaf.Weight), r.X+1, labelY+1, r.X+r.Width-1, style)
	}
}

// drawText writes s at (x, y), clipped to maxX and the grid
func (t *TreemapPanel) drawText(grid [][]rune, styles [][]lipgloss.Style, s string, x, y, maxX int, style lipgloss.Style) {
	if y < 0 || y >= t.height {
		return
	}
	for i, ch := range s {
		cx := x + i
		if cx >= maxX || cx >= t.width {
			return
		}
		if cx >= 0 {
			grid[y][cx] = ch
			styles[y][cx] = style
		}
	}
}

// abs returns the absolute value of x
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
