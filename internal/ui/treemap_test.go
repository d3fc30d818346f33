package ui

import (
	"testing"

	"github.com/lumipallolabs/weightmap/internal/model"
)

func fixedColors(t *testing.T) {
	prev := model.SetColorProvider(func() model.Color { return model.Color{R: 40, G: 80, B: 120} })
	t.Cleanup(func() { model.SetColorProvider(prev) })
}

func buildTestTree() *model.Tree {
	a := model.New(model.FileSystem, "a", nil, 100)
	b := model.New(model.FileSystem, "b", nil, 100)
	c := model.New(model.FileSystem, "c", nil, 100)
	return model.New(model.FileSystem, "root", []*model.Tree{a, b, c}, 0)
}

func TestTreemapTilesWithinBounds(t *testing.T) {
	fixedColors(t)

	panel := NewTreemapPanel(FormatSize)
	panel.SetSize(80, 24)
	panel.SetRoot(buildTestTree())

	if len(panel.tiles) != 3 {
		t.Fatalf("expected 3 tiles, got %d", len(panel.tiles))
	}

	total := 0
	for i, tile := range panel.tiles {
		r := tile.Rect
		if r.X < 0 || r.Y < 0 {
			t.Errorf("tile[%d] has negative origin: %+v", i, r)
		}
		if r.X+r.Width > 80 || r.Y+r.Height > 24 {
			t.Errorf("tile[%d] exceeds bounds: %+v", i, r)
		}
		total += r.Area()
	}
	if total != 80*24 {
		t.Errorf("tiles cover %d cells, want %d", total, 80*24)
	}
}

func TestTreemapSelectAtToggles(t *testing.T) {
	fixedColors(t)

	panel := NewTreemapPanel(FormatSize)
	panel.SetSize(90, 30)
	panel.SetRoot(buildTestTree())

	leaf := panel.SelectAt(5, 5)
	if leaf == nil || panel.Selected() != leaf {
		t.Fatal("expected click to select the leaf under the point")
	}

	// Clicking the same leaf again deselects
	panel.SelectAt(5, 5)
	if panel.Selected() != nil {
		t.Error("expected second click to deselect")
	}

	// A miss changes nothing
	panel.SelectAt(5, 5)
	panel.SelectAt(5000, 5000)
	if panel.Selected() == nil {
		t.Error("expected miss to keep selection")
	}
}

func TestTreemapMoveSelection(t *testing.T) {
	fixedColors(t)

	panel := NewTreemapPanel(FormatSize)
	// Wide panel: three equal children side by side
	panel.SetSize(90, 10)
	panel.SetRoot(buildTestTree())

	// First move selects the first tile
	panel.MoveSelection(1, 0)
	if panel.Selected() == nil || panel.Selected().Label != "a" {
		t.Fatalf("expected first tile selected, got %v", panel.Selected())
	}

	panel.MoveSelection(1, 0)
	if panel.Selected().Label != "b" {
		t.Errorf("expected b after moving right, got %q", panel.Selected().Label)
	}

	panel.MoveSelection(-1, 0)
	if panel.Selected().Label != "a" {
		t.Errorf("expected a after moving left, got %q", panel.Selected().Label)
	}

	// No tile further left; selection stays put
	panel.MoveSelection(-1, 0)
	if panel.Selected().Label != "a" {
		t.Errorf("expected selection to stay on a, got %q", panel.Selected().Label)
	}
}

func TestTreemapRelayoutAfterDelete(t *testing.T) {
	fixedColors(t)

	root := buildTestTree()
	panel := NewTreemapPanel(FormatSize)
	panel.SetSize(90, 10)
	panel.SetRoot(root)

	leaf := panel.SelectAt(5, 5)
	if leaf == nil {
		t.Fatal("expected a leaf under the click")
	}

	leaf.Delete()
	panel.ClearSelection()
	panel.Relayout()

	if len(panel.tiles) != 2 {
		t.Fatalf("expected 2 tiles after delete, got %d", len(panel.tiles))
	}
	// Remaining tiles still cover the panel exactly
	total := 0
	for _, tile := range panel.tiles {
		total += tile.Rect.Area()
	}
	if total != 90*10 {
		t.Errorf("tiles cover %d cells, want %d", total, 90*10)
	}
	// The deleted leaf is no longer addressable
	for _, tile := range panel.tiles {
		if tile.Leaf == leaf {
			t.Error("deleted leaf still owns a tile")
		}
	}
}

func TestTreemapViewDimensions(t *testing.T) {
	fixedColors(t)

	panel := NewTreemapPanel(FormatSize)
	panel.SetSize(40, 6)
	panel.SetRoot(buildTestTree())

	view := panel.View()
	lines := 1
	for _, ch := range view {
		if ch == '\n' {
			lines++
		}
	}
	if lines != 6 {
		t.Errorf("expected 6 rendered lines, got %d", lines)
	}
}
