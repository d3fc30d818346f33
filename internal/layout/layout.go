// Package layout turns a weighted tree into a treemap: an ordered list of
// rectangles tiling a target rectangle, one per positive-weight leaf, each
// strip proportional to its subtree's share of the total weight.
package layout

import "github.com/lumipallolabs/weightmap/internal/model"

// Rect is an axis-aligned rectangle in cell coordinates
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the point lies inside the rectangle,
// boundaries included
func (r Rect) Contains(x, y int) bool {
	return r.X <= x && x <= r.X+r.Width && r.Y <= y && y <= r.Y+r.Height
}

// Area returns the rectangle's area in cells
func (r Rect) Area() int {
	return r.Width * r.Height
}

// Tile pairs a rectangle with the leaf that owns it
type Tile struct {
	Rect  Rect
	Color model.Color
	Leaf  *model.Tree
}

// Generate partitions rect among the leaves of tree, slicing each level
// along its longer axis (a square slices vertically). Every child but the
// last gets floor(weight/total * extent); the last child takes whatever
// extent is left, so repeated flooring never opens a gap between strips.
// The last strip absorbing the rounding slack is deliberate.
//
// Zero-weight subtrees produce no tiles. Tiles come back in the same
// order as tree.Leaves(). A zero-size rect is legal and yields zero-size
// tiles.
func Generate(tree *model.Tree, rect Rect) []Tile {
	if tree.Weight == 0 {
		return nil
	}
	if len(tree.Children) == 0 {
		return []Tile{{Rect: rect, Color: tree.Color, Leaf: tree}}
	}

	var tiles []Tile
	x, y := rect.X, rect.Y
	wLeft, hLeft := rect.Width, rect.Height
	horizontal := rect.Width > rect.Height

	for i, child := range tree.Children {
		extent := int(float64(child.Weight) / float64(tree.Weight) * float64(max(rect.Width, rect.Height)))
		last := i == len(tree.Children)-1

		var sub Rect
		if horizontal {
			if last {
				sub = Rect{X: x, Y: rect.Y, Width: wLeft, Height: rect.Height}
			} else {
				sub = Rect{X: x, Y: rect.Y, Width: extent, Height: rect.Height}
			}
			x += extent
			wLeft -= extent
		} else {
			if last {
				sub = Rect{X: rect.X, Y: y, Width: rect.Width, Height: hLeft}
			} else {
				sub = Rect{X: rect.X, Y: y, Width: rect.Width, Height: extent}
			}
			y += extent
			hLeft -= extent
		}

		tiles = append(tiles, Generate(child, sub)...)
	}
	return tiles
}

// LeafAt returns the leaf whose tile contains the point, pairing the i-th
// leaf of tree with the i-th tile positionally. tiles must be the output
// of Generate for the current state of tree; any mutation since then
// invalidates the pairing and the caller must regenerate first. Returns
// nil when no tile contains the point or the layout is empty.
func LeafAt(tree *model.Tree, x, y int, tiles []Tile) *model.Tree {
	leaves := tree.Leaves()
	n := min(len(leaves), len(tiles))
	for i := 0; i < n; i++ {
		if tiles[i].Rect.Contains(x, y) {
			return leaves[i]
		}
	}
	return nil
}
