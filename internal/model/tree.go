package model

// Variant selects the path separator for a tree's string representation
type Variant int

const (
	// FileSystem trees join path components with "/"
	FileSystem Variant = iota
	// Population trees join World -> region -> country with an arrow
	Population
)

// Separator returns the string placed between path components
func (v Variant) Separator() string {
	if v == Population {
		return " -> "
	}
	return "/"
}

// Direction selects whether ChangeSize grows or shrinks a leaf
type Direction int

const (
	Increase Direction = iota
	Decrease
)

// Tree is a node in a weighted hierarchy. A node with no children is a
// leaf. An internal node's Weight always equals the sum of its children's
// weights; mutations maintain this incrementally via the Parent chain.
//
// The empty tree (Label == "") has no children, no parent and weight 0.
// Deleting a leaf resets it to the empty state without removing it from
// its parent's Children, so Children may contain empty subtrees.
type Tree struct {
	Label    string
	Weight   int64 // bytes, population, or any additive quantity
	Children []*Tree
	Parent   *Tree
	Color    Color
	Variant  Variant
}

// New builds a tree node bottom-up. With children, weight is ignored and
// computed as the sum of the children's weights, and each child's Parent
// is set to the new node. Without children, weight is used as given.
// A color is drawn from the current color provider.
//
// Panics if label is empty but children is not: the empty tree has no
// structure, and violating that is a bug in the caller.
func New(variant Variant, label string, children []*Tree, weight int64) *Tree {
	if label == "" && len(children) > 0 {
		panic("model: empty tree cannot have children")
	}

	t := &Tree{
		Label:    label,
		Children: children,
		Color:    colorProvider(),
		Variant:  variant,
	}

	if len(children) == 0 {
		t.Weight = weight
		return t
	}

	for _, child := range children {
		t.Weight += child.Weight
		child.Parent = t
	}
	return t
}

// IsEmpty reports whether this is the empty tree
func (t *Tree) IsEmpty() bool {
	return t.Label == ""
}

// Leaves returns the leaves with positive weight, left to right, in the
// exact order the layout algorithm visits them. Zero-weight subtrees
// (including deleted leaves) contribute nothing, so the i-th leaf here
// owns the i-th layout tile.
func (t *Tree) Leaves() []*Tree {
	if t.Weight == 0 {
		return nil
	}
	if len(t.Children) == 0 {
		return []*Tree{t}
	}
	var leaves []*Tree
	for _, child := range t.Children {
		leaves = append(leaves, child.Leaves()...)
	}
	return leaves
}

// Path returns the labels from the root to this node joined by the
// variant's separator, or "" for the empty tree
func (t *Tree) Path() string {
	if t.IsEmpty() {
		return ""
	}
	if t.Parent == nil {
		return t.Label
	}
	return t.Parent.Path() + t.Variant.Separator() + t.Label
}

// Delete marks this leaf as empty and subtracts its weight from every
// ancestor. The node stays in its parent's Children slice. Deleting an
// already-empty leaf is a no-op. Panics on an internal node.
func (t *Tree) Delete() {
	if len(t.Children) > 0 {
		panic("model: Delete called on a non-leaf")
	}
	if t.IsEmpty() {
		return
	}

	weight := t.Weight
	t.Weight = 0
	t.Label = ""
	for p := t.Parent; p != nil; p = p.Parent {
		p.Weight -= weight
	}
}

// ChangeSize adjusts this leaf's weight by 1%, rounded up, and applies
// the same delta to every ancestor. The delta is computed from the
// weight before the change. A decrease that would bring the weight to
// zero or below is a silent no-op; weight 0 is reserved for deleted
// leaves. Panics on an internal node.
func (t *Tree) ChangeSize(d Direction) {
	if len(t.Children) > 0 {
		panic("model: ChangeSize called on a non-leaf")
	}

	delta := (t.Weight + 99) / 100 // ceil(weight / 100)
	if d == Decrease {
		if t.Weight-delta <= 0 {
			return
		}
		delta = -delta
	}

	t.Weight += delta
	for p := t.Parent; p != nil; p = p.Parent {
		p.Weight += delta
	}
}
