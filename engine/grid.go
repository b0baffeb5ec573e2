package engine

// Grid is the static occupancy map of a level. Cells are addressed by column
// i (left to right) and row j (top to bottom). Figures are never stored here.
type Grid struct {
	width  int
	height int
	cells  []Matter
}

func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Matter, width*height),
	}
}

func (g *Grid) Width() int {
	if g == nil {
		return 0
	}
	return g.width
}

func (g *Grid) Height() int {
	if g == nil {
		return 0
	}
	return g.height
}

// Contains reports whether (i, j) addresses a cell.
func (g *Grid) Contains(i, j int) bool {
	return g != nil && i >= 0 && j >= 0 && i < g.width && j < g.height
}

// At returns the occupant of a cell, or nil for empty or out-of-range cells.
func (g *Grid) At(i, j int) Matter {
	if !g.Contains(i, j) {
		return nil
	}
	return g.cells[i*g.height+j]
}

// Set stores m in a cell, replacing any previous occupant.
func (g *Grid) Set(i, j int, m Matter) bool {
	if !g.Contains(i, j) {
		return false
	}
	g.cells[i*g.height+j] = m
	return true
}

// Clear empties every cell.
func (g *Grid) Clear() {
	if g == nil {
		return
	}
	clear(g.cells)
}

// Blocked reports whether any occupant in columns [is, ie] and rows [js, je]
// obstructs every direction in mask. Columns outside the grid always block;
// rows outside the grid never do. Items met during the scan are passed to
// trigger, each at most once per call, when the query comes from below or
// the item itself does not block.
func (g *Grid) Blocked(is, ie, js, je int, mask Blocking, trigger func(Item)) bool {
	if g == nil {
		return false
	}
	if is < 0 || ie >= g.width {
		return true
	}
	if js < 0 || je >= g.height {
		return false
	}

	blocked := false
	var seen []Item
	for i := is; i <= ie; i++ {
		for j := je; j >= js; j-- {
			m := g.cells[i*g.height+j]
			if m == nil {
				continue
			}
			s := m.Matter()
			if it, ok := m.(Item); ok && trigger != nil && (mask == BlockBottom || s.Blocking == BlockNone) {
				if !containsItem(seen, it) {
					seen = append(seen, it)
					trigger(it)
				}
			}
			if s.Blocking.Blocks(mask) {
				blocked = true
			}
		}
	}
	return blocked
}

func containsItem(items []Item, it Item) bool {
	for _, v := range items {
		if v == it {
			return true
		}
	}
	return false
}
