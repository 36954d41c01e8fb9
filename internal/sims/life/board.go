package life

import (
	"slices"
	"sort"

	"listlife/internal/core"
)

// row holds the alive column indices of one board row in ascending order.
type row struct {
	y    int
	cols []int
}

// Board stores the alive-cell set sparsely: rows in strictly ascending y
// order, each carrying its alive columns in strictly ascending x order. Rows
// with no alive cells are never present. Callers are trusted to keep cells
// unique; Board performs no validation.
type Board struct {
	rows []row
}

// rowIndex locates the row with coordinate y. It returns the row's position,
// or the insertion position and false when the row is absent.
func (b *Board) rowIndex(y int) (int, bool) {
	i := sort.Search(len(b.rows), func(i int) bool { return b.rows[i].y >= y })
	return i, i < len(b.rows) && b.rows[i].y == y
}

// Add inserts (x, y) at its sorted position, creating the row if needed. The
// cell must not already be present.
func (b *Board) Add(x, y int) {
	i, ok := b.rowIndex(y)
	if !ok {
		b.rows = slices.Insert(b.rows, i, row{y: y, cols: []int{x}})
		return
	}
	cols := b.rows[i].cols
	j := sort.SearchInts(cols, x)
	b.rows[i].cols = slices.Insert(cols, j, x)
}

// Remove deletes (x, y), dropping the row entry once it empties so that no
// empty row ever remains. Removing an absent cell is a no-op.
func (b *Board) Remove(x, y int) {
	i, ok := b.rowIndex(y)
	if !ok {
		return
	}
	cols := b.rows[i].cols
	j := sort.SearchInts(cols, x)
	if j >= len(cols) || cols[j] != x {
		return
	}
	if len(cols) == 1 {
		b.rows = slices.Delete(b.rows, i, i+1)
		return
	}
	b.rows[i].cols = slices.Delete(cols, j, j+1)
}

// Has reports whether (x, y) is alive. Point queries only; the generation
// sweep never calls this and uses its cursor-based neighbor scan instead.
func (b *Board) Has(x, y int) bool {
	for i := range b.rows {
		r := &b.rows[i]
		if r.y > y {
			return false
		}
		if r.y < y {
			continue
		}
		for _, cx := range r.cols {
			if cx > x {
				return false
			}
			if cx == x {
				return true
			}
		}
		return false
	}
	return false
}

// Len returns the number of alive cells.
func (b *Board) Len() int {
	n := 0
	for i := range b.rows {
		n += len(b.rows[i].cols)
	}
	return n
}

// Cells returns every alive cell in ascending (y, x) order.
func (b *Board) Cells() []core.Cell {
	out := make([]core.Cell, 0, b.Len())
	for i := range b.rows {
		r := &b.rows[i]
		for _, x := range r.cols {
			out = append(out, core.Cell{X: x, Y: r.y})
		}
	}
	return out
}

// countNeighbors returns how many of the 8 neighbors of cols[ci] in rows[ri]
// are alive, clearing the matching entries of the candidate array so that
// only genuinely dead neighbors remain marked. Candidate slots are ordered
// NW, N, NE, W, E, SW, S, SE: slots 0-2 come from the row above, 3-4 from the
// same row, 5-7 from the row below.
//
// top and bottom are resumable scan positions into the adjacent rows. The
// sweep visits cells in ascending column order, so both cursors only ever
// move forward within one row pass; they are advanced past columns below
// x-1, which no later cell of this row can need again.
func (b *Board) countNeighbors(ri, ci int, top, bottom *int, dead *[8]bool) int {
	r := &b.rows[ri]
	x := r.cols[ci]
	n := 0

	// The row list skips empty rows, so rows[ri-1] is only the geometric
	// neighbor when its coordinate is exactly y-1.
	if ri > 0 && b.rows[ri-1].y == r.y-1 {
		above := b.rows[ri-1].cols
		for *top < len(above) && above[*top] < x-1 {
			*top++
		}
		for j := *top; j < len(above) && above[j] <= x+1; j++ {
			n++
			dead[above[j]-x+1] = false
		}
	}

	// Same-row scan looks only for x-1 and x+1; the window is too short to
	// be worth a persisted cursor.
	for _, cx := range r.cols {
		if cx > x+1 {
			break
		}
		if cx == x-1 {
			n++
			dead[3] = false
		} else if cx == x+1 {
			n++
			dead[4] = false
		}
	}

	if ri+1 < len(b.rows) && b.rows[ri+1].y == r.y+1 {
		below := b.rows[ri+1].cols
		for *bottom < len(below) && below[*bottom] < x-1 {
			*bottom++
		}
		for j := *bottom; j < len(below) && below[j] <= x+1; j++ {
			n++
			dead[5+below[j]-x+1] = false
		}
	}

	return n
}
