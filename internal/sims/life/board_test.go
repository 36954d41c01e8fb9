package life

import (
	"testing"

	"listlife/internal/core"
)

func checkInvariants(t *testing.T, b *Board) {
	t.Helper()
	for i := range b.rows {
		r := &b.rows[i]
		if len(r.cols) == 0 {
			t.Fatalf("row %d is empty but still present", r.y)
		}
		if i > 0 && b.rows[i-1].y >= r.y {
			t.Fatalf("rows out of order: %d before %d", b.rows[i-1].y, r.y)
		}
		for j := 1; j < len(r.cols); j++ {
			if r.cols[j-1] >= r.cols[j] {
				t.Fatalf("row %d columns out of order: %d before %d", r.y, r.cols[j-1], r.cols[j])
			}
		}
	}
}

func TestBoardAddKeepsOrder(t *testing.T) {
	cells := make([]core.Cell, 0, 200)
	for y := -5; y < 5; y++ {
		for x := -10; x < 10; x++ {
			cells = append(cells, core.Cell{X: x, Y: y})
		}
	}
	rng := core.NewRNG(7).Source()
	rng.Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })

	var b Board
	for _, c := range cells {
		b.Add(c.X, c.Y)
		checkInvariants(t, &b)
	}
	if b.Len() != len(cells) {
		t.Fatalf("Len() = %d after %d inserts", b.Len(), len(cells))
	}
	for _, c := range cells {
		if !b.Has(c.X, c.Y) {
			t.Fatalf("cell (%d,%d) missing after insert", c.X, c.Y)
		}
	}
}

func TestBoardRemoveDropsEmptyRows(t *testing.T) {
	var b Board
	b.Add(3, 1)
	b.Add(5, 1)
	b.Add(4, 2)

	b.Remove(4, 2)
	checkInvariants(t, &b)
	if b.Has(4, 2) {
		t.Fatal("removed cell still reported alive")
	}
	if len(b.rows) != 1 {
		t.Fatalf("expected emptied row to be dropped, have %d rows", len(b.rows))
	}

	b.Remove(3, 1)
	b.Remove(5, 1)
	checkInvariants(t, &b)
	if len(b.rows) != 0 || b.Len() != 0 {
		t.Fatalf("board not empty after removing every cell: %d rows, Len()=%d", len(b.rows), b.Len())
	}
}

func TestBoardRemoveAbsentIsNoOp(t *testing.T) {
	var b Board
	b.Add(2, 2)

	b.Remove(9, 9)
	b.Remove(9, 2)
	b.Remove(2, 9)
	checkInvariants(t, &b)

	if !b.Has(2, 2) || b.Len() != 1 {
		t.Fatal("removing absent cells must leave the board untouched")
	}
}

func TestBoardAddRemoveShuffled(t *testing.T) {
	rng := core.NewRNG(99).Source()
	present := map[core.Cell]bool{}
	var b Board

	for i := 0; i < 500; i++ {
		c := core.Cell{X: rng.IntN(40) - 20, Y: rng.IntN(40) - 20}
		if present[c] {
			b.Remove(c.X, c.Y)
			delete(present, c)
		} else {
			b.Add(c.X, c.Y)
			present[c] = true
		}
		checkInvariants(t, &b)
	}

	if b.Len() != len(present) {
		t.Fatalf("Len() = %d, want %d", b.Len(), len(present))
	}
	for _, c := range b.Cells() {
		if !present[c] {
			t.Fatalf("board holds unexpected cell (%d,%d)", c.X, c.Y)
		}
	}
}

func TestBoardCellsOrdered(t *testing.T) {
	var b Board
	b.Add(7, 3)
	b.Add(-2, -1)
	b.Add(0, 3)
	b.Add(5, -1)

	want := []core.Cell{{X: -2, Y: -1}, {X: 5, Y: -1}, {X: 0, Y: 3}, {X: 7, Y: 3}}
	got := b.Cells()
	if len(got) != len(want) {
		t.Fatalf("Cells() returned %d cells, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Cells()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
