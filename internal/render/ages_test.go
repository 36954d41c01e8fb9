package render

import (
	"testing"

	"listlife/internal/core"
)

func TestAgesApply(t *testing.T) {
	a := NewAges(8, 8)

	a.Apply([]core.Change{{X: 2, Y: 3, Kind: core.Born}})
	if got := a.At(2, 3); got != 1 {
		t.Fatalf("age after Born = %d, want 1", got)
	}

	a.Apply([]core.Change{{X: 2, Y: 3, Kind: core.StayedAlive}})
	a.Apply([]core.Change{{X: 2, Y: 3, Kind: core.StayedAlive}})
	if got := a.At(2, 3); got != 3 {
		t.Fatalf("age after two survivals = %d, want 3", got)
	}

	a.Apply([]core.Change{{X: 2, Y: 3, Kind: core.Died}})
	if got := a.At(2, 3); got != 0 {
		t.Fatalf("age after Died = %d, want 0", got)
	}
}

func TestAgesApplyClipsToViewport(t *testing.T) {
	a := NewAges(4, 4)

	a.Apply([]core.Change{
		{X: -1, Y: 0, Kind: core.Born},
		{X: 0, Y: -2, Kind: core.Born},
		{X: 4, Y: 1, Kind: core.Born},
		{X: 1, Y: 4, Kind: core.Born},
		{X: 1, Y: 1, Kind: core.Born},
	})

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := uint16(0)
			if x == 1 && y == 1 {
				want = 1
			}
			if got := a.At(x, y); got != want {
				t.Fatalf("age at (%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
	if a.At(-1, 0) != 0 || a.At(4, 1) != 0 {
		t.Fatal("out-of-viewport queries must read as dead")
	}
}

func TestAgesFillResets(t *testing.T) {
	a := NewAges(5, 5)
	a.Apply([]core.Change{{X: 0, Y: 0, Kind: core.Born}})
	a.Apply([]core.Change{{X: 0, Y: 0, Kind: core.StayedAlive}})

	a.Fill([]core.Cell{{X: 3, Y: 2}, {X: 9, Y: 9}})

	if got := a.At(0, 0); got != 0 {
		t.Fatalf("stale age survived Fill: %d", got)
	}
	if got := a.At(3, 2); got != 1 {
		t.Fatalf("filled cell age = %d, want 1", got)
	}
}
