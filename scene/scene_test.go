package scene

import (
	"testing"
)

func TestNewGridTileCount(t *testing.T) {
	g := NewGrid(5, 5, 6, 42)

	if g.Count() != 25 {
		t.Errorf("expected 25 tiles, got %d", g.Count())
	}
	if g.Rows() != 5 || g.Cols() != 5 {
		t.Errorf("expected 5x5, got %dx%d", g.Rows(), g.Cols())
	}
}

func TestNewGridClampsDimensions(t *testing.T) {
	g := NewGrid(0, -3, 0, 42)

	if g.Rows() != 1 || g.Cols() != 1 {
		t.Errorf("expected dimensions clamped to 1x1, got %dx%d", g.Rows(), g.Cols())
	}
	if g.SymbolKinds() != 1 {
		t.Errorf("expected symbol kinds clamped to 1, got %d", g.SymbolKinds())
	}
	if g.Count() != 1 {
		t.Errorf("expected 1 tile, got %d", g.Count())
	}
}

func TestEveryCellPresent(t *testing.T) {
	g := NewGrid(5, 5, 6, 42)

	seen := make(map[[2]int]bool)
	g.Each(func(cell Cell, _ Symbol, _ Pulse) {
		key := [2]int{cell.Row, cell.Col}
		if seen[key] {
			t.Errorf("duplicate tile at (%d, %d)", cell.Row, cell.Col)
		}
		seen[key] = true
	})

	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			if !seen[[2]int{row, col}] {
				t.Errorf("missing tile at (%d, %d)", row, col)
			}
		}
	}
}

func TestSymbolsWithinRange(t *testing.T) {
	g := NewGrid(5, 5, 4, 42)

	check := func() {
		g.Each(func(cell Cell, sym Symbol, _ Pulse) {
			if int(sym.Kind) >= 4 {
				t.Errorf("tile (%d, %d): symbol kind %d out of range", cell.Row, cell.Col, sym.Kind)
			}
		})
	}

	check()
	g.Shuffle()
	check()
}

func TestShuffleIsDeterministicPerSeed(t *testing.T) {
	collect := func(g *Grid) map[[2]int]uint8 {
		out := make(map[[2]int]uint8)
		g.Each(func(cell Cell, sym Symbol, _ Pulse) {
			out[[2]int{cell.Row, cell.Col}] = sym.Kind
		})
		return out
	}

	a := NewGrid(5, 5, 6, 1234)
	b := NewGrid(5, 5, 6, 1234)

	first, second := collect(a), collect(b)
	for key, kind := range first {
		if second[key] != kind {
			t.Fatalf("same seed produced different fills at (%d, %d): %d vs %d",
				key[0], key[1], kind, second[key])
		}
	}

	a.Shuffle()
	b.Shuffle()
	first, second = collect(a), collect(b)
	for key, kind := range first {
		if second[key] != kind {
			t.Fatalf("same seed produced different shuffles at (%d, %d): %d vs %d",
				key[0], key[1], kind, second[key])
		}
	}
}

func TestSymbolAt(t *testing.T) {
	g := NewGrid(3, 3, 6, 42)

	if _, ok := g.SymbolAt(1, 1); !ok {
		t.Error("expected symbol at (1, 1)")
	}
	if _, ok := g.SymbolAt(5, 5); ok {
		t.Error("expected no symbol outside the grid")
	}
}
