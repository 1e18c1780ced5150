// Package scene builds and holds the tile grid as an ECS world.
// The grid is static after construction; the only mutation is the cosmetic
// symbol reshuffle after a completed spin.
package scene

import (
	"math/rand"
	"time"

	"github.com/mlange-42/ark/ecs"
)

// Cell is a tile's fixed grid position.
type Cell struct {
	Row, Col int
}

// Symbol is a tile's cosmetic symbol kind.
type Symbol struct {
	Kind uint8
}

// Pulse holds a tile's idle shimmer phase so tiles don't pulse in lockstep.
type Pulse struct {
	Phase float32
}

// Grid is the tile grid scene.
type Grid struct {
	world *ecs.World
	rng   *rand.Rand

	rows, cols  int
	symbolKinds int

	tileMapper *ecs.Map3[Cell, Symbol, Pulse]
	tileFilter *ecs.Filter3[Cell, Symbol, Pulse]
}

// NewGrid builds a rows x cols tile grid with a random symbol fill.
// Dimensions and symbolKinds below 1 are clamped to 1. A zero seed uses
// the current time.
func NewGrid(rows, cols, symbolKinds int, seed int64) *Grid {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	if symbolKinds < 1 {
		symbolKinds = 1
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	world := ecs.NewWorld()
	g := &Grid{
		world:       world,
		rng:         rand.New(rand.NewSource(seed)),
		rows:        rows,
		cols:        cols,
		symbolKinds: symbolKinds,
		tileMapper:  ecs.NewMap3[Cell, Symbol, Pulse](world),
		tileFilter:  ecs.NewFilter3[Cell, Symbol, Pulse](world),
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			cell := Cell{Row: row, Col: col}
			sym := Symbol{Kind: uint8(g.rng.Intn(symbolKinds))}
			pulse := Pulse{Phase: g.rng.Float32() * 6.2832}
			g.tileMapper.NewEntity(&cell, &sym, &pulse)
		}
	}

	return g
}

// Shuffle refills every tile with a fresh random symbol.
func (g *Grid) Shuffle() {
	query := g.tileFilter.Query()
	for query.Next() {
		_, sym, _ := query.Get()
		sym.Kind = uint8(g.rng.Intn(g.symbolKinds))
	}
}

// Each calls fn for every tile. Iteration order is not guaranteed; callers
// position tiles from Cell, never from iteration order.
func (g *Grid) Each(fn func(cell Cell, sym Symbol, pulse Pulse)) {
	query := g.tileFilter.Query()
	for query.Next() {
		cell, sym, pulse := query.Get()
		fn(*cell, *sym, *pulse)
	}
}

// SymbolAt returns the symbol kind at the given cell.
func (g *Grid) SymbolAt(row, col int) (uint8, bool) {
	var kind uint8
	found := false
	query := g.tileFilter.Query()
	for query.Next() {
		cell, sym, _ := query.Get()
		if cell.Row == row && cell.Col == col {
			kind = sym.Kind
			found = true
		}
	}
	return kind, found
}

// Count returns the number of tiles.
func (g *Grid) Count() int {
	count := 0
	query := g.tileFilter.Query()
	for query.Next() {
		count++
	}
	return count
}

// Rows returns the grid row count.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid column count.
func (g *Grid) Cols() int { return g.cols }

// SymbolKinds returns the number of distinct symbol kinds.
func (g *Grid) SymbolKinds() int { return g.symbolKinds }
