package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOccupancyGrid_Insert_OccupiedCell_NoMutation(t *testing.T) {
	// GIVEN a grid with agent 0 on (1,1)
	g := NewOccupancyGrid()
	first := &Agent{ID: 0}
	assert.True(t, g.Insert(Coord{X: 1, Y: 1}, first))

	// WHEN a second agent is inserted on the same cell
	second := &Agent{ID: 1, Pos: Coord{X: 4, Y: 4}}
	ok := g.Insert(Coord{X: 1, Y: 1}, second)

	// THEN the insert fails and nothing changes
	assert.False(t, ok)
	assert.Same(t, first, g.At(Coord{X: 1, Y: 1}))
	assert.Equal(t, Coord{X: 4, Y: 4}, second.Pos)
	assert.Equal(t, 1, g.Len())
}

func TestOccupancyGrid_Insert_SetsAgentPos(t *testing.T) {
	g := NewOccupancyGrid()
	a := &Agent{ID: 7}
	assert.True(t, g.Insert(Coord{X: 3, Y: 2}, a))
	assert.Equal(t, Coord{X: 3, Y: 2}, a.Pos)
	assert.True(t, g.IsOccupied(Coord{X: 3, Y: 2}))
	assert.False(t, g.IsOccupied(Coord{X: 2, Y: 3}))
}

func TestOccupancyGrid_Relocate_MovesMapping(t *testing.T) {
	// GIVEN an agent on (0,0)
	g := NewOccupancyGrid()
	a := &Agent{ID: 0}
	g.Insert(Coord{}, a)

	// WHEN it is relocated to (0,1)
	g.Relocate(a, Coord{Y: 1})

	// THEN the old cell is free and the new one holds the agent
	assert.False(t, g.IsOccupied(Coord{}))
	assert.Same(t, a, g.At(Coord{Y: 1}))
	assert.Equal(t, Coord{Y: 1}, a.Pos)
	assert.Equal(t, 1, g.Len())
}

func TestOccupancyGrid_Relocate_OccupiedDestination_Panics(t *testing.T) {
	g := NewOccupancyGrid()
	a := &Agent{ID: 3}
	b := &Agent{ID: 9}
	g.Insert(Coord{X: 2, Y: 2}, a)
	g.Insert(Coord{X: 3, Y: 2}, b)

	assert.PanicsWithValue(t,
		"OccupancyGrid: relocate agent 3 to (3,2) occupied by agent 9",
		func() { g.Relocate(a, Coord{X: 3, Y: 2}) })

	// The failed relocate left both mappings intact
	assert.Same(t, a, g.At(Coord{X: 2, Y: 2}))
	assert.Same(t, b, g.At(Coord{X: 3, Y: 2}))
}

func TestOccupancyGrid_Remove(t *testing.T) {
	g := NewOccupancyGrid()
	a := &Agent{ID: 0}
	g.Insert(Coord{X: 5, Y: 0}, a)

	g.Remove(a)
	assert.False(t, g.IsOccupied(Coord{X: 5, Y: 0}))
	assert.Equal(t, 0, g.Len())

	// Removing an agent with no mapping is a no-op
	assert.NotPanics(t, func() { g.Remove(a) })
	assert.NotPanics(t, func() { g.Remove(&Agent{ID: 99}) })
}

func TestOccupancyGrid_Remove_DoesNotEvictOtherAgent(t *testing.T) {
	// GIVEN an unplaced agent whose Pos happens to match a placed agent's cell
	g := NewOccupancyGrid()
	placed := &Agent{ID: 0}
	g.Insert(Coord{X: 1, Y: 1}, placed)
	stray := &Agent{ID: 1, Pos: Coord{X: 1, Y: 1}}

	// WHEN the stray agent is removed
	g.Remove(stray)

	// THEN the placed agent keeps its cell
	assert.Same(t, placed, g.At(Coord{X: 1, Y: 1}))
}

func TestOccupancyGrid_Snapshot_AllAgentsByID(t *testing.T) {
	g := NewOccupancyGrid()
	for _, id := range []int{5, 1, 3} {
		g.Insert(Coord{X: id}, &Agent{ID: id})
	}

	snap := g.Snapshot()

	ids := make([]int, 0, len(snap))
	for _, a := range snap {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []int{1, 3, 5}, ids)
	assert.Empty(t, NewOccupancyGrid().Snapshot())
}
