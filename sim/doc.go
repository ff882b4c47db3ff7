// Package sim provides the core tick-driven pedestrian simulation engine.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - grid.go: OccupancyGrid, the exclusive cell → agent index
//   - agent.go: the per-tick decision rule (advance vs. avoid) and move attempts
//   - sidewalk.go: the tick loop (spawn phase, then one decision per agent)
//
// # Invariants
//
//   - No two active agents share a cell.
//   - Every active agent lies in [0, Length-1] x [0, Width-1].
//   - An agent moves at most one Manhattan step per tick.
//
// A tick is sequential: agents act in grid snapshot order and each sees the
// occupancy left by the agents before it. Relocating onto an occupied cell
// panics, since Sidewalk.AttemptMove always checks occupancy first.
//
// # Sub-packages
//
//   - sim/trace/: per-decision records and summaries
//   - sim/render/: frame projection, terminal viewer and websocket hub
//
// Randomness flows only through PartitionedRNG, so a SimulationKey plus a
// SidewalkConfig fully determines a run.
package sim
