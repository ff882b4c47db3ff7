// Package render projects per-tick sidewalk snapshots for display: a plain
// frame buffer, a tcell terminal viewer and a websocket broadcast hub.
// None of it feeds back into the simulation.
package render

import (
	"strings"

	"github.com/inference-sim/sidewalk-sim/sim"
)

// CellKind is what a single frame cell shows.
type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellEastward
	CellWestward
)

// glyphs used by Frame.String and the terminal viewer.
var glyphs = map[CellKind]rune{
	CellEmpty:    '.',
	CellEastward: '>',
	CellWestward: '<',
}

// KindOf maps a team to its display class.
func KindOf(t sim.Team) CellKind {
	if t == sim.Eastward {
		return CellEastward
	}
	return CellWestward
}

// Frame is a Width x Length raster of one tick.
type Frame struct {
	Tick   int64
	Length int
	Width  int
	Agents int
	cells  []CellKind // row-major: y*Length + x
}

// NewFrame rasterizes agents onto an empty length x width frame. Agents
// outside the frame are skipped.
func NewFrame(tick int64, length, width int, agents []sim.AgentView) *Frame {
	f := &Frame{
		Tick:   tick,
		Length: length,
		Width:  width,
		cells:  make([]CellKind, length*width),
	}
	for _, a := range agents {
		if a.X < 0 || a.X >= length || a.Y < 0 || a.Y >= width {
			continue
		}
		f.cells[a.Y*length+a.X] = KindOf(a.Team)
		f.Agents++
	}
	return f
}

// At returns the cell at (x, y); out-of-range reads are empty.
func (f *Frame) At(x, y int) CellKind {
	if x < 0 || x >= f.Length || y < 0 || y >= f.Width {
		return CellEmpty
	}
	return f.cells[y*f.Length+x]
}

// String draws the frame one row per line, row 0 first.
func (f *Frame) String() string {
	var b strings.Builder
	b.Grow((f.Length + 1) * f.Width)
	for y := 0; y < f.Width; y++ {
		for x := 0; x < f.Length; x++ {
			b.WriteRune(glyphs[f.At(x, y)])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
