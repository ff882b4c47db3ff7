package render

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/inference-sim/sidewalk-sim/sim"
)

// Viewer animates a sidewalk in a terminal.
type Viewer struct {
	screen tcell.Screen
	styles map[CellKind]tcell.Style
	status tcell.Style
}

// NewViewer wraps an initialized screen. The caller owns Init and Fini.
func NewViewer(screen tcell.Screen) *Viewer {
	return &Viewer{
		screen: screen,
		styles: map[CellKind]tcell.Style{
			CellEmpty:    tcell.StyleDefault.Foreground(tcell.ColorGray),
			CellEastward: tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
			CellWestward: tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
		},
		status: tcell.StyleDefault.Foreground(tcell.ColorYellow),
	}
}

// Draw renders f from the top-left corner, cropped to the screen, with a
// status line beneath it.
func (v *Viewer) Draw(f *Frame) {
	v.screen.Clear()
	w, h := v.screen.Size()

	rows := min(f.Width, h-1)
	cols := min(f.Length, w)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			k := f.At(x, y)
			v.screen.SetContent(x, y, glyphs[k], nil, v.styles[k])
		}
	}

	if rows >= 0 {
		line := fmt.Sprintf("tick %d  agents %d  [q] quit", f.Tick, f.Agents)
		for i, r := range line {
			if i >= w {
				break
			}
			v.screen.SetContent(i, rows, r, nil, v.status)
		}
	}
	v.screen.Show()
}

// Run advances s by one tick every interval and redraws, until ticks have
// elapsed, the user quits (q, Esc, Ctrl-C) or ctx is done.
func (v *Viewer) Run(ctx context.Context, s *sim.Sidewalk, ticks int64, interval time.Duration) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	cfg := s.Config()
	v.Draw(NewFrame(s.Clock, cfg.Length, cfg.Width, s.Snapshot()))

	end := s.Clock + ticks
	for s.Clock < end {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuitKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				v.screen.Sync()
			}
		case <-ticker.C:
			s.Step(s.Clock + 1)
			v.Draw(NewFrame(s.Clock, cfg.Length, cfg.Width, s.Snapshot()))
		}
	}
	return nil
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}
