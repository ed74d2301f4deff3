package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Status is the build and world summary shown on the HUD.
type Status struct {
	Biome      string
	Depth      int
	Kind       string
	RoomsLeft  int
	Rows       int
	RowTotal   int
	Chunks     int
	ChunkTotal int
	Batches    int
	Objects    int
	Actors     int
}

// Line formats the status as one HUD line.
func (s Status) Line() string {
	line := fmt.Sprintf("%s  depth %d  %s", s.Biome, s.Depth, s.Kind)
	if s.RoomsLeft > 0 {
		line += fmt.Sprintf("  rooms left %d", s.RoomsLeft)
	}
	if s.Chunks < s.ChunkTotal {
		line += fmt.Sprintf("  mesh %d/%d rows %d/%d chunks", s.Rows, s.RowTotal, s.Chunks, s.ChunkTotal)
	} else {
		line += fmt.Sprintf("  batches %d", s.Batches)
	}
	return line + fmt.Sprintf("  objects %d  actors %d", s.Objects, s.Actors)
}

// DrawHUD renders the status bar and message log at the bottom of the screen.
func (r *Renderer) DrawHUD(st Status, messages []string) {
	_, screenH := r.screen.Size()
	hudY := screenH - HUDRows

	r.drawHLine(hudY, tcell.ColorGray)
	r.drawText(0, hudY+1, st.Line(), tcell.StyleDefault.Foreground(tcell.ColorWhite))

	// Message log (last 3 messages).
	start := max(len(messages)-3, 0)
	for i, msg := range messages[start:] {
		r.drawText(0, hudY+2+i, msg, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}

	r.screen.Show()
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
}
