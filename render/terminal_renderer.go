package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/star-dash/core"
	"github.com/lixenwraith/star-dash/engine"
	"github.com/lixenwraith/star-dash/event"
	"github.com/lixenwraith/star-dash/parameter"
)

// effectFrames is how many draws a collect burst stays visible
const effectFrames = 12

// Screen shake on run start and game over, in cells and draws
const (
	startShakeAmp    = 1
	startShakeFrames = 12
	overShakeAmp     = 2
	overShakeFrames  = 30
)

type burst struct {
	x, y float64
	ttl  int
}

// TerminalRenderer draws world snapshots onto a tcell screen
// Playfield units are scaled onto the cell grid between the HUD and help lines
type TerminalRenderer struct {
	screen tcell.Screen
	snap   engine.Snapshot
	bursts []burst

	// Horizontal play-area jolt; alternates sign each draw until ttl runs out
	shakeAmp int
	shakeTTL int

	width, height int // Screen cells
	playRows      int
}

var _ event.Handler = (*TerminalRenderer)(nil)

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen}
	r.Resize()
	return r
}

// Resize re-reads the screen dimensions
func (r *TerminalRenderer) Resize() {
	r.width, r.height = r.screen.Size()
	r.playRows = max(r.height-parameter.TopMargin-parameter.BottomMargin-1, 1)
}

// Scale returns playfield units per cell for the given playfield
func (r *TerminalRenderer) Scale(fieldW, fieldH float64) (sx, sy float64) {
	if r.width <= 0 {
		return 1, 1
	}
	return fieldW / float64(r.width), fieldH / float64(r.playRows)
}

// CellFor maps a playfield point to a screen cell inside the play area
func (r *TerminalRenderer) CellFor(x, y, fieldW, fieldH float64) (col, row int) {
	if fieldW > 0 {
		col = int(x / fieldW * float64(r.width))
	}
	if fieldH > 0 {
		row = int(y / fieldH * float64(r.playRows))
	}
	col = min(max(col, 0), r.width-1)
	row = min(max(row, 0), r.playRows-1)
	return col, row + parameter.TopMargin
}

// EventTypes lists the visual events the renderer draws
func (r *TerminalRenderer) EventTypes() []event.EventType {
	return []event.EventType{event.EventEffect, event.EventRunStart, event.EventGameOver}
}

// HandleEvent records visual events; non-visual events are ignored
func (r *TerminalRenderer) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventEffect:
		if ev.HasPos {
			r.bursts = append(r.bursts, burst{x: ev.X, y: ev.Y, ttl: effectFrames})
		}
	case event.EventRunStart:
		r.shake(startShakeAmp, startShakeFrames)
	case event.EventGameOver:
		r.shake(overShakeAmp, overShakeFrames)
	}
}

// shake starts a jolt unless a stronger one is still running
func (r *TerminalRenderer) shake(amp, frames int) {
	if r.shakeTTL > 0 && r.shakeAmp > amp {
		return
	}
	r.shakeAmp, r.shakeTTL = amp, frames
}

// ShakeOffset returns the column offset the next draw applies to the play area
func (r *TerminalRenderer) ShakeOffset() int {
	if r.shakeTTL <= 0 {
		return 0
	}
	if r.shakeTTL%2 == 0 {
		return r.shakeAmp
	}
	return -r.shakeAmp
}

// RenderFrame snapshots the world, draws and shows the frame
func (r *TerminalRenderer) RenderFrame(w *engine.World) {
	w.Snapshot(&r.snap)
	r.Draw(&r.snap)
	r.screen.Show()
}

// Draw renders a snapshot without presenting it
func (r *TerminalRenderer) Draw(s *engine.Snapshot) {
	r.screen.Clear()
	base := tcell.StyleDefault
	dx := r.ShakeOffset()
	if r.shakeTTL > 0 {
		r.shakeTTL--
	}

	r.drawFloor(base)
	r.drawBursts(s, dx, base)
	for i := range s.Bodies {
		r.drawBody(s, &s.Bodies[i], dx, base)
	}
	r.drawHUD(s, base)
	r.drawBanner(s, base)
	r.drawText(0, r.height-1, parameter.HelpLine, base.Foreground(parameter.ColorFloor))
}

func (r *TerminalRenderer) drawFloor(base tcell.Style) {
	style := base.Foreground(parameter.ColorFloor)
	row := parameter.TopMargin + r.playRows
	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, row, parameter.GlyphFloor, nil, style)
	}
}

func (r *TerminalRenderer) drawBody(s *engine.Snapshot, b *engine.BodyView, dx int, base tcell.Style) {
	col, row := r.CellFor(b.X, b.Y, s.Width, s.Height)
	col = min(max(col+dx, 0), r.width-1)

	var ch rune
	var style tcell.Style
	switch b.Kind {
	case core.KindPlayer:
		ch, style = parameter.GlyphPlayer, base.Foreground(parameter.ColorPlayer).Bold(true)
	case core.KindObstacle:
		ch, style = spinGlyph(b.Rotation), base.Foreground(parameter.ColorObstacle)
	case core.KindCollectible:
		ch, style = parameter.GlyphCollectible, base.Foreground(parameter.ColorCollectible)
	case core.KindEnemy:
		color, ok := parameter.EnemyStateColors[b.Tag]
		if !ok {
			color = tcell.ColorGray
		}
		ch, style = parameter.GlyphEnemy, base.Foreground(color)
	default:
		return
	}
	r.screen.SetContent(col, row, ch, nil, style)
}

func spinGlyph(rotation float64) rune {
	q := int(math.Floor(rotation/(math.Pi/2))) % len(parameter.ObstacleSpin)
	if q < 0 {
		q += len(parameter.ObstacleSpin)
	}
	return parameter.ObstacleSpin[q]
}

func (r *TerminalRenderer) drawBursts(s *engine.Snapshot, dx int, base tcell.Style) {
	style := base.Foreground(parameter.ColorCollectible)
	live := r.bursts[:0]
	for _, b := range r.bursts {
		col, row := r.CellFor(b.x, b.y, s.Width, s.Height)
		col += dx
		// Ring grows as the burst ages
		reach := 1 + (effectFrames-b.ttl)/4
		for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			x, y := col+d[0]*reach, row+d[1]*reach
			if x >= 0 && x < r.width && y >= parameter.TopMargin && y < parameter.TopMargin+r.playRows {
				r.screen.SetContent(x, y, '+', nil, style)
			}
		}
		b.ttl--
		if b.ttl > 0 {
			live = append(live, b)
		}
	}
	r.bursts = live
}

func (r *TerminalRenderer) drawHUD(s *engine.Snapshot, base tcell.Style) {
	style := base.Foreground(parameter.ColorHUD)

	filled := int(s.Energy / parameter.PlayerEnergyMax * parameter.EnergyBarSize)
	filled = min(max(filled, 0), parameter.EnergyBarSize)
	bar := make([]rune, parameter.EnergyBarSize)
	for i := range bar {
		if i < filled {
			bar[i] = parameter.EnergyBarCell
		} else {
			bar[i] = '░'
		}
	}

	audio := parameter.AudioStr
	if s.Muted {
		audio = parameter.MutedStr
	}
	music := parameter.MusicStr
	if !s.Music {
		music = parameter.MusicOffStr
	}
	hud := fmt.Sprintf(" SCORE %d  BEST %d  ENERGY %s  SPEED %.1f  %s%s", s.Score, s.Best, string(bar), s.Difficulty, audio, music)
	r.drawText(0, 0, hud, style)
}

func (r *TerminalRenderer) drawBanner(s *engine.Snapshot, base tcell.Style) {
	var text string
	switch s.Status {
	case engine.StatusNotStarted:
		text = parameter.BannerStart
	case engine.StatusPaused:
		text = parameter.BannerPaused
	case engine.StatusOver:
		text = parameter.BannerOver
	default:
		return
	}
	n := len([]rune(text))
	x := max((r.width-n)/2, 0)
	y := parameter.TopMargin + r.playRows/2
	r.drawText(x, y, text, base.Foreground(tcell.ColorBlack).Background(parameter.ColorBanner))
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		if x >= r.width {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
