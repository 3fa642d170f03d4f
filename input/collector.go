package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// DefaultHoldWindow covers the gap between terminal key repeats
const DefaultHoldWindow = 150 * time.Millisecond

// Collector folds tcell events into Intents
// Terminals report no key release, so a direction stays held until
// the hold window passes without a repeat
type Collector struct {
	keys *KeyTable
	hold time.Duration

	lastSeen [heldCount]time.Time
	edges    Intent

	// Mouse drag state in cells
	dragging     bool
	dragX, dragY int
	dragDX       float64
	dragDY       float64

	// Playfield units per cell
	scaleX, scaleY float64
}

// NewCollector creates a collector; hold <= 0 selects DefaultHoldWindow
func NewCollector(keys *KeyTable, hold time.Duration) *Collector {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	return &Collector{
		keys:   keys,
		hold:   hold,
		scaleX: 1,
		scaleY: 1,
	}
}

// SetScale sets playfield units per terminal cell for drag deltas
func (c *Collector) SetScale(sx, sy float64) {
	c.scaleX, c.scaleY = sx, sy
}

// Handle consumes one event, returns false when the user asked to quit
func (c *Collector) Handle(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return c.handleKey(ev, now)
	case *tcell.EventMouse:
		c.handleMouse(ev)
	}
	return true
}

func (c *Collector) handleKey(ev *tcell.EventKey, now time.Time) bool {
	action := c.keys.Lookup(ev)
	switch action {
	case ActionUp, ActionDown, ActionLeft, ActionRight:
		c.lastSeen[action] = now
	case ActionStart:
		c.edges.Start = true
	case ActionPause:
		c.edges.Pause = true
	case ActionRestart:
		c.edges.Restart = true
	case ActionMute:
		c.edges.Mute = true
	case ActionMusic:
		c.edges.Music = true
	case ActionQuit:
		return false
	}
	return true
}

func (c *Collector) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	if ev.Buttons()&tcell.Button1 == 0 {
		c.dragging = false
		return
	}
	if c.dragging {
		c.dragDX += float64(x-c.dragX) * c.scaleX
		c.dragDY += float64(y-c.dragY) * c.scaleY
	}
	c.dragging = true
	c.dragX, c.dragY = x, y
}

// Intent returns the current control snapshot and clears consumed edges
func (c *Collector) Intent(now time.Time) Intent {
	in := c.edges
	in.Up = c.held(ActionUp, now)
	in.Down = c.held(ActionDown, now)
	in.Left = c.held(ActionLeft, now)
	in.Right = c.held(ActionRight, now)

	if c.dragDX != 0 || c.dragDY != 0 {
		in.Dragging = true
		in.DragX, in.DragY = c.dragDX, c.dragDY
	}

	c.edges = Intent{}
	c.dragDX, c.dragDY = 0, 0
	return in
}

func (c *Collector) held(a Action, now time.Time) bool {
	seen := c.lastSeen[a]
	return !seen.IsZero() && now.Sub(seen) < c.hold
}
