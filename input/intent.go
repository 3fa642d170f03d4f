package input

// Intent is the per-tick control snapshot consumed by the world
// Directions are level-triggered; the remaining controls are edges
type Intent struct {
	Up, Down, Left, Right bool

	Start   bool
	Pause   bool
	Restart bool
	Mute    bool
	Music   bool

	// Drag delta in playfield units since the previous intent
	Dragging     bool
	DragX, DragY float64
}

// Any reports whether the intent carries any control edge
func (i Intent) Any() bool {
	return i.Start || i.Pause || i.Restart || i.Mute || i.Music
}
