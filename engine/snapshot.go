package engine

import (
	"github.com/lixenwraith/star-dash/core"
)

// BodyView is the renderer-facing copy of a Body
type BodyView struct {
	ID       core.BodyID
	Kind     core.Kind
	X, Y     float64
	Radius   float64
	Rotation float64
	Tag      string // Agent state for enemies
}

// Snapshot is a read-only frame of world state for renderers
type Snapshot struct {
	Width, Height float64
	Bodies        []BodyView

	Status     Status
	Score      int
	Best       int
	Energy     float64
	Health     float64
	Difficulty float64
	Frame      int64
	Muted      bool
	Music      bool
}

// Snapshot fills dst, reusing its Bodies slice
func (w *World) Snapshot(dst *Snapshot) {
	dst.Width, dst.Height = w.env.Width, w.env.Height
	dst.Status = w.status
	dst.Score = w.score
	dst.Best = w.best
	dst.Energy = w.energy
	dst.Health = w.health
	dst.Difficulty = w.difficulty
	dst.Frame = w.frame
	dst.Muted = w.muted
	dst.Music = w.music

	dst.Bodies = dst.Bodies[:0]
	for _, b := range w.pool {
		dst.Bodies = append(dst.Bodies, view(b))
	}
	if len(w.enemies) == 0 {
		return
	}
	tags := make(map[core.BodyID]string, len(w.enemies))
	for _, a := range w.enemies {
		tags[a.Body.ID] = a.State().String()
	}
	for i := range dst.Bodies {
		if tag, ok := tags[dst.Bodies[i].ID]; ok {
			dst.Bodies[i].Tag = tag
		}
	}
}

func view(b *core.Body) BodyView {
	return BodyView{
		ID:       b.ID,
		Kind:     b.Kind,
		X:        b.X,
		Y:        b.Y,
		Radius:   b.Radius,
		Rotation: b.Rotation,
	}
}
