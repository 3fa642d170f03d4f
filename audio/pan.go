package audio

import (
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/star-dash/vmath"
)

// Pan maps a playfield x in [0, width] to stereo balance in [-1, 1]
func Pan(x, width float64) float64 {
	if width <= 0 {
		return 0
	}
	half := width / 2
	return vmath.Clamp((x-half)/half, -1, 1)
}

// withPan positions s in the stereo field
func withPan(s beep.Streamer, pan float64) beep.Streamer {
	return &effects.Pan{Streamer: s, Pan: pan}
}
