package parameter

import "github.com/gdamore/tcell/v2"

// Layout & Margins
const (
	// TopMargin for the HUD line
	TopMargin = 1

	// BottomMargin for the help line
	BottomMargin = 1
)

// Body glyphs
const (
	GlyphPlayer      = '@'
	GlyphObstacle    = '#'
	GlyphCollectible = '*'
	GlyphEnemy       = 'E'
	GlyphFloor       = '▀'
)

// Spinning obstacle frames indexed by rotation quadrant
var ObstacleSpin = [4]rune{'#', '%', '#', '&'}

// Body colors
var (
	ColorPlayer      = tcell.ColorAqua
	ColorObstacle    = tcell.ColorRed
	ColorCollectible = tcell.ColorYellow
	ColorFloor       = tcell.ColorDarkGray
	ColorHUD         = tcell.ColorWhite
	ColorBanner      = tcell.ColorFuchsia
)

// Enemy colors by agent state name
var EnemyStateColors = map[string]tcell.Color{
	"idle":   tcell.ColorGray,
	"chase":  tcell.ColorOrange,
	"attack": tcell.ColorRed,
	"flee":   tcell.ColorGreen,
}

// HUD text
const (
	AudioStr      = "SFX "
	MutedStr      = "    "
	MusicStr      = "♫ "
	MusicOffStr   = "  "
	BannerStart   = " STAR DASH  press ENTER to start "
	BannerPaused  = " PAUSED  p resume  r restart "
	BannerOver    = " GAME OVER  r restart "
	HelpLine      = " ←↑→↓/wasd move  drag mouse  p pause  m sfx  b music  esc quit "
	EnergyBarCell = '█'
	EnergyBarSize = 10
)
