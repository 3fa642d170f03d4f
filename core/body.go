package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMass is returned when a Body is constructed with mass <= 0
	ErrInvalidMass = errors.New("body mass must be positive")
	// ErrInvalidRadius is returned when a Body is constructed with radius <= 0
	ErrInvalidRadius = errors.New("body radius must be positive")
)

// BodyID is a stable non-owning handle to a Body; zero means none
type BodyID uint64

// Kind tags which collection owns a Body
type Kind uint8

const (
	KindPlayer Kind = iota
	KindObstacle
	KindCollectible
	KindEnemy
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindObstacle:
		return "obstacle"
	case KindCollectible:
		return "collectible"
	case KindEnemy:
		return "enemy"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// WallMask selects which side walls reflect a Body
type WallMask uint8

const (
	WallLeft WallMask = 1 << iota
	WallRight

	WallNone WallMask = 0
	WallBoth          = WallLeft | WallRight
)

// Has reports whether all bits of w are set
func (m WallMask) Has(w WallMask) bool {
	return m&w == w
}

// Profile controls how integration treats a Body
type Profile struct {
	GravityScale float64  // Multiplier on environment gravity
	Walls        WallMask // Side walls that reflect this body; the floor always applies
}

var (
	// ProfileDefault is full gravity and both walls
	ProfileDefault = Profile{GravityScale: 1, Walls: WallBoth}
	// ProfileDrifter crosses the playfield horizontally and may leave on either side
	ProfileDrifter = Profile{GravityScale: 0, Walls: WallNone}
	// ProfileWalker falls under gravity and may leave past the left edge
	ProfileWalker = Profile{GravityScale: 1, Walls: WallRight}
)

// Body is a circular physics entity
type Body struct {
	ID   BodyID
	Kind Kind

	X, Y   float64
	VX, VY float64

	Radius float64
	Mass   float64

	// Grounded is set by the previous step's floor contact
	Grounded bool

	// Rotation is renderer-facing, in radians
	Rotation float64

	Profile Profile
}

// NewBody creates a Body at rest with the default profile
// Mass and radius must be positive
func NewBody(x, y, radius, mass float64) (*Body, error) {
	if !(mass > 0) {
		return nil, fmt.Errorf("new body (mass=%v): %w", mass, ErrInvalidMass)
	}
	if !(radius > 0) {
		return nil, fmt.Errorf("new body (radius=%v): %w", radius, ErrInvalidRadius)
	}
	return &Body{
		X:       x,
		Y:       y,
		Radius:  radius,
		Mass:    mass,
		Profile: ProfileDefault,
	}, nil
}

// MustBody is NewBody for compile-time constant arguments; panics on invalid input
func MustBody(x, y, radius, mass float64) *Body {
	b, err := NewBody(x, y, radius, mass)
	if err != nil {
		panic(err)
	}
	return b
}

// Offset returns the vector from b to o
func (b *Body) Offset(o *Body) (dx, dy float64) {
	return o.X - b.X, o.Y - b.Y
}
