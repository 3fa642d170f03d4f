package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/star-dash/agent"
	"github.com/lixenwraith/star-dash/audio"
	"github.com/lixenwraith/star-dash/engine"
	"github.com/lixenwraith/star-dash/input"
	"github.com/lixenwraith/star-dash/parameter"
	"github.com/lixenwraith/star-dash/physics"
)

var (
	// ErrInvalid wraps a value that fails validation
	ErrInvalid    = errors.New("invalid config value")
	// ErrUnknownKey wraps TOML keys that map to no field
	ErrUnknownKey = errors.New("unknown config key")
)

// Config is the full game configuration, one field per TOML table
type Config struct {
	Playfield PlayfieldConfig `toml:"playfield"`
	Physics   PhysicsConfig   `toml:"physics"`
	Player    PlayerConfig    `toml:"player"`
	Enemy     EnemyConfig     `toml:"enemy"`
	Spawn     SpawnConfig     `toml:"spawn"`
	Logging   LoggingConfig   `toml:"logging"`
	Store     StoreConfig     `toml:"store"`
	Audio     AudioConfig     `toml:"audio"`
	Script    ScriptConfig    `toml:"script"`
}

// PlayfieldConfig sizes the playfield in world units
type PlayfieldConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// PhysicsConfig tunes integration and collision response
type PhysicsConfig struct {
	Gravity       float64 `toml:"gravity"`
	Friction      float64 `toml:"friction"`       // 0 < f < 1
	BounceDamping float64 `toml:"bounce_damping"` // 0 < d < 1
	MaxVelocity   float64 `toml:"max_velocity"`
	Restitution   float64 `toml:"restitution"` // 0..1
	Correction    float64 `toml:"correction"`  // De-penetration fraction 0..1
}

// PlayerConfig holds player input settings
type PlayerConfig struct {
	HoldWindow time.Duration `toml:"hold_window"` // Key repeat latch
}

// EnemyConfig maps onto agent.Config
type EnemyConfig struct {
	DetectionRange float64       `toml:"detection_range"`
	AttackRange    float64       `toml:"attack_range"`
	FleeRange      float64       `toml:"flee_range"`
	Speed          float64       `toml:"speed"`
	Health         int           `toml:"health"`
	AttackCooldown time.Duration `toml:"attack_cooldown"`
	MaxStateTime   time.Duration `toml:"max_state_time"`
}

// SpawnConfig sets spawner pace and the RNG seed
type SpawnConfig struct {
	BaseSpeed         float64 `toml:"base_speed"`
	DifficultyPerTick float64 `toml:"difficulty_per_tick"`
	Seed              uint64  `toml:"seed"` // 0 = time-seeded
}

// LoggingConfig selects zap level, encoding and output
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // Empty = stderr
}

// StoreConfig selects the best score backend
type StoreConfig struct {
	Backend string `toml:"backend"` // "memory", "file" or "postgres"
	Path    string `toml:"path"`
	DSN     string `toml:"dsn"`
}

// AudioConfig controls the speaker and master gain
type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // Master gain 0..1
	Music   bool    `toml:"music"`  // Background loop at start
	Loop    string  `toml:"loop"`   // Background arrangement name
}

// ScriptConfig selects a scripted enemy behavior
type ScriptConfig struct {
	Behavior string `toml:"behavior"` // Bundled behavior name; empty = built-in FSM
	Path     string `toml:"path"`     // Script file, overrides Behavior
}

// Load reads a TOML file over defaults and validates the result
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML bytes over defaults and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(cfg)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the stock configuration
func Default() *Config {
	env := physics.DefaultEnvironment()
	return &Config{
		Playfield: PlayfieldConfig{
			Width:  parameter.PlayfieldWidth,
			Height: parameter.PlayfieldHeight,
		},
		Physics: PhysicsConfig{
			Gravity:       env.Gravity,
			Friction:      env.Friction,
			BounceDamping: env.BounceDamping,
			MaxVelocity:   env.MaxVelocity,
			Restitution:   env.Restitution,
			Correction:    env.Correction,
		},
		Player: PlayerConfig{
			HoldWindow: input.DefaultHoldWindow,
		},
		Enemy: EnemyConfig{
			DetectionRange: parameter.EnemyDetectionRange,
			AttackRange:    parameter.EnemyAttackRange,
			FleeRange:      parameter.EnemyFleeRange,
			Speed:          parameter.EnemySpeed,
			Health:         parameter.EnemyHealth,
			AttackCooldown: parameter.EnemyAttackCooldown,
			MaxStateTime:   parameter.EnemyMaxStateTime,
		},
		Spawn: SpawnConfig{
			BaseSpeed:         parameter.BaseGameSpeed,
			DifficultyPerTick: parameter.DifficultyPerTick,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			File:   "star-dash.log",
		},
		Store: StoreConfig{
			Backend: "file",
			Path:    "star-dash-best.yaml",
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  1.0,
			Music:   true,
			Loop:    parameter.MusicDefaultLoop,
		},
	}
}

// Validate rejects values the simulation cannot run with
func (c *Config) Validate() error {
	p := &c.Physics
	switch {
	case c.Playfield.Width <= 0 || c.Playfield.Height <= 0:
		return fmt.Errorf("%w: playfield size %.0fx%.0f", ErrInvalid, c.Playfield.Width, c.Playfield.Height)
	case p.Gravity < 0:
		return fmt.Errorf("%w: physics.gravity %g", ErrInvalid, p.Gravity)
	case !(p.Friction > 0 && p.Friction < 1):
		return fmt.Errorf("%w: physics.friction %g not in (0,1)", ErrInvalid, p.Friction)
	case !(p.BounceDamping > 0 && p.BounceDamping < 1):
		return fmt.Errorf("%w: physics.bounce_damping %g not in (0,1)", ErrInvalid, p.BounceDamping)
	case !(p.MaxVelocity > 0):
		return fmt.Errorf("%w: physics.max_velocity %g", ErrInvalid, p.MaxVelocity)
	case p.Restitution < 0 || p.Restitution > 1:
		return fmt.Errorf("%w: physics.restitution %g not in [0,1]", ErrInvalid, p.Restitution)
	case p.Correction < 0 || p.Correction > 1:
		return fmt.Errorf("%w: physics.correction %g not in [0,1]", ErrInvalid, p.Correction)
	}

	e := &c.Enemy
	switch {
	case e.DetectionRange <= 0 || e.AttackRange <= 0 || e.FleeRange <= 0:
		return fmt.Errorf("%w: enemy ranges must be positive", ErrInvalid)
	case e.Speed < 0:
		return fmt.Errorf("%w: enemy.speed %g", ErrInvalid, e.Speed)
	case e.Health <= 0:
		return fmt.Errorf("%w: enemy.health %d", ErrInvalid, e.Health)
	case e.AttackCooldown < 0 || e.MaxStateTime <= 0:
		return fmt.Errorf("%w: enemy timers", ErrInvalid)
	}

	if c.Spawn.BaseSpeed <= 0 || c.Spawn.DifficultyPerTick < 0 {
		return fmt.Errorf("%w: spawn speed %g step %g", ErrInvalid, c.Spawn.BaseSpeed, c.Spawn.DifficultyPerTick)
	}

	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: logging.format %q", ErrInvalid, c.Logging.Format)
	}

	switch c.Store.Backend {
	case "memory":
	case "file":
		if c.Store.Path == "" {
			return fmt.Errorf("%w: store.path required for file backend", ErrInvalid)
		}
	case "postgres":
		if c.Store.DSN == "" {
			return fmt.Errorf("%w: store.dsn required for postgres backend", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: store.backend %q", ErrInvalid, c.Store.Backend)
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume %g", ErrInvalid, c.Audio.Volume)
	}
	if _, err := audio.GetLoop(c.Audio.Loop); err != nil {
		return fmt.Errorf("%w: audio.loop %q", ErrInvalid, c.Audio.Loop)
	}
	return nil
}

// Environment maps physics and playfield sections onto the simulation environment
func (c *Config) Environment() physics.Environment {
	return physics.Environment{
		Gravity:       c.Physics.Gravity,
		Friction:      c.Physics.Friction,
		BounceDamping: c.Physics.BounceDamping,
		MaxVelocity:   c.Physics.MaxVelocity,
		Restitution:   c.Physics.Restitution,
		Correction:    c.Physics.Correction,
		Width:         c.Playfield.Width,
		Height:        c.Playfield.Height,
	}
}

// AgentConfig maps the enemy section onto agent tuning
func (c *Config) AgentConfig() agent.Config {
	a := agent.DefaultConfig()
	a.DetectionRange = c.Enemy.DetectionRange
	a.AttackRange = c.Enemy.AttackRange
	a.FleeRange = c.Enemy.FleeRange
	a.Speed = c.Enemy.Speed
	a.Health = c.Enemy.Health
	a.AttackCooldown = c.Enemy.AttackCooldown
	a.MaxStateTime = c.Enemy.MaxStateTime
	return a
}

// SpawnRules maps the spawn section onto spawner cadence
func (c *Config) SpawnRules() engine.SpawnRules {
	r := engine.DefaultSpawnRules()
	r.BaseSpeed = c.Spawn.BaseSpeed
	r.DifficultyPerTick = c.Spawn.DifficultyPerTick
	return r
}

// Options builds world options from the config
func (c *Config) Options() engine.Options {
	opts := engine.DefaultOptions()
	opts.Env = c.Environment()
	opts.Agent = c.AgentConfig()
	opts.Spawn = c.SpawnRules()
	opts.Music = c.Audio.Music
	if c.Spawn.Seed != 0 {
		opts.Seed = c.Spawn.Seed
	} else {
		opts.Seed = uint64(time.Now().UnixNano())
	}
	return opts
}
