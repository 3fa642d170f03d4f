package agent

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// ErrScriptEntry is returned when a behavior script does not define think
var ErrScriptEntry = errors.New("script must define think(engine, agent)")

// scriptMaxAllocs bounds objects allocated in one think call
const scriptMaxAllocs = 4096

const scriptDispatch = `
think(__engine, __agent)
`

// Program is a compiled behavior script; each agent runs its own clone
type Program struct {
	name     string
	compiled *tengo.Compiled
}

// CompileScript compiles a tengo behavior script
// The script defines think := func(engine, agent) { ... } where agent carries
// state, distance, dx, dy, health, dwell_ms, attack_ready and tuning fields,
// and engine exposes force(fx, fy), steer(magnitude), transition(name),
// attack() and rand()
func CompileScript(name string, src []byte) (*Program, error) {
	if !strings.Contains(string(src), "think") {
		return nil, fmt.Errorf("%s: %w", name, ErrScriptEntry)
	}

	script := tengo.NewScript([]byte(string(src) + "\n" + scriptDispatch))
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__agent", map[string]any{})
	script.SetImports(stdlib.GetModuleMap("math"))
	script.SetMaxAllocs(scriptMaxAllocs)

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", name, err)
	}
	return &Program{name: name, compiled: compiled}, nil
}

// LoadScript reads and compiles a behavior script file
func LoadScript(path string) (*Program, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load script: %w", err)
	}
	return CompileScript(path, src)
}

// Name returns the script name given at compile time
func (p *Program) Name() string {
	return p.name
}

// NewBehavior returns a Behavior bound to a private clone of the program
func (p *Program) NewBehavior() *Script {
	s := &Script{
		name:     p.name,
		compiled: p.compiled.Clone(),
	}
	s.engine = s.buildEngine()
	return s
}

// Script runs a compiled tengo program as a Behavior
// Runtime errors fall back to the FSM for that tick and are reported via OnError
type Script struct {
	name     string
	compiled *tengo.Compiled
	engine   *tengo.ImmutableMap
	ctx      *Context // Valid only during Think

	fallback FSM
	errs     int

	OnError func(name string, err error)
}

// Errors returns the number of failed runs
func (s *Script) Errors() int {
	return s.errs
}

func (s *Script) Think(c *Context) {
	s.ctx = c
	defer func() { s.ctx = nil }()

	err := s.compiled.Set("__engine", s.engine)
	if err == nil {
		err = s.compiled.Set("__agent", agentVars(c))
	}
	if err == nil {
		err = s.compiled.Run()
	}
	if err != nil {
		s.errs++
		if s.OnError != nil {
			s.OnError(s.name, err)
		}
		s.fallback.Think(c)
	}
}

func agentVars(c *Context) map[string]any {
	a := c.Agent
	cfg := &a.Config
	return map[string]any{
		"state":           a.state.String(),
		"distance":        c.Distance,
		"dx":              c.DX,
		"dy":              c.DY,
		"health":          a.health,
		"dwell_ms":        float64(a.dwell.Milliseconds()),
		"attack_ready":    a.AttackReady(),
		"detection_range": cfg.DetectionRange,
		"attack_range":    cfg.AttackRange,
		"flee_range":      cfg.FleeRange,
		"speed":           cfg.Speed,
	}
}

func (s *Script) buildEngine() *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["force"] = &tengo.UserFunction{Name: "force", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 2 {
			return nil, tengo.ErrWrongNumArguments
		}
		fx, ok1 := tengo.ToFloat64(args[0])
		fy, ok2 := tengo.ToFloat64(args[1])
		if !ok1 || !ok2 || s.ctx == nil {
			return tengo.FalseValue, nil
		}
		s.ctx.Force(fx, fy)
		return tengo.TrueValue, nil
	}}

	values["steer"] = &tengo.UserFunction{Name: "steer", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		m, ok := tengo.ToFloat64(args[0])
		if !ok || s.ctx == nil {
			return tengo.FalseValue, nil
		}
		s.ctx.Steer(m)
		return tengo.TrueValue, nil
	}}

	values["transition"] = &tengo.UserFunction{Name: "transition", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		name, _ := tengo.ToString(args[0])
		next, ok := ParseState(strings.TrimSpace(name))
		if !ok || s.ctx == nil {
			return tengo.FalseValue, nil
		}
		if s.ctx.Transition(next) {
			return tengo.TrueValue, nil
		}
		return tengo.FalseValue, nil
	}}

	values["attack"] = &tengo.UserFunction{Name: "attack", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if s.ctx == nil || s.ctx.Agent.state != StateAttack {
			return tengo.FalseValue, nil
		}
		if s.ctx.TryAttack() {
			return tengo.TrueValue, nil
		}
		return tengo.FalseValue, nil
	}}

	values["rand"] = &tengo.UserFunction{Name: "rand", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if s.ctx == nil || s.ctx.Rand == nil {
			return &tengo.Float{Value: 0}, nil
		}
		return &tengo.Float{Value: s.ctx.Rand.Float64()}, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}
