package config

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/star-dash/agent"
	"github.com/lixenwraith/star-dash/asset"
	"github.com/lixenwraith/star-dash/engine"
)

// BehaviorFactory compiles the configured enemy script once and returns a
// factory of per-enemy clones; nil with no error selects the built-in FSM
// Script runtime errors are logged and the failing tick falls back to the FSM
func (c *Config) BehaviorFactory(log *zap.Logger) (engine.BehaviorFactory, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var prog *agent.Program
	var err error
	switch {
	case c.Script.Path != "":
		prog, err = agent.LoadScript(c.Script.Path)
	case c.Script.Behavior != "":
		var src []byte
		src, err = asset.Behavior(c.Script.Behavior)
		if err == nil {
			prog, err = agent.CompileScript(c.Script.Behavior, src)
		}
	default:
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	slog := log.Named("script")
	slog.Info("enemy behavior loaded", zap.String("script", prog.Name()))

	return func() agent.Behavior {
		s := prog.NewBehavior()
		s.OnError = func(name string, err error) {
			slog.Warn("script failed, FSM fallback", zap.String("script", name), zap.Error(err))
		}
		return s
	}, nil
}
