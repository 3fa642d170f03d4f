package agent

// Behavior decides actions and transitions for one agent tick
type Behavior interface {
	Think(ctx *Context)
}

// FSM is the distance-driven IDLE/CHASE/ATTACK/FLEE table
type FSM struct{}

func (FSM) Think(c *Context) {
	a := c.Agent
	cfg := &a.Config
	d := c.Distance

	switch a.state {
	case StateIdle:
		c.Wander()
		if d < cfg.DetectionRange {
			c.Transition(StateChase)
		}

	case StateChase:
		c.Steer(cfg.Speed)
		if d < cfg.AttackRange {
			c.Transition(StateAttack)
		} else if d > cfg.DetectionRange*cfg.LoseInterest {
			c.Transition(StateIdle)
		}

	case StateAttack:
		c.TryAttack()
		if d > cfg.AttackRange {
			c.Transition(StateChase)
		}

	case StateFlee:
		c.Steer(-cfg.Speed * cfg.FleeMultiplier)
		if d > cfg.FleeRange {
			c.Transition(StateIdle)
		}
	}
}
