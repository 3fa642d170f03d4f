package agent

// State is the behavior machine state
type State uint8

const (
	StateIdle State = iota
	StateChase
	StateAttack
	StateFlee

	StateCount
)

var stateNames = [StateCount]string{
	StateIdle:   "idle",
	StateChase:  "chase",
	StateAttack: "attack",
	StateFlee:   "flee",
}

func (s State) String() string {
	if s < StateCount {
		return stateNames[s]
	}
	return "unknown"
}

// ParseState maps a state name to its State
func ParseState(name string) (State, bool) {
	for i, n := range stateNames {
		if n == name {
			return State(i), true
		}
	}
	return StateIdle, false
}

// transitionTable lists every edge a behavior may take
// FLEE has no inbound edge; it is reachable only through Agent.SetState
// The dwell timeout drop to IDLE is applied by Agent.Update, not through this table
var transitionTable = [StateCount][StateCount]bool{
	StateIdle:   {StateChase: true},
	StateChase:  {StateAttack: true, StateIdle: true},
	StateAttack: {StateChase: true},
	StateFlee:   {StateIdle: true},
}

// Allowed reports whether a behavior may move from one state to another
func Allowed(from, to State) bool {
	if from >= StateCount || to >= StateCount {
		return false
	}
	return transitionTable[from][to]
}
