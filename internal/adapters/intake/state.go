package intake

import (
	"sync"

	"go.uber.org/zap"
)

// State is the presentation-side status of an extraction run
type State int

const (
	StateIdle State = iota
	StateAnalyzing
	StateComplete
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateAnalyzing:
		return "ANALYZING"
	case StateComplete:
		return "COMPLETE"
	case StateError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Tracker holds the run state of an intake
type Tracker struct {
	mu     sync.Mutex
	state  State
	logger *zap.Logger
}

// NewTracker creates a tracker in the idle state
func NewTracker(logger *zap.Logger) *Tracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracker{state: StateIdle, logger: logger}
}

// State returns the current state
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Transition moves to the given state and reports whether the move was allowed.
// A run starts from any state but analyzing; only an analyzing run can finish.
func (t *Tracker) Transition(to State) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	from := t.state
	allowed := false
	switch to {
	case StateAnalyzing:
		allowed = from != StateAnalyzing
	case StateComplete, StateError:
		allowed = from == StateAnalyzing
	case StateIdle:
		allowed = from != StateAnalyzing
	}

	if !allowed {
		t.logger.Warn("Ignoring invalid state transition",
			zap.Stringer("from", from),
			zap.Stringer("to", to))
		return false
	}

	t.state = to
	t.logger.Debug("Run state changed",
		zap.Stringer("from", from),
		zap.Stringer("to", to))
	return true
}
