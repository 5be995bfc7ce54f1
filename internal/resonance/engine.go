// Package resonance classifies free text into one of a fixed set of mood
// states by keyword and remembers the most recent result.
package resonance

import (
	"strings"
	"sync"
)

// State is the classifier's current mood.
type State string

const (
	StateNeutral   State = "neutral"
	StateHarmonic  State = "harmonic"
	StateDistorted State = "distorted"
)

// String returns the wire value of the state.
func (s State) String() string {
	return string(s)
}

// Valid reports whether s is one of the known states.
func (s State) Valid() bool {
	switch s {
	case StateNeutral, StateHarmonic, StateDistorted:
		return true
	}
	return false
}

// rules are evaluated in order; the first keyword found anywhere in the
// input wins. Matching is case-sensitive.
var rules = []struct {
	keyword string
	state   State
}{
	{keyword: "love", state: StateHarmonic},
	{keyword: "chaos", state: StateDistorted},
}

// Classify maps input to a state without touching any engine.
func Classify(input string) State {
	for _, r := range rules {
		if strings.Contains(input, r.keyword) {
			return r.state
		}
	}
	return StateNeutral
}

// Engine holds the current state. The zero value is not usable; use NewEngine.
type Engine struct {
	mu    sync.RWMutex
	state State
}

// NewEngine returns an Engine in the neutral state.
func NewEngine() *Engine {
	return &Engine{state: StateNeutral}
}

// UpdateState classifies input, stores the result and returns it.
// The previous state has no influence on the outcome.
func (e *Engine) UpdateState(input string) State {
	next := Classify(input)

	e.mu.Lock()
	e.state = next
	e.mu.Unlock()

	return next
}

// CurrentState returns the stored state.
func (e *Engine) CurrentState() State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state
}
