// internal/state/state_test.go
package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type traceState struct {
	name  string
	trace *[]string
}

func (s *traceState) Name() string { return s.name }

func (s *traceState) Enter() { *s.trace = append(*s.trace, "enter "+s.name) }

func (s *traceState) Update(deltaTime float64) { *s.trace = append(*s.trace, "update "+s.name) }

func (s *traceState) Exit() { *s.trace = append(*s.trace, "exit "+s.name) }

func TestStateMachineTransitions(t *testing.T) {
	var trace []string
	a := &traceState{name: "a", trace: &trace}
	b := &traceState{name: "b", trace: &trace}

	sm := NewStateMachine()
	assert.Nil(t, sm.Current())
	assert.False(t, sm.Is("a"))
	sm.Update(0.1)

	sm.SetState(a)
	sm.Update(0.1)
	sm.SetState(b)
	assert.True(t, sm.Is("b"))
	assert.Equal(t, State(b), sm.Current())
	sm.SetState(nil)
	sm.Update(0.1)

	assert.Equal(t, []string{"enter a", "update a", "exit a", "enter b", "exit b"}, trace)
	assert.Nil(t, sm.Current())
}
