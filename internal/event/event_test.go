// internal/event/event_test.go
package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type counter struct {
	n    int
	last Event
}

func (c *counter) OnEvent(ev Event) {
	c.n++
	c.last = ev
}

func TestDispatchReachesSubscribers(t *testing.T) {
	d := NewDispatcher()
	a, b := &counter{}, &counter{}
	d.Subscribe(ActiveChanged, a)
	d.Subscribe(ActiveChanged, b)
	d.Subscribe(ViewportResized, b)

	d.Dispatch(Event{Type: ActiveChanged, Data: true})
	assert.Equal(t, 1, a.n)
	assert.Equal(t, 1, b.n)
	assert.Equal(t, true, a.last.Data)

	d.Dispatch(Event{Type: ViewportResized, Data: Viewport{Width: 10, Height: 20}})
	assert.Equal(t, 1, a.n)
	assert.Equal(t, 2, b.n)
	assert.Equal(t, Viewport{Width: 10, Height: 20}, b.last.Data)

	// Событие без подписчиков
	d.Dispatch(Event{Type: ParticlesCleared, Data: 3})
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &counter{}, &counter{}
	d.Subscribe(PriceUpdated, a)
	d.Subscribe(PriceUpdated, b)

	d.Unsubscribe(PriceUpdated, a)
	d.Unsubscribe(ParticlesEmitted, b)
	d.Dispatch(Event{Type: PriceUpdated})

	assert.Equal(t, 0, a.n)
	assert.Equal(t, 1, b.n)
}

func TestListenerFunc(t *testing.T) {
	d := NewDispatcher()
	var got []EventType
	d.Subscribe(ParticlesEmitted, ListenerFunc(func(ev Event) { got = append(got, ev.Type) }))
	d.Dispatch(Event{Type: ParticlesEmitted})
	d.Dispatch(Event{Type: ParticlesEmitted})
	assert.Equal(t, []EventType{ParticlesEmitted, ParticlesEmitted}, got)
}
