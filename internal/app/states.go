// internal/app/states.go
package app

import "go-price-particles/internal/state"

const (
	stateActive   = "active"
	stateInactive = "inactive"
)

// Убеждаемся, что состояния соответствуют интерфейсу State
var (
	_ state.State = (*activeState)(nil)
	_ state.State = (*inactiveState)(nil)
)

// activeState — тики идут, цены порождают частицы.
type activeState struct {
	engine      *Engine
	accumulator float64
}

func (s *activeState) Name() string { return stateActive }

func (s *activeState) Enter() {
	s.accumulator = 0
	s.engine.log.Info("particle engine activated")
}

func (s *activeState) Update(deltaTime float64) {
	s.engine.advance(s, deltaTime)
}

// Exit выполняет жёсткую очистку: частицы не затухают, а исчезают сразу.
func (s *activeState) Exit() {
	s.engine.clear()
	s.engine.log.Info("particle engine deactivated")
}

// inactiveState — тиков нет, цены игнорируются.
type inactiveState struct {
	engine *Engine
}

func (s *inactiveState) Name() string { return stateInactive }

func (s *inactiveState) Enter() {}

func (s *inactiveState) Update(deltaTime float64) {}

func (s *inactiveState) Exit() {}
