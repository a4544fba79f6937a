// internal/state/state.go
package state

// State — интерфейс для всех состояний
type State interface {
	Name() string
	Enter()
	Update(deltaTime float64)
	Exit()
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

// Current возвращает текущее состояние или nil
func (sm *StateMachine) Current() State {
	return sm.current
}

// Is сообщает, совпадает ли имя текущего состояния с name
func (sm *StateMachine) Is(name string) bool {
	return sm.current != nil && sm.current.Name() == name
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}
