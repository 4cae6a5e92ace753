// internal/state/state.go
package state

import (
	"go-sea-battle/internal/component"
	"go-sea-battle/internal/event"
	"time"

	"go.uber.org/zap"
)

// State — интерфейс для всех состояний
type State interface {
	Phase() component.Phase
	Enter()
	Update(now time.Time)
	Exit()
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current         State
	eventDispatcher *event.Dispatcher
	logger          *zap.Logger
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine(eventDispatcher *event.Dispatcher, logger *zap.Logger) *StateMachine {
	return &StateMachine{eventDispatcher: eventDispatcher, logger: logger}
}

// SetState устанавливает новое состояние и рассылает PhaseChanged
func (sm *StateMachine) SetState(newState State) {
	from := "none"
	if sm.current != nil {
		from = sm.current.Phase().String()
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current == nil {
		return
	}
	sm.current.Enter()

	to := sm.current.Phase().String()
	sm.logger.Info("phase changed", zap.String("from", from), zap.String("to", to))
	sm.eventDispatcher.Dispatch(event.Event{
		Type: event.PhaseChanged,
		Data: event.PhaseChangedData{From: from, To: to},
	})
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(now time.Time) {
	if sm.current != nil {
		sm.current.Update(now)
	}
}

// Current возвращает текущее состояние
func (sm *StateMachine) Current() State {
	return sm.current
}

// Phase возвращает фазу текущего состояния. Без состояния — меню.
func (sm *StateMachine) Phase() component.Phase {
	if sm.current == nil {
		return component.PhaseMenu
	}
	return sm.current.Phase()
}
