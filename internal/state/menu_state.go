// internal/state/menu_state.go
package state

import (
	"go-sea-battle/internal/component"
	"go-sea-battle/internal/interfaces"
	"time"
)

var _ State = (*MenuState)(nil)

// MenuState — стартовый экран. Игра начинается по команде игрока
// или автоматически после задержки от момента запуска.
type MenuState struct {
	sm    *StateMachine
	game  interfaces.GameContext
	delay time.Duration
}

func NewMenuState(sm *StateMachine, game interfaces.GameContext, delay time.Duration) *MenuState {
	return &MenuState{sm: sm, game: game, delay: delay}
}

func (m *MenuState) Phase() component.Phase { return component.PhaseMenu }

func (m *MenuState) Enter() {}

func (m *MenuState) Update(now time.Time) {
	if m.game.StartRequested() || now.Sub(m.game.StartedAt()) >= m.delay {
		m.sm.SetState(NewPlayingState(m.sm, m.game))
	}
}

func (m *MenuState) Exit() {}
