// internal/state/playing_state.go
package state

import (
	"go-sea-battle/internal/component"
	"go-sea-battle/internal/interfaces"
	"time"
)

var _ State = (*PlayingState)(nil)

// PlayingState — идёт симуляция. Заканчивается, когда здоровье судна падает до нуля.
type PlayingState struct {
	sm   *StateMachine
	game interfaces.GameContext
}

func NewPlayingState(sm *StateMachine, game interfaces.GameContext) *PlayingState {
	return &PlayingState{sm: sm, game: game}
}

func (s *PlayingState) Phase() component.Phase { return component.PhasePlaying }

func (s *PlayingState) Enter() {}

func (s *PlayingState) Update(now time.Time) {
	health, ok := s.game.VesselHealth()
	if ok && health <= 0 {
		s.sm.SetState(NewOverState())
	}
}

func (s *PlayingState) Exit() {}
