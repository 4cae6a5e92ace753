// internal/state/over_state.go
package state

import (
	"go-sea-battle/internal/component"
	"time"
)

var _ State = (*OverState)(nil)

// OverState — конец игры. Терминальное состояние: выхода из него нет.
type OverState struct{}

func NewOverState() *OverState {
	return &OverState{}
}

func (s *OverState) Phase() component.Phase { return component.PhaseOver }
func (s *OverState) Enter()                 {}
func (s *OverState) Update(time.Time)       {}
func (s *OverState) Exit()                  {}
