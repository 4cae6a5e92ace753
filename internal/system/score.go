// internal/system/score.go
package system

import (
	"go-sea-battle/internal/entity"
	"go-sea-battle/internal/event"
)

// ScoreSystem ведёт счёт сессии: подобранные сундуки и уничтоженные враги.
type ScoreSystem struct {
	ecs *entity.ECS
}

// NewScoreSystem создаёт систему и подписывает её на нужные события.
func NewScoreSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ScoreSystem {
	s := &ScoreSystem{ecs: ecs}
	eventDispatcher.Subscribe(event.ChestCollected, s)
	eventDispatcher.Subscribe(event.EnemyDestroyed, s)
	return s
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *ScoreSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.ChestCollected:
		s.ecs.Session.Collected++
	case event.EnemyDestroyed:
		s.ecs.Session.Destroyed++
	}
}
