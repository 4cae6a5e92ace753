// internal/app/events.go
package app

import (
	"go-sea-battle/internal/event"
	"go-sea-battle/internal/types"

	"go.uber.org/zap"
)

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.VesselHit:
		if hit, ok := e.Data.(event.VesselHitData); ok {
			l.game.logger.Info("vessel hit", zap.Int("damage", hit.Damage), zap.Int("health", hit.Health))
		}
	case event.EnemyDestroyed:
		if id, ok := e.Data.(types.EntityID); ok {
			l.game.logger.Debug("enemy destroyed",
				zap.Uint32("id", uint32(id)),
				zap.Int("destroyed", l.game.ECS.Session.Destroyed))
		}
	}
}
