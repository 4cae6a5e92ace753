// internal/interfaces/game_context.go
package interfaces

import "time"

// GameContext — то, что состояния игры запрашивают у Game.
// Интерфейс разрывает циклическую зависимость state -> app.
type GameContext interface {
	StartedAt() time.Time
	StartRequested() bool
	// VesselHealth возвращает здоровье судна игрока; ok=false, если судна нет.
	VesselHealth() (health int, ok bool)
}
