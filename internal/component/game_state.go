// internal/component/game_state.go
package component

import "time"

// Phase — фаза игровой сессии
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseOver:
		return "over"
	}
	return "unknown"
}

// CameraMode — режим камеры, который ядро только хранит и передаёт рендереру
type CameraMode int

const (
	CameraChase CameraMode = iota
	CameraOverhead
)

// Population — счётчики живых сундуков и врагов
type Population struct {
	Chests  int
	Enemies int
}

// Session — состояние игровой сессии
type Session struct {
	ID             string
	StartedAt      time.Time // якорь для перехода из меню
	StartRequested bool
	Frame          uint64 // счётчик тиков в фазе Playing
	Collected      int
	Destroyed      int
	Camera         CameraMode
}
