// internal/interfaces/game.go
package interfaces

// Intent — дискретное намерение игрока, полученное от слоя ввода
type Intent int

const (
	IntentForward Intent = iota
	IntentReverse
	IntentYawLeft
	IntentYawRight
	IntentStop
	IntentFire
	IntentToggleCamera
	IntentStartGame
)

func (i Intent) String() string {
	switch i {
	case IntentForward:
		return "forward"
	case IntentReverse:
		return "reverse"
	case IntentYawLeft:
		return "yaw_left"
	case IntentYawRight:
		return "yaw_right"
	case IntentStop:
		return "stop"
	case IntentFire:
		return "fire"
	case IntentToggleCamera:
		return "toggle_camera"
	case IntentStartGame:
		return "start_game"
	}
	return "unknown"
}

// IntentSink принимает намерения игрока. Реализуется Game.
type IntentSink interface {
	HandleIntent(intent Intent)
}
