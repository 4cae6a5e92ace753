// internal/interfaces/keymap.go
package interfaces

// KeyBinding связывает клавишу платформы с намерением.
type KeyBinding[K comparable] struct {
	Key    K
	Intent Intent
}

// KeyMap — раскладка в фиксированном порядке. Movement при отпускании даёт Stop.
type KeyMap[K comparable] struct {
	Movement []KeyBinding[K]
	Actions  []KeyBinding[K]
}

// Collect переводит состояние клавиш за кадр в намерения.
// Сначала все отпускания, затем нажатия: новое нажатие в том же кадре
// не отменяется остановкой от другой клавиши.
func (m KeyMap[K]) Collect(pressed, released func(K) bool, sink IntentSink) {
	for _, b := range m.Movement {
		if released(b.Key) {
			sink.HandleIntent(IntentStop)
			break
		}
	}
	for _, b := range m.Movement {
		if pressed(b.Key) {
			sink.HandleIntent(b.Intent)
		}
	}
	for _, b := range m.Actions {
		if pressed(b.Key) {
			sink.HandleIntent(b.Intent)
		}
	}
}
