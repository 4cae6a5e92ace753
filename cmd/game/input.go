// cmd/game/input.go
package main

import (
	"go-sea-battle/internal/interfaces"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyMap = interfaces.KeyMap[int32]{
	Movement: []interfaces.KeyBinding[int32]{
		{Key: rl.KeyW, Intent: interfaces.IntentForward},
		{Key: rl.KeyS, Intent: interfaces.IntentReverse},
		{Key: rl.KeyA, Intent: interfaces.IntentYawLeft},
		{Key: rl.KeyD, Intent: interfaces.IntentYawRight},
	},
	Actions: []interfaces.KeyBinding[int32]{
		{Key: rl.KeySpace, Intent: interfaces.IntentFire},
		{Key: rl.KeyC, Intent: interfaces.IntentToggleCamera},
		{Key: rl.KeyEnter, Intent: interfaces.IntentStartGame},
	},
}

// pollInput переводит нажатия клавиш за кадр в намерения
func pollInput(sink interfaces.IntentSink) {
	keyMap.Collect(rl.IsKeyPressed, rl.IsKeyReleased, sink)
}
