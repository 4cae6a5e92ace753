package interfaces

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type intentLog []Intent

func (l *intentLog) HandleIntent(i Intent) { *l = append(*l, i) }

var testKeys = KeyMap[string]{
	Movement: []KeyBinding[string]{
		{Key: "w", Intent: IntentForward},
		{Key: "s", Intent: IntentReverse},
		{Key: "a", Intent: IntentYawLeft},
		{Key: "d", Intent: IntentYawRight},
	},
	Actions: []KeyBinding[string]{
		{Key: "space", Intent: IntentFire},
		{Key: "enter", Intent: IntentStartGame},
	},
}

func keys(names ...string) func(string) bool {
	return func(k string) bool {
		for _, n := range names {
			if n == k {
				return true
			}
		}
		return false
	}
}

func TestKeyMap_ReleaseBeforePress(t *testing.T) {
	// d отпущена и w нажата в одном кадре: судно должно поехать
	var got intentLog
	testKeys.Collect(keys("w"), keys("d"), &got)
	assert.Equal(t, intentLog{IntentStop, IntentForward}, got)
}

func TestKeyMap_Collect(t *testing.T) {
	var got intentLog
	testKeys.Collect(keys("space", "a", "enter"), keys("w", "s"), &got)
	assert.Equal(t, intentLog{IntentStop, IntentYawLeft, IntentFire, IntentStartGame}, got)

	got = nil
	testKeys.Collect(keys(), keys(), &got)
	assert.Empty(t, got)
}
