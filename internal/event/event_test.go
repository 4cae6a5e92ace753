package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingListener struct {
	got []Event
}

func (l *countingListener) OnEvent(e Event) {
	l.got = append(l.got, e)
}

func TestDispatcher(t *testing.T) {
	d := NewDispatcher()
	first, second := &countingListener{}, &countingListener{}
	d.Subscribe(ChestCollected, first)
	d.Subscribe(ChestCollected, second)
	d.Subscribe(VesselHit, second)

	d.Dispatch(Event{Type: ChestCollected, Data: 7})
	d.Dispatch(Event{Type: VesselHit, Data: VesselHitData{Damage: 5, Health: 95}})
	d.Dispatch(Event{Type: EnemyDestroyed})

	assert.Len(t, first.got, 1)
	assert.Equal(t, 7, first.got[0].Data)
	assert.Len(t, second.got, 2)

	d.Unsubscribe(ChestCollected, first)
	d.Dispatch(Event{Type: ChestCollected})
	assert.Len(t, first.got, 1)
	assert.Len(t, second.got, 3)
}
