package audio

import (
	"go-sea-battle/internal/event"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestToneStreamer(t *testing.T) {
	rate := beep.SampleRate(1000)
	s := NewToneStreamer(Tone{Freq: 100, Duration: 50 * time.Millisecond, Volume: 0.5}, rate)

	buf := make([][2]float64, 32)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		for i := 0; i < n; i++ {
			assert.LessOrEqual(t, buf[i][0], 0.5)
			assert.GreaterOrEqual(t, buf[i][0], -0.5)
			assert.Equal(t, buf[i][0], buf[i][1])
		}
		if !ok {
			break
		}
	}
	assert.Equal(t, 50, total)
	assert.NoError(t, s.Err())
}

func TestToneFor(t *testing.T) {
	tone, ok := ToneFor(event.Event{Type: event.ChestCollected})
	assert.True(t, ok)
	assert.Equal(t, ChestTone, tone)

	_, ok = ToneFor(event.Event{Type: event.PhaseChanged, Data: event.PhaseChangedData{From: "menu", To: "playing"}})
	assert.False(t, ok)

	tone, ok = ToneFor(event.Event{Type: event.PhaseChanged, Data: event.PhaseChangedData{From: "playing", To: "over"}})
	assert.True(t, ok)
	assert.Equal(t, OverTone, tone)

	_, ok = ToneFor(event.Event{Type: event.EnemyRammed})
	assert.False(t, ok)
}

func TestSoundManager_Uninitialized(t *testing.T) {
	sm := NewSoundManager(zap.NewNop())
	d := event.NewDispatcher()
	sm.Subscribe(d)

	// Без аудиоустройства события просто игнорируются
	d.Dispatch(event.Event{Type: event.VesselHit, Data: event.VesselHitData{Damage: 5, Health: 95}})
	sm.Cleanup()
}

func TestSoundManager_CleanupClosesDevice(t *testing.T) {
	opened, closed := 0, 0
	var played beep.Streamer
	openSpeaker = func() error { opened++; return nil }
	playSpeaker = func(s ...beep.Streamer) { played = s[0] }
	closeSpeaker = func() { closed++ }
	t.Cleanup(func() {
		openSpeaker = defaultOpenSpeaker
		playSpeaker = speaker.Play
		closeSpeaker = speaker.Close
	})

	sm := NewSoundManager(zap.NewNop())
	require.NoError(t, sm.Initialize())
	require.NoError(t, sm.Initialize())
	assert.Equal(t, 1, opened)
	assert.Same(t, sm.mixer, played)

	sm.Play(ChestTone)
	assert.Equal(t, 1, sm.mixer.Len())

	sm.Cleanup()
	sm.Cleanup()
	assert.Equal(t, 1, closed)
	assert.Zero(t, sm.mixer.Len())

	sm.Play(HitTone)
	assert.Zero(t, sm.mixer.Len())
}
