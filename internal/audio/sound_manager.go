package audio

import (
	"go-sea-battle/internal/event"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
)

const sampleRate = beep.SampleRate(44100)

// Аудиоустройство; в тестах подменяется
var (
	openSpeaker  = defaultOpenSpeaker
	playSpeaker  = speaker.Play
	closeSpeaker = speaker.Close
)

func defaultOpenSpeaker() error {
	return speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
}

// Звуки игровых событий
var (
	ChestTone   = Tone{Freq: 660, Sweep: 440, Duration: 120 * time.Millisecond, Volume: 0.25}
	DestroyTone = Tone{Freq: 220, Sweep: -160, Duration: 250 * time.Millisecond, Volume: 0.3}
	HitTone     = Tone{Freq: 110, Sweep: -40, Duration: 150 * time.Millisecond, Volume: 0.35}
	FireTone    = Tone{Freq: 880, Sweep: -300, Duration: 60 * time.Millisecond, Volume: 0.1}
	OverTone    = Tone{Freq: 330, Sweep: -250, Duration: 900 * time.Millisecond, Volume: 0.3}
)

// SoundManager проигрывает короткие сигналы на игровые события.
// Если звук не инициализирован, все вызовы Play — no-op.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	logger      *zap.Logger
}

// NewSoundManager creates a new sound manager
func NewSoundManager(logger *zap.Logger) *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}, logger: logger}
}

// Initialize открывает аудиоустройство. Ошибка не фатальна: игра продолжит работу без звука.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := openSpeaker(); err != nil {
		return err
	}
	playSpeaker(sm.mixer)
	sm.initialized = true
	return nil
}

// Subscribe подписывает менеджер на события, у которых есть звук.
func (sm *SoundManager) Subscribe(d *event.Dispatcher) {
	for _, t := range []event.EventType{event.ChestCollected, event.EnemyDestroyed, event.VesselHit, event.BulletFired, event.PhaseChanged} {
		d.Subscribe(t, sm)
	}
}

// OnEvent реализует event.Listener
func (sm *SoundManager) OnEvent(e event.Event) {
	if tone, ok := ToneFor(e); ok {
		sm.Play(tone)
	}
}

// ToneFor возвращает звук для события
func ToneFor(e event.Event) (Tone, bool) {
	switch e.Type {
	case event.ChestCollected:
		return ChestTone, true
	case event.EnemyDestroyed:
		return DestroyTone, true
	case event.VesselHit:
		return HitTone, true
	case event.BulletFired:
		return FireTone, true
	case event.PhaseChanged:
		if data, ok := e.Data.(event.PhaseChangedData); ok && data.To == "over" {
			return OverTone, true
		}
	}
	return Tone{}, false
}

// Play добавляет тон в микшер
func (sm *SoundManager) Play(tone Tone) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(NewToneStreamer(tone, sampleRate))
	speaker.Unlock()
}

// Cleanup останавливает все звуки и закрывает аудиоустройство
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	closeSpeaker()
	sm.initialized = false
	sm.logger.Debug("audio stopped")
}
