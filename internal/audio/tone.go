package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Tone — короткий звуковой сигнал
type Tone struct {
	Freq     float64       // начальная частота, Гц
	Sweep    float64       // изменение частоты к концу сигнала, Гц
	Duration time.Duration
	Volume   float64
}

// toneStreamer генерирует синус с линейным затуханием и сдвигом частоты
type toneStreamer struct {
	tone     Tone
	rate     beep.SampleRate
	phase    float64
	position int
	total    int
}

// NewToneStreamer создаёт конечный поток для тона.
func NewToneStreamer(tone Tone, rate beep.SampleRate) beep.Streamer {
	return &toneStreamer{tone: tone, rate: rate, total: rate.N(tone.Duration)}
}

func (s *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}
		progress := float64(s.position) / float64(s.total)
		envelope := s.tone.Volume * (1 - progress)
		val := envelope * math.Sin(2*math.Pi*s.phase)
		samples[i][0] = val
		samples[i][1] = val

		freq := s.tone.Freq + s.tone.Sweep*progress
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *toneStreamer) Err() error { return nil }
