package sound

import (
	"bytes"
	"fmt"
	"io/fs"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

const speakerRate = beep.SampleRate(SampleRate)

// Speaker plays cues through the beep speaker. Cues are decoded once and
// kept in memory.
type Speaker struct {
	mu      sync.Mutex
	fs      fs.FS
	buffers map[string]*beep.Buffer
}

// NewSpeaker opens the audio device and preloads cues from fsys.
func NewSpeaker(fsys fs.FS, cues ...string) (*Speaker, error) {
	err := speaker.Init(speakerRate, speakerRate.N(time.Second/10))
	if err != nil {
		return nil, fmt.Errorf("failed to open speaker: %w", err)
	}

	s := &Speaker{
		fs:      fsys,
		buffers: make(map[string]*beep.Buffer),
	}
	for _, cue := range cues {
		s.buffer(cue)
	}
	return s, nil
}

func (s *Speaker) buffer(cue string) *beep.Buffer {
	s.mu.Lock()
	defer s.mu.Unlock()

	if b, ok := s.buffers[cue]; ok {
		return b
	}
	b, err := decodeCue(readCue(s.fs, cue))
	if err != nil {
		logMissing(cue, err)
		b = toneBuffer(fallbackTone(cue))
	}
	s.buffers[cue] = b
	return b
}

// Play queues cue on the speaker mixer.
func (s *Speaker) Play(cue string) {
	b := s.buffer(cue)
	speaker.Play(b.Streamer(0, b.Len()))
}

// Close stops everything still playing and releases the device.
func (s *Speaker) Close() {
	speaker.Clear()
	speaker.Close()
}

func decodeCue(data []byte) (*beep.Buffer, error) {
	streamer, format, err := wav.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode wav: %w", err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != speakerRate {
		src = beep.Resample(4, format.SampleRate, speakerRate, streamer)
	}

	b := beep.NewBuffer(beep.Format{SampleRate: speakerRate, NumChannels: 2, Precision: 2})
	b.Append(src)
	return b, nil
}

func toneBuffer(freq float64) *beep.Buffer {
	b := beep.NewBuffer(beep.Format{SampleRate: speakerRate, NumChannels: 2, Precision: 2})
	tone, err := generators.SineTone(speakerRate, freq)
	if err != nil {
		return b
	}
	b.Append(beep.Take(speakerRate.N(fallbackMillis*time.Millisecond), tone))
	return b
}
