package sound

import (
	"bytes"
	"io/fs"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const (
	SampleRate = 44100

	// voices is the number of players kept per cue so a cue can overlap
	// itself.
	voices = 4

	fallbackMillis = 150
)

// Atlas plays cues through an ebiten audio context.
type Atlas struct {
	ctx    *audio.Context
	fs     fs.FS
	volume float64

	players map[string][]*audio.Player
	next    map[string]int
}

// NewAtlas preloads cues from fsys. A nil context yields an atlas that plays
// nothing.
func NewAtlas(ctx *audio.Context, fsys fs.FS, volume float64, cues ...string) *Atlas {
	a := &Atlas{
		ctx:     ctx,
		fs:      fsys,
		volume:  volume,
		players: make(map[string][]*audio.Player),
		next:    make(map[string]int),
	}
	for _, cue := range cues {
		a.load(cue)
	}
	return a
}

func (a *Atlas) load(cue string) []*audio.Player {
	if a.ctx == nil {
		return nil
	}
	if p, ok := a.players[cue]; ok {
		return p
	}

	data := readCue(a.fs, cue)
	players := make([]*audio.Player, 0, voices)
	for i := 0; i < voices; i++ {
		p, err := a.loadStream(data)
		if err != nil {
			logMissing(cue, err)
			break
		}
		players = append(players, p)
	}
	a.players[cue] = players
	return players
}

func (a *Atlas) loadStream(data []byte) (*audio.Player, error) {
	stream, err := wav.DecodeWithSampleRate(SampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	p, err := a.ctx.NewPlayer(stream)
	if err != nil {
		return nil, err
	}

	// Workaround to prevent delays when playing for the first time.
	p.SetVolume(0)
	p.Play()
	p.Pause()
	p.Rewind()

	return p, nil
}

// Play starts cue on its next voice.
func (a *Atlas) Play(cue string) {
	players := a.load(cue)
	if len(players) == 0 {
		return
	}

	p := players[a.next[cue]]
	a.next[cue] = (a.next[cue] + 1) % len(players)

	p.Pause()
	p.Rewind()
	p.SetVolume(a.volume)
	p.Play()
}

// readCue returns the WAV bytes of cue, or a synthesized beep when the file
// cannot be read.
func readCue(fsys fs.FS, cue string) []byte {
	data, err := fs.ReadFile(fsys, cue)
	if err != nil {
		logMissing(cue, err)
		return synthWAV(SampleRate, fallbackMillis, fallbackTone(cue))
	}
	return data
}

// synthWAV returns a 16-bit mono PCM WAV holding a sine beep.
func synthWAV(sampleRate, durationMs int, freq float64) []byte {
	n := sampleRate * durationMs / 1000
	dataSize := n * 2
	buf := make([]byte, 44+dataSize)

	copy(buf[0:4], "RIFF")
	putLE32(buf[4:8], uint32(len(buf)-8))
	copy(buf[8:12], "WAVE")
	copy(buf[12:16], "fmt ")
	putLE32(buf[16:20], 16)
	putLE16(buf[20:22], 1) // PCM
	putLE16(buf[22:24], 1) // mono
	putLE32(buf[24:28], uint32(sampleRate))
	putLE32(buf[28:32], uint32(sampleRate*2))
	putLE16(buf[32:34], 2)
	putLE16(buf[34:36], 16)
	copy(buf[36:40], "data")
	putLE32(buf[40:44], uint32(dataSize))

	for i := 0; i < n; i++ {
		s := math.Sin(2 * math.Pi * freq * float64(i) / float64(sampleRate))
		// Fade out to avoid a click at the end.
		env := 1 - float64(i)/float64(n)
		v := int16(s * env * 0.25 * math.MaxInt16)
		buf[44+i*2] = byte(v)
		buf[44+i*2+1] = byte(v >> 8)
	}
	return buf
}

func putLE16(b []byte, v uint16) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
}

func putLE32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}
