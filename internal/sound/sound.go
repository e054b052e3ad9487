// Package sound plays entity cues. A cue is the path of a WAV file; playing
// it is fire and forget; a cue cannot be stopped or queried once started.
package sound

import (
	"hash/fnv"
	"log"
)

// Player plays a cue without blocking.
type Player interface {
	Play(cue string)
}

// Mute drops every cue.
type Mute struct{}

func (Mute) Play(string) {}

// Switchboard sits between the entities and a backend. It counts the cues
// played and can silence them. It belongs to the game loop goroutine.
type Switchboard struct {
	out    Player
	muted  bool
	counts map[string]int
	total  int
}

// NewSwitchboard forwards cues to out.
func NewSwitchboard(out Player) *Switchboard {
	return &Switchboard{out: out, counts: make(map[string]int)}
}

// Play forwards cue unless muted. Muted cues are still counted.
func (s *Switchboard) Play(cue string) {
	s.counts[cue]++
	s.total++
	if !s.muted {
		s.out.Play(cue)
	}
}

// SetMuted silences or restores playback.
func (s *Switchboard) SetMuted(muted bool) {
	s.muted = muted
}

// Muted reports whether playback is silenced.
func (s *Switchboard) Muted() bool {
	return s.muted
}

// Count returns how many times cue was played.
func (s *Switchboard) Count(cue string) int {
	return s.counts[cue]
}

// Total returns the number of cues played.
func (s *Switchboard) Total() int {
	return s.total
}

// fallbackTone picks the pitch of the beep played in place of a missing cue.
func fallbackTone(cue string) float64 {
	h := fnv.New32a()
	h.Write([]byte(cue))
	return 220 + float64(h.Sum32()%8)*110
}

func logMissing(cue string, err error) {
	log.Printf("cue %s unavailable, using a beep: %s", cue, err)
}
