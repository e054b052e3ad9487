package main

import (
	"fmt"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"code.rocketnine.space/tslocum/skyraid/internal/sound"
)

const (
	audioEbiten = "ebiten"
	audioBeep   = "beep"
	audioNone   = "none"
)

// newAudio returns the cue backend named by backend and a function
// releasing it.
func newAudio(backend string, fsys fs.FS, volume float64, cues []string) (sound.Player, func(), error) {
	switch backend {
	case audioEbiten:
		ctx := audio.NewContext(sound.SampleRate)
		return sound.NewAtlas(ctx, fsys, volume, cues...), func() {}, nil
	case audioBeep:
		s, err := sound.NewSpeaker(fsys, cues...)
		if err != nil {
			// Non-fatal, the game can run without sound.
			log.Printf("Audio initialization failed: %v", err)
			return sound.Mute{}, func() {}, nil
		}
		return s, s.Close, nil
	case audioNone:
		return sound.Mute{}, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown audio backend %q", backend)
	}
}
