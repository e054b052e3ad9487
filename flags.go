//go:build !js || !wasm
// +build !js !wasm

package main

import (
	"flag"
)

func parseFlags() *options {
	o := &options{}
	flag.StringVar(&o.dataDir, "data", ".", "Directory holding the data/ assets")
	flag.StringVar(&o.configPath, "config", "", "Tuning file (TOML)")
	flag.StringVar(&o.audio, "audio", audioEbiten, "Audio backend: ebiten, beep or none")
	flag.IntVar(&o.crates, "crates", -1, "Number of crates (overrides the tuning file)")
	flag.BoolVar(&o.muteAudio, "mute", false, "Mute audio")
	flag.BoolVar(&o.debugMode, "debug", false, "Enable debug mode")
	flag.BoolVar(&o.placeholders, "placeholders", false, "Draw generated art for missing bitmaps")
	flag.BoolVar(&o.fullscreen, "fullscreen", false, "Start in fullscreen")
	flag.Parse()
	return o
}
