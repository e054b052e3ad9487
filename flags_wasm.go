//go:build js && wasm
// +build js,wasm

package main

func parseFlags() *options {
	return &options{
		dataDir:      ".",
		audio:        audioEbiten,
		crates:       -1,
		placeholders: true,
	}
}
