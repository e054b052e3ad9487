package main

import (
	"testing"

	"code.rocketnine.space/tslocum/skyraid/internal/entity"
)

func TestRequestExitFromAnotherGoroutine(t *testing.T) {
	g := &game{crates: make([]*entity.Crate, 0, 3)}
	if g.quit.Load() {
		t.Fatal("quit set on a new game")
	}

	done := make(chan struct{})
	go func() {
		g.requestExit()
		close(done)
	}()
	<-done

	if !g.quit.Load() {
		t.Fatal("quit not set after requestExit()")
	}
	// The level is released by the game loop, not by the caller.
	if g.crates == nil {
		t.Fatal("requestExit() released the level")
	}
}
