package main

import (
	"testing"
	"time"

	"wadview/internal/config"
)

func TestLimiterDisabledDoesNotBlock(t *testing.T) {
	old := config.GetFPSLimit()
	defer config.SetFPSLimit(old)
	config.SetFPSLimit(0)

	f := newFPSLimiter()
	f.next = time.Now().Add(time.Hour)

	start := time.Now()
	f.wait()
	if time.Since(start) > 50*time.Millisecond {
		t.Fatal("wait blocked with limiting disabled")
	}
	if !f.next.IsZero() {
		t.Fatal("deadline not cleared with limiting disabled")
	}
}

func TestLimiterPacesFrames(t *testing.T) {
	old := config.GetFPSLimit()
	defer config.SetFPSLimit(old)
	config.SetFPSLimit(500) // 2ms frames

	f := newFPSLimiter()
	start := time.Now()
	for i := 0; i < 5; i++ {
		f.wait()
	}
	if elapsed := time.Since(start); elapsed < 8*time.Millisecond {
		t.Fatalf("5 frames took %v, want at least 8ms", elapsed)
	}
}

func TestLimiterResyncsAfterHitch(t *testing.T) {
	old := config.GetFPSLimit()
	defer config.SetFPSLimit(old)
	config.SetFPSLimit(500)

	f := newFPSLimiter()
	f.next = time.Now().Add(-time.Second) // simulate a long stall

	start := time.Now()
	f.wait()
	if elapsed := time.Since(start); elapsed > 50*time.Millisecond {
		t.Fatalf("wait after hitch took %v, want one frame", elapsed)
	}
}
