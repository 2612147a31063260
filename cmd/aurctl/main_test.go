package main

import "testing"

func TestRunUnknownCommand(t *testing.T) {
	if code := run([]string{"aurctl", "frobnicate"}); code != 1 {
		t.Fatalf("run(frobnicate) = %d, want 1", code)
	}
}

func TestRunNoCommand(t *testing.T) {
	if code := run([]string{"aurctl"}); code != 1 {
		t.Fatalf("run() with no command = %d, want 1", code)
	}
}

func TestRunRejectsBadGlobalFlag(t *testing.T) {
	if code := run([]string{"aurctl", "-bogus", "lookup", "x"}); code != 1 {
		t.Fatalf("run with an unknown global flag = %d, want 1", code)
	}
}
