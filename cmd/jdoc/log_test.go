package main

import (
	"context"
	"log/slog"
	"testing"
)

func verbose() bool {
	return theLog.Enabled(context.Background(), slog.LevelDebug)
}

func TestSetVerbose(t *testing.T) {
	defer setVerbose(false)
	if verbose() {
		t.Fatal("debug logging on by default")
	}
	setVerbose(true)
	if !verbose() {
		t.Error("debug logging not enabled")
	}
	setVerbose(false)
	if verbose() {
		t.Error("debug logging not disabled")
	}
}
