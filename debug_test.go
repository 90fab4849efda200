package pong

import (
	"bytes"
	"strings"
	"testing"
)

func captureDebug(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := debugOutput
	debugOutput = &buf
	t.Cleanup(func() { debugOutput = prev })
	return &buf
}

func TestDebugModeLogsEvents(t *testing.T) {
	buf := captureDebug(t)
	s := newTestSession()
	s.SetDebugMode(true)
	s.State().Ball.X = -1
	s.State().Ball.VelX = -300
	s.Update(1.0 / 60)

	out := buf.String()
	if !strings.Contains(out, "[pong] tick 1: goal side=right") {
		t.Errorf("missing goal line in %q", out)
	}
}

func TestDebugModeSummary(t *testing.T) {
	buf := captureDebug(t)
	s := newTestSession()
	s.SetDebugMode(true)
	for i := 0; i < debugSummaryEvery; i++ {
		s.Update(1.0 / 240)
	}
	if !strings.Contains(buf.String(), "particles: 0") {
		t.Errorf("missing summary line in %q", buf.String())
	}
}

func TestDebugModeOffIsSilent(t *testing.T) {
	buf := captureDebug(t)
	s := newTestSession()
	for i := 0; i < 2*debugSummaryEvery; i++ {
		s.Update(1.0 / 60)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected debug output %q", buf.String())
	}
}

func TestEventKindString(t *testing.T) {
	if EventPaddleHit.String() != "paddle-hit" || EventKind(9).String() != "EventKind(9)" {
		t.Error("unexpected EventKind names")
	}
}
