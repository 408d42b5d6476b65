package lifecycle

import "testing"

func TestCanTransition(t *testing.T) {
	if !CanTransition(StatusActive, StatusInProcess) {
		t.Fatal("expected active -> in_process to be allowed")
	}
	if !CanTransition(StatusInProcess, StatusCompleted) {
		t.Fatal("expected in_process -> completed to be allowed")
	}
	if !CanTransition(StatusActive, StatusCancelled) {
		t.Fatal("expected active -> cancelled to be allowed")
	}
	if CanTransition(StatusActive, StatusCompleted) {
		t.Fatal("unexpected transition allowed: active -> completed")
	}
	if CanTransition(StatusCompleted, StatusInProcess) {
		t.Fatal("unexpected transition allowed: completed -> in_process")
	}
	if CanTransition(StatusInProcess, StatusActive) {
		t.Fatal("unexpected transition allowed: in_process -> active")
	}
}

func TestReopenEdges(t *testing.T) {
	if !CanTransition(StatusCompleted, StatusActive) {
		t.Fatal("expected completed -> active reopen to be allowed")
	}
	if !CanTransition(StatusCancelled, StatusActive) {
		t.Fatal("expected cancelled -> active reopen to be allowed")
	}
	if !IsReopen(StatusCompleted, StatusActive) {
		t.Fatal("completed -> active should count as reopen")
	}
	if IsReopen(StatusActive, StatusInProcess) {
		t.Fatal("active -> in_process should not count as reopen")
	}
}

func TestIsTerminal(t *testing.T) {
	cases := []struct {
		status   string
		terminal bool
	}{
		{StatusActive, false},
		{StatusInProcess, false},
		{StatusCompleted, true},
		{StatusCancelled, true},
	}
	for _, c := range cases {
		if got := IsTerminal(c.status); got != c.terminal {
			t.Errorf("IsTerminal(%q) = %v, want %v", c.status, got, c.terminal)
		}
	}
}

func TestKnown(t *testing.T) {
	if !Known(StatusActive) || !Known(StatusCancelled) {
		t.Fatal("known statuses reported as unknown")
	}
	if Known("archived") {
		t.Fatal("unknown status reported as known")
	}
}
