package store

import (
	"fmt"
	"testing"
)

func TestPushHistoryEviction(t *testing.T) {
	s := &Session{ID: "s1"}

	for i := 0; i < MaxHistoryEntries+5; i++ {
		s.PushHistory("user", fmt.Sprintf("message %d", i))
	}

	if len(s.History) != MaxHistoryEntries {
		t.Fatalf("history length = %d, want %d", len(s.History), MaxHistoryEntries)
	}
	// Oldest entries evicted, newest kept.
	if s.History[0].Content != "message 5" {
		t.Errorf("oldest entry = %q, want %q", s.History[0].Content, "message 5")
	}
	last := s.History[len(s.History)-1]
	if last.Content != fmt.Sprintf("message %d", MaxHistoryEntries+4) {
		t.Errorf("newest entry = %q", last.Content)
	}
}

func TestPushHistoryRolesAndTimestamps(t *testing.T) {
	s := &Session{ID: "s1"}
	s.PushHistory("user", "질문")
	s.PushHistory("assistant", "답변")

	if len(s.History) != 2 {
		t.Fatalf("history length = %d, want 2", len(s.History))
	}
	if s.History[0].Role != "user" || s.History[1].Role != "assistant" {
		t.Errorf("unexpected roles %q, %q", s.History[0].Role, s.History[1].Role)
	}
	if s.History[0].Timestamp.IsZero() {
		t.Error("timestamp should be set")
	}
}
