package store

import "time"

// NeedStage is the clarification slot-filling stage of a session.
type NeedStage int

const (
	NeedStageIdle NeedStage = iota
	NeedStageAwaitClarification1
	NeedStageAwaitClarification2
)

// MaxHistoryEntries caps the per-session history; oldest entries are evicted first.
const MaxHistoryEntries = 20

// HistoryEntry is a single chat turn kept in session memory.
type HistoryEntry struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"ts"`
}

// Session represents the active conversation state in memory.
// One per session identifier, created lazily on first message.
type Session struct {
	ID                 string         `json:"id"`
	History            []HistoryEntry `json:"history"`
	LastResults        []ProductMatch `json:"last_results"`
	NeedStage          NeedStage      `json:"need_stage"`
	PendingNeedMessage string         `json:"pending_need_message"`
}

// PushHistory appends an entry and evicts the oldest beyond the cap.
func (s *Session) PushHistory(role, content string) {
	s.History = append(s.History, HistoryEntry{
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	})
	if len(s.History) > MaxHistoryEntries {
		s.History = s.History[len(s.History)-MaxHistoryEntries:]
	}
}
