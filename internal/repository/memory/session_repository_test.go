package memory

import (
	"strconv"
	"sync"
	"testing"

	"ai-shopchat-be/pkg/store"
)

func TestGetOrCreateReturnsSameSession(t *testing.T) {
	repo := NewSessionRepository()

	a := repo.GetOrCreate("s1")
	a.PendingNeedMessage = "피로"
	b := repo.GetOrCreate("s1")

	if a != b {
		t.Error("GetOrCreate should return the same session instance")
	}
	if b.PendingNeedMessage != "피로" {
		t.Error("session state should persist between calls")
	}
}

func TestGetAndDelete(t *testing.T) {
	repo := NewSessionRepository()

	if _, found := repo.Get("missing"); found {
		t.Error("Get should miss for unknown session")
	}

	repo.GetOrCreate("s1")
	if _, found := repo.Get("s1"); !found {
		t.Error("Get should hit after GetOrCreate")
	}

	repo.Delete("s1")
	if _, found := repo.Get("s1"); found {
		t.Error("Get should miss after Delete")
	}
}

func TestDeleteFreesSessionLock(t *testing.T) {
	repo := NewSessionRepository()

	// Session IDs are client-supplied; the lock map must not outlive the
	// cached sessions.
	for i := 0; i < 1000; i++ {
		id := "s" + strconv.Itoa(i)
		repo.Lock(id)
		repo.GetOrCreate(id)
		repo.Unlock(id)
		repo.Delete(id)
	}

	repo.mu.Lock()
	remaining := len(repo.locks)
	repo.mu.Unlock()
	if remaining != 0 {
		t.Errorf("lock map should be empty after all sessions were deleted, got %d entries", remaining)
	}
}

func TestPerSessionLockSerializes(t *testing.T) {
	repo := NewSessionRepository()
	session := repo.GetOrCreate("s1")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			repo.Lock("s1")
			defer repo.Unlock("s1")
			session.PushHistory("user", "msg")
		}()
	}
	wg.Wait()

	if len(session.History) != store.MaxHistoryEntries {
		t.Errorf("history length = %d, want capped at %d", len(session.History), store.MaxHistoryEntries)
	}
}
