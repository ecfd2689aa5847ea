package service

import (
	"sync"
	"testing"
)

func TestJobRegistrySingleFlight(t *testing.T) {
	r := NewJobRegistry()

	if !r.Begin(JobInsertPoints) {
		t.Fatal("first Begin should succeed")
	}
	if r.Begin(JobInsertPoints) {
		t.Error("second Begin of the same job should fail while running")
	}
	if !r.Begin(JobCreateCollection) {
		t.Error("a different job name must not be blocked")
	}

	r.End(JobInsertPoints)
	if !r.Begin(JobInsertPoints) {
		t.Error("Begin should succeed again after End")
	}
}

func TestJobRegistryConcurrentBegin(t *testing.T) {
	r := NewJobRegistry()

	const attempts = 50
	var wg sync.WaitGroup
	var mu sync.Mutex
	won := 0

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if r.Begin(JobInsertPoints) {
				mu.Lock()
				won++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if won != 1 {
		t.Errorf("expected exactly one winner, got %d", won)
	}
}
