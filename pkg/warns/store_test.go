package warns

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestMemoryStoreEmpty(t *testing.T) {
	s := NewMemoryStore()

	list, err := s.List("g1", "u1")
	if err != nil {
		t.Fatalf("List() returned error: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("List() on empty store = %d warns, want 0", len(list))
	}

	count, err := s.Count("g1", "u1")
	if err != nil {
		t.Fatalf("Count() returned error: %v", err)
	}
	if count != 0 {
		t.Errorf("Count() on empty store = %d, want 0", count)
	}
}

func TestMemoryStoreFirstRecord(t *testing.T) {
	s := NewMemoryStore()

	count, warn, err := s.Record("g1", "u1", "spamming", "mod#0001")
	if err != nil {
		t.Fatalf("Record() returned error: %v", err)
	}
	if count != 1 {
		t.Errorf("Record() count = %d, want 1", count)
	}
	if warn.ID == "" {
		t.Error("Record() returned warn without ID")
	}
	if warn.Reason != "spamming" {
		t.Errorf("warn.Reason = %q, want %q", warn.Reason, "spamming")
	}
	if warn.Moderator != "mod#0001" {
		t.Errorf("warn.Moderator = %q, want %q", warn.Moderator, "mod#0001")
	}
	if warn.Timestamp == 0 {
		t.Error("Record() returned warn without timestamp")
	}
}

func TestMemoryStoreAppendOnly(t *testing.T) {
	s := NewMemoryStore()

	const n = 5
	for i := 1; i <= n; i++ {
		count, _, err := s.Record("g1", "u1", fmt.Sprintf("razón %d", i), "mod#0001")
		if err != nil {
			t.Fatalf("Record() #%d returned error: %v", i, err)
		}
		if count != i {
			t.Errorf("Record() #%d count = %d, want %d", i, count, i)
		}
	}

	list, err := s.List("g1", "u1")
	if err != nil {
		t.Fatalf("List() returned error: %v", err)
	}
	if len(list) != n {
		t.Fatalf("List() = %d warns, want %d", len(list), n)
	}

	// Insertion order is preserved
	for i, warn := range list {
		want := fmt.Sprintf("razón %d", i+1)
		if warn.Reason != want {
			t.Errorf("List()[%d].Reason = %q, want %q", i, warn.Reason, want)
		}
	}
}

func TestMemoryStoreGuildScoping(t *testing.T) {
	s := NewMemoryStore()

	s.Record("g1", "u1", "a", "mod#0001")
	s.Record("g2", "u1", "b", "mod#0001")
	s.Record("g2", "u1", "c", "mod#0001")

	c1, _ := s.Count("g1", "u1")
	c2, _ := s.Count("g2", "u1")

	if c1 != 1 {
		t.Errorf("Count(g1, u1) = %d, want 1", c1)
	}
	if c2 != 2 {
		t.Errorf("Count(g2, u1) = %d, want 2", c2)
	}
}

func TestMemoryStoreListIsCopy(t *testing.T) {
	s := NewMemoryStore()
	s.Record("g1", "u1", "original", "mod#0001")

	list, _ := s.List("g1", "u1")
	list[0].Reason = "mutated"

	again, _ := s.List("g1", "u1")
	if again[0].Reason != "original" {
		t.Error("List() exposes internal state to mutation")
	}
}

func TestMemoryStoreConcurrentRecords(t *testing.T) {
	s := NewMemoryStore()

	const goroutines = 20
	var wg sync.WaitGroup
	seen := make(chan int, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			count, _, err := s.Record("g1", "u1", "concurrent", "mod#0001")
			if err != nil {
				t.Errorf("Record() returned error: %v", err)
				return
			}
			seen <- count
		}()
	}
	wg.Wait()
	close(seen)

	// Every returned count is unique: record+count is one atomic step
	unique := make(map[int]bool)
	for c := range seen {
		if unique[c] {
			t.Errorf("Record() returned duplicate count %d under concurrency", c)
		}
		unique[c] = true
	}

	total, _ := s.Count("g1", "u1")
	if total != goroutines {
		t.Errorf("Count() = %d, want %d", total, goroutines)
	}
}

func TestShouldEscalate(t *testing.T) {
	tests := []struct {
		previous int
		count    int
		want     bool
	}{
		{0, 1, false},
		{1, 2, false},
		{2, 3, true},
		{3, 4, false},
		{4, 5, false},
		{2, 5, true}, // jump past the threshold still fires
		{0, 3, true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d->%d", tt.previous, tt.count), func(t *testing.T) {
			if got := ShouldEscalate(tt.previous, tt.count); got != tt.want {
				t.Errorf("ShouldEscalate(%d, %d) = %v, want %v", tt.previous, tt.count, got, tt.want)
			}
		})
	}
}

func TestEscalationConstants(t *testing.T) {
	if EscalationThreshold != 3 {
		t.Errorf("EscalationThreshold = %d, want 3", EscalationThreshold)
	}
	if EscalationTimeout != time.Hour {
		t.Errorf("EscalationTimeout = %v, want 1h", EscalationTimeout)
	}
}
