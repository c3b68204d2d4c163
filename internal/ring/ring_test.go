package ring

import (
	"fmt"
	"reflect"
	"sync"
	"testing"
)

func TestBuffer_PushAndSnapshot(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		pushes   int
		expected []int
	}{
		{"empty", 4, 0, nil},
		{"under capacity", 4, 2, []int{0, 1}},
		{"exactly capacity", 4, 4, []int{0, 1, 2, 3}},
		{"one over", 4, 5, []int{1, 2, 3, 4}},
		{"many over", 4, 100, []int{96, 97, 98, 99}},
		{"capacity one", 1, 3, []int{2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New[int](tt.capacity)
			for i := 0; i < tt.pushes; i++ {
				b.Push(i)
			}
			if got := b.Snapshot(); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Snapshot() = %v, want %v", got, tt.expected)
			}
			want := tt.pushes
			if want > tt.capacity {
				want = tt.capacity
			}
			if got := b.Len(); got != want {
				t.Errorf("Len() = %d, want %d", got, want)
			}
		})
	}
}

func TestBuffer_NeverExceedsCapacity(t *testing.T) {
	b := New[string](8)
	for i := 0; i < 1000; i++ {
		b.Push(fmt.Sprintf("line %d", i))
		if b.Len() > 8 {
			t.Fatalf("Len() = %d after %d pushes, want <= 8", b.Len(), i+1)
		}
	}
	snap := b.Snapshot()
	if len(snap) != 8 {
		t.Fatalf("Snapshot() has %d items, want 8", len(snap))
	}
	if snap[0] != "line 992" || snap[7] != "line 999" {
		t.Fatalf("Snapshot() = %v, want last 8 pushes in order", snap)
	}
}

func TestBuffer_SnapshotIsIndependent(t *testing.T) {
	b := New[int](4)
	b.Push(1)
	b.Push(2)

	snap := b.Snapshot()
	b.Push(3)
	b.Push(4)
	b.Push(5)

	if !reflect.DeepEqual(snap, []int{1, 2}) {
		t.Fatalf("earlier snapshot changed after pushes: %v", snap)
	}
	if got := b.Snapshot(); !reflect.DeepEqual(got, []int{2, 3, 4, 5}) {
		t.Fatalf("Snapshot() = %v, want [2 3 4 5]", got)
	}
}

func TestBuffer_ZeroCapacityClamped(t *testing.T) {
	b := New[int](0)
	b.Push(1)
	b.Push(2)
	if got := b.Snapshot(); !reflect.DeepEqual(got, []int{2}) {
		t.Fatalf("Snapshot() = %v, want [2]", got)
	}
	if b.Cap() != 1 {
		t.Fatalf("Cap() = %d, want 1", b.Cap())
	}
}

func TestBuffer_ConcurrentPushAndSnapshot(t *testing.T) {
	b := New[int](64)
	done := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; ; i++ {
			select {
			case <-done:
				return
			default:
				b.Push(i)
			}
		}
	}()

	// Snapshots taken while the writer runs must always be internally
	// consistent: in push order with no gaps.
	for i := 0; i < 200; i++ {
		snap := b.Snapshot()
		for j := 1; j < len(snap); j++ {
			if snap[j] != snap[j-1]+1 {
				t.Fatalf("torn snapshot at %d: %v", j, snap)
			}
		}
		if len(snap) > 64 {
			t.Fatalf("snapshot larger than capacity: %d", len(snap))
		}
	}
	close(done)
	wg.Wait()
}
