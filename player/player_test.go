package player

import (
	"math/rand"
	"testing"

	"github.com/user/cloudtune-cli/api"
)

func TestNextIndexSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name   string
		cur, n int
		step   int
		repeat bool
		want   int
		wantOK bool
	}{
		{"advance", 0, 3, 1, false, 1, true},
		{"retreat", 2, 3, -1, false, 1, true},
		{"exhaust at end", 2, 3, 1, false, 0, false},
		{"exhaust at start", 0, 3, -1, false, 0, false},
		{"wrap forward with repeat", 2, 3, 1, true, 0, true},
		{"wrap backward with repeat", 0, 3, -1, true, 2, true},
		{"empty queue", -1, 0, 1, true, 0, false},
		{"nothing loaded yet", -1, 5, 1, false, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := nextIndex(tt.cur, tt.n, tt.step, tt.repeat, false, rng)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("nextIndex(%d, %d, %d, repeat=%v) = (%d, %v), want (%d, %v)",
					tt.cur, tt.n, tt.step, tt.repeat, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestNextIndexShuffleAvoidsCurrent(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		got, ok := nextIndex(3, 8, 1, false, true, rng)
		if !ok {
			t.Fatal("shuffle over a non-empty queue must yield a track")
		}
		if got == 3 {
			t.Fatal("shuffle picked the current track again")
		}
		if got < 0 || got >= 8 {
			t.Fatalf("shuffle picked out-of-range index %d", got)
		}
	}
}

func TestNextIndexShuffleSingleTrack(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	if _, ok := nextIndex(0, 1, 1, false, true, rng); ok {
		t.Error("single-track shuffle without repeat should exhaust")
	}
	got, ok := nextIndex(0, 1, 1, true, true, rng)
	if !ok || got != 0 {
		t.Errorf("single-track shuffle with repeat = (%d, %v), want (0, true)", got, ok)
	}
}

func TestSetQueueResetsCurrent(t *testing.T) {
	p := New("")
	p.queue = []api.Song{{ID: 1}, {ID: 2}}
	p.current = 1

	p.SetQueue([]api.Song{{ID: 3}})
	if _, ok := p.Current(); ok {
		t.Error("SetQueue must clear the current track")
	}
}

func TestToggleRepeatAndShuffle(t *testing.T) {
	p := New("")

	if !p.ToggleRepeat() {
		t.Error("first toggle should enable repeat")
	}
	if p.ToggleRepeat() {
		t.Error("second toggle should disable repeat")
	}
	if !p.ToggleShuffle() {
		t.Error("first toggle should enable shuffle")
	}
	if p.ToggleShuffle() {
		t.Error("second toggle should disable shuffle")
	}
}
