package player

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/user/cloudtune-cli/api"
)

// Player is the shared audio player. It wraps the mpv IPC client with a
// track queue and repeat/shuffle state. Like the API client it is shared
// with background collaborators, so every exported method holds the
// guard for one logical operation only.
type Player struct {
	mu sync.Mutex

	mpv *mpvClient
	rng *rand.Rand

	queue   []api.Song
	current int // index into queue, -1 when nothing loaded
	repeat  bool
	shuffle bool
}

// New creates a Player speaking to the mpv socket at socketPath
// (DefaultSocketPath when empty). Connect must be called before playback.
func New(socketPath string) *Player {
	return &Player{
		mpv:     newMpvClient(socketPath),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		current: -1,
	}
}

// Connect dials the mpv IPC socket.
func (p *Player) Connect() error {
	return p.mpv.connect()
}

// Close disconnects from mpv.
func (p *Player) Close() error {
	return p.mpv.close()
}

// IsConnected reports whether the mpv socket is connected.
func (p *Player) IsConnected() bool {
	return p.mpv.isConnected()
}

// Position returns the current playback position. The second return is
// false when nothing is playing or mpv is unreachable.
func (p *Player) Position() (time.Duration, bool) {
	if !p.mpv.isConnected() {
		return 0, false
	}
	secs, err := p.mpv.timePos()
	if err != nil {
		return 0, false
	}
	return time.Duration(secs * float64(time.Second)), true
}

// Duration returns the duration of the current track. The second return
// is false when nothing is playing or mpv is unreachable.
func (p *Player) Duration() (time.Duration, bool) {
	if !p.mpv.isConnected() {
		return 0, false
	}
	secs, err := p.mpv.duration()
	if err != nil {
		return 0, false
	}
	return time.Duration(secs * float64(time.Second)), true
}

// Current returns the song loaded into mpv, if any.
func (p *Player) Current() (api.Song, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current < 0 || p.current >= len(p.queue) {
		return api.Song{}, false
	}
	return p.queue[p.current], true
}

// SetQueue replaces the track queue. The current index is reset; the
// next Load establishes it.
func (p *Player) SetQueue(songs []api.Song) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.queue = append([]api.Song(nil), songs...)
	p.current = -1
}

// Load starts playing the song at the given queue index from url.
func (p *Player) Load(index int, url string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if index < 0 || index >= len(p.queue) {
		return fmt.Errorf("player: queue index %d out of range", index)
	}
	if err := p.mpv.loadFile(url); err != nil {
		return err
	}
	p.current = index
	return nil
}

// TogglePause flips the mpv pause property.
func (p *Player) TogglePause() error {
	paused, err := p.mpv.paused()
	if err != nil {
		return err
	}
	return p.mpv.setProperty("pause", !paused)
}

// ToggleRepeat flips repeat mode and returns the new value.
func (p *Player) ToggleRepeat() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.repeat = !p.repeat
	return p.repeat
}

// ToggleShuffle flips shuffle mode and returns the new value.
func (p *Player) ToggleShuffle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.shuffle = !p.shuffle
	return p.shuffle
}

// NextIndex returns the queue index that would play after the current
// track, honouring repeat and shuffle. The second return is false when
// the queue is exhausted (or empty).
func (p *Player) NextIndex() (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return nextIndex(p.current, len(p.queue), 1, p.repeat, p.shuffle, p.rng)
}

// PrevIndex returns the queue index that would play before the current track.
func (p *Player) PrevIndex() (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return nextIndex(p.current, len(p.queue), -1, p.repeat, p.shuffle, p.rng)
}

// nextIndex computes queue advancement. step is +1 or -1. With shuffle a
// random index other than cur is chosen (when the queue has more than
// one track); with repeat the index wraps instead of exhausting.
func nextIndex(cur, n, step int, repeat, shuffle bool, rng *rand.Rand) (int, bool) {
	if n == 0 {
		return 0, false
	}
	if cur < 0 {
		return 0, true
	}
	if shuffle {
		if n == 1 {
			return cur, repeat
		}
		next := rng.Intn(n - 1)
		if next >= cur {
			next++
		}
		return next, true
	}

	next := cur + step
	if next < 0 || next >= n {
		if !repeat {
			return 0, false
		}
		next = (next + n) % n
	}
	return next, true
}
