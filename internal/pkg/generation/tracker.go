package generation

import (
	"context"
	"sync"

	"theater-console/internal/pkg/errs"
)

var ErrSuperseded = errs.New("superseded by a newer request")

// Tracker tags each request for a key with a monotonically increasing generation.
// Starting a new request for a key cancels the one still in flight, and a response
// whose ticket is no longer current must be discarded.
type Tracker[K comparable] struct {
	mu       sync.Mutex
	seq      uint64
	inflight map[K]*Ticket[K]
}

type Ticket[K comparable] struct {
	tracker *Tracker[K]
	key     K
	gen     uint64
	cancel  context.CancelFunc
}

func NewTracker[K comparable]() *Tracker[K] {
	return &Tracker[K]{inflight: make(map[K]*Ticket[K])}
}

func (t *Tracker[K]) Begin(ctx context.Context, key K) (*Ticket[K], context.Context) {
	ctx, cancel := context.WithCancel(ctx)

	t.mu.Lock()
	defer t.mu.Unlock()

	if prev, ok := t.inflight[key]; ok {
		prev.cancel()
	}
	t.seq++
	ticket := &Ticket[K]{tracker: t, key: key, gen: t.seq, cancel: cancel}
	t.inflight[key] = ticket
	return ticket, ctx
}

func (t *Tracker[K]) latest(key K) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	if cur, ok := t.inflight[key]; ok {
		return cur.gen
	}
	return 0
}

func (tk *Ticket[K]) Generation() uint64 {
	return tk.gen
}

func (tk *Ticket[K]) Current() bool {
	return tk.tracker.latest(tk.key) == tk.gen
}

// Done releases the ticket. It reports whether the ticket was still current;
// a false return means the caller's result must be dropped.
func (tk *Ticket[K]) Done() bool {
	tk.cancel()

	tk.tracker.mu.Lock()
	defer tk.tracker.mu.Unlock()
	cur, ok := tk.tracker.inflight[tk.key]
	if !ok || cur.gen != tk.gen {
		return false
	}
	delete(tk.tracker.inflight, tk.key)
	return true
}
