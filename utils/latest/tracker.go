// Package latest makes sure only the most recent request of a kind is acted upon.
//
// Every call to Tracker.Begin for a key supersedes the previous one: its context is cancelled
// and its Ticket stops being current, so a slow response can never overwrite a newer one.
package latest

import (
	"context"
	"sync"
)

// Tracker hands out monotonically increasing tickets per key
type Tracker struct {
	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	seq    uint64
	cancel context.CancelFunc
	active int
}

// Ticket identifies one request started with Tracker.Begin
type Ticket struct {
	tracker *Tracker
	key     string
	seq     uint64
	cancel  context.CancelFunc
	once    sync.Once
}

// NewTracker creates an empty Tracker
func NewTracker() *Tracker {
	return &Tracker{
		entries: map[string]*entry{},
	}
}

// Begin starts a new request for key, cancelling the one in progress (if any).
// The returned context is cancelled when ctx is, when a newer request for key begins, or when
// the ticket is done. Done must be called once the request has finished.
func (t *Tracker) Begin(ctx context.Context, key string) (context.Context, *Ticket) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entries[key]
	if !ok {
		e = &entry{}
		t.entries[key] = e
	}
	if e.cancel != nil {
		e.cancel()
	}

	reqCtx, cancel := context.WithCancel(ctx)
	e.seq++
	e.cancel = cancel
	e.active++

	return reqCtx, &Ticket{
		tracker: t,
		key:     key,
		seq:     e.seq,
		cancel:  cancel,
	}
}

// Seq returns the sequence number of the ticket within its key
func (tk *Ticket) Seq() uint64 {
	return tk.seq
}

// Current reports whether no newer request for the same key has begun
func (tk *Ticket) Current() bool {
	tk.tracker.mu.Lock()
	defer tk.tracker.mu.Unlock()

	e, ok := tk.tracker.entries[tk.key]
	return ok && e.seq == tk.seq
}

// Done releases the ticket. Calling it more than once has no effect
func (tk *Ticket) Done() {
	tk.once.Do(func() {
		tk.cancel()

		tk.tracker.mu.Lock()
		defer tk.tracker.mu.Unlock()

		e, ok := tk.tracker.entries[tk.key]
		if !ok {
			return
		}
		e.active--
		if e.active == 0 {
			delete(tk.tracker.entries, tk.key)
		}
	})
}
