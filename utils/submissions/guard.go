// Package submissions rejects repeated submissions of the same rendered form.
package submissions

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/unicsmcr/hs_employees/config"
	"github.com/unicsmcr/hs_employees/utils"
)

var (
	// ErrDuplicate is returned when the submission is already being processed or was accepted
	ErrDuplicate = errors.New("duplicate submission")
	// ErrInvalidID is returned when the submission id is missing or malformed
	ErrInvalidID = errors.New("invalid submission id")
)

type state int

const (
	inFlight state = iota
	accepted
)

type submission struct {
	state   state
	started time.Time
}

// Guard tracks submission ids handed out with rendered forms
type Guard struct {
	mu           sync.Mutex
	ttl          time.Duration
	timeProvider utils.TimeProvider
	submissions  map[string]submission
}

// NewGuard creates a Guard that remembers submissions for the configured TTL
func NewGuard(cfg *config.AppConfig, timeProvider utils.TimeProvider) *Guard {
	return &Guard{
		ttl:          cfg.Employees.SubmissionTTL,
		timeProvider: timeProvider,
		submissions:  map[string]submission{},
	}
}

// NewID returns a fresh submission id to embed in a form
func (g *Guard) NewID() string {
	return uuid.New().String()
}

// Begin marks id as in flight.
// Returns ErrDuplicate when id is in flight or was accepted within the TTL
func (g *Guard) Begin(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errors.Wrap(ErrInvalidID, err.Error())
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.timeProvider.Now()
	g.prune(now)

	if _, exists := g.submissions[id]; exists {
		return ErrDuplicate
	}
	g.submissions[id] = submission{state: inFlight, started: now}

	return nil
}

// Accept records that the submission with id succeeded; later attempts are duplicates
func (g *Guard) Accept(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if s, exists := g.submissions[id]; exists {
		s.state = accepted
		g.submissions[id] = s
	}
}

// Release forgets the submission with id so it can be retried
func (g *Guard) Release(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.submissions, id)
}

func (g *Guard) prune(now time.Time) {
	if g.ttl <= 0 {
		return
	}
	for id, s := range g.submissions {
		if now.Sub(s.started) > g.ttl {
			delete(g.submissions, id)
		}
	}
}
