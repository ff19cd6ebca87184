package app

import (
	"sync"
	"time"

	"github.com/KirkDiggler/rollpath/internal/common/clock"
)

// session is the per-surface navigation state of a live session. Navigations
// on a session are serialized by mu, like a page handling one event at a time.
type session struct {
	mu       sync.Mutex
	id       string
	renderer Renderer
	current  string
	lastSeen time.Time

	// redirect is the pending help redirect; gen invalidates a timer that has
	// already fired but is still waiting for mu
	redirect clock.Timer
	gen      uint64

	// closed is set by CloseSession and idle eviction
	closed bool
}

// cancelRedirect stops any pending redirect. Caller holds mu.
func (s *session) cancelRedirect() {
	s.gen++
	if s.redirect != nil {
		s.redirect.Stop()
		s.redirect = nil
	}
}
