package cart

import (
	"sync"
	"time"
)

// Store owns every live cart, keyed by visitor session id. Idle carts are
// evicted by a background janitor after the configured TTL.
type Store struct {
	mu       sync.Mutex
	finder   ProductFinder
	ttl      time.Duration
	sessions map[string]*session

	stop     chan struct{}
	stopOnce sync.Once
}

type session struct {
	cart     *Cart
	lastSeen time.Time
}

// NewStore builds the session cart store and starts its eviction janitor.
// Call Close to stop the janitor.
func NewStore(finder ProductFinder, ttl, sweepInterval time.Duration) *Store {
	s := &Store{
		finder:   finder,
		ttl:      ttl,
		sessions: make(map[string]*session),
		stop:     make(chan struct{}),
	}
	if sweepInterval > 0 {
		go s.janitor(sweepInterval)
	}
	return s
}

// Session returns the cart bound to the session id, creating an empty one on
// first use, and refreshes its eviction deadline.
func (s *Store) Session(id string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		sess = &session{cart: newCart(s.finder)}
		s.sessions[id] = sess
	}
	sess.lastSeen = time.Now()
	return sess.cart
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Close stops the eviction janitor.
func (s *Store) Close() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
}

func (s *Store) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case now := <-ticker.C:
			s.sweep(now)
		}
	}
}

func (s *Store) sweep(now time.Time) {
	if s.ttl <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > s.ttl {
			delete(s.sessions, id)
		}
	}
}
