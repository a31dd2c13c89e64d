package dashboard

import (
	"sync"
	"time"

	"github.com/yeremiapane/orders-admin/store"
)

// DefaultSessionTTL is how long an idle session keeps its view state.
const DefaultSessionTTL = 2 * time.Hour

// Session is the server-side UI state of one logged-in admin.
type Session struct {
	View    *View
	Notices *NoticeQueue

	lastSeen time.Time
}

// Sessions hands out one Session per session id, creating it on first use.
// Sessions idle for longer than ttl are dropped on the next Get; coming back
// after that starts from a fresh snapshot.
type Sessions struct {
	store store.OrderStore
	ttl   time.Duration
	now   func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessions(s store.OrderStore) *Sessions {
	return NewSessionsWithTTL(s, DefaultSessionTTL)
}

func NewSessionsWithTTL(s store.OrderStore, ttl time.Duration) *Sessions {
	return &Sessions{
		store:    s,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

func (s *Sessions) Get(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for k, sess := range s.sessions {
		if k != id && now.Sub(sess.lastSeen) > s.ttl {
			delete(s.sessions, k)
		}
	}

	sess, ok := s.sessions[id]
	if ok && now.Sub(sess.lastSeen) > s.ttl {
		ok = false
	}
	if !ok {
		sess = &Session{View: NewView(s.store), Notices: &NoticeQueue{}}
		s.sessions[id] = sess
	}
	sess.lastSeen = now
	return sess
}

// Len reports how many sessions are held.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
