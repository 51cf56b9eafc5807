package mcp

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is the server-side state for one initialized client. It is
// created only by the initialize method and destroyed in bulk by
// shutdown. The subscription set is the only mutable part.
type Session struct {
	ID         string
	ClientInfo *ClientInfo
	CreatedAt  time.Time

	mu            sync.Mutex
	subscriptions map[string]struct{}
	conn          Conn
}

// Subscribed reports whether the session is subscribed to uri.
func (s *Session) Subscribed(uri string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.subscriptions[uri]
	return ok
}

// Subscriptions returns a snapshot of the subscribed URIs.
func (s *Session) Subscriptions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	uris := make([]string, 0, len(s.subscriptions))
	for uri := range s.subscriptions {
		uris = append(uris, uri)
	}
	return uris
}

// Send pushes a server-initiated message to the session's transport.
// Sessions created over a one-shot transport have no connection and
// silently drop the message.
func (s *Session) Send(msg interface{}) error {
	s.mu.Lock()
	conn := s.conn
	s.mu.Unlock()
	if conn == nil {
		return nil
	}
	return conn.Send(msg)
}

// SessionStore holds every live session keyed by id. IDs are random
// UUIDs, unique for the process lifetime.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
	}
}

// Create allocates a session with an empty subscription set. conn may
// be nil for transports that cannot receive pushes.
func (st *SessionStore) Create(clientInfo *ClientInfo, conn Conn) *Session {
	s := &Session{
		ID:            uuid.New().String(),
		ClientInfo:    clientInfo,
		CreatedAt:     time.Now().UTC(),
		subscriptions: make(map[string]struct{}),
		conn:          conn,
	}
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

func (st *SessionStore) Get(id string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.sessions[id]
}

// Subscribe adds uri to the session's subscription set. Unknown
// sessions are a no-op: subscription is advisory and the protocol does
// not mandate a prior existence check.
func (st *SessionStore) Subscribe(id, uri string) {
	s := st.Get(id)
	if s == nil {
		return
	}
	s.mu.Lock()
	s.subscriptions[uri] = struct{}{}
	s.mu.Unlock()
}

// Unsubscribe removes uri if present; no-op otherwise.
func (st *SessionStore) Unsubscribe(id, uri string) {
	s := st.Get(id)
	if s == nil {
		return
	}
	s.mu.Lock()
	delete(s.subscriptions, uri)
	s.mu.Unlock()
}

// Each calls fn for every live session.
func (st *SessionStore) Each(fn func(*Session)) {
	st.mu.Lock()
	snapshot := make([]*Session, 0, len(st.sessions))
	for _, s := range st.sessions {
		snapshot = append(snapshot, s)
	}
	st.mu.Unlock()

	for _, s := range snapshot {
		fn(s)
	}
}

func (st *SessionStore) Count() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Clear drops every session. Used by shutdown.
func (st *SessionStore) Clear() {
	st.mu.Lock()
	st.sessions = make(map[string]*Session)
	st.mu.Unlock()
}
