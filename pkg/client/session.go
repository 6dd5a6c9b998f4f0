package client

import "sync"

// SessionUser is the identity slice of the session, as returned by the
// auth endpoints.
type SessionUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// Session is an immutable snapshot of authentication state. IsAdmin is
// true iff the user's role is "admin"; IsAuthenticated is true iff a user
// is present. Loading covers the startup window while a stored token is
// being verified.
type Session struct {
	IsAuthenticated bool
	IsAdmin         bool
	User            *SessionUser
	Loading         bool
}

// SessionStore is the single writer of session state. All transitions go
// through its methods; readers take value snapshots. Safe for concurrent
// use.
type SessionStore struct {
	mu      sync.Mutex
	token   string
	user    *SessionUser
	loading bool
}

// NewSessionStore starts in the loading state: the caller is expected to
// verify any stored token and then call Login or FinishLoading.
func NewSessionStore() *SessionStore {
	return &SessionStore{loading: true}
}

// Snapshot returns the current session state as a value. The invariants
// tying IsAuthenticated and IsAdmin to the user are enforced here, at the
// only place state leaves the store.
func (s *SessionStore) Snapshot() Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := Session{Loading: s.loading}
	if s.user != nil {
		u := *s.user
		sess.User = &u
		sess.IsAuthenticated = true
		sess.IsAdmin = u.Role == "admin"
	}
	return sess
}

// Token returns the bearer token, empty when logged out.
func (s *SessionStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Login stores the token and user and ends the loading state.
func (s *SessionStore) Login(token string, user SessionUser) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = &user
	s.loading = false
}

// Logout clears the token and user. It performs no backend call.
func (s *SessionStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
	s.loading = false
}

// Expire clears the session after an unauthorized response. Identical to
// Logout; the separate name keeps call sites honest about why.
func (s *SessionStore) Expire() {
	s.Logout()
}

// FinishLoading ends the startup window without authenticating, for when
// no stored token exists or verification failed.
func (s *SessionStore) FinishLoading() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
}
