// Package session owns the authenticated session: the bearer token returned
// by the auth endpoints and the coarse role tag used for client-side gating.
// Both live in a kvstore.Store so a session survives process restarts.
package session

import "github.com/Shivam2709/attendance-cli/internal/kvstore"

// State keys in the backing store.
const (
	keyToken = "token"
	keyRole  = "role"
)

// Role is the coarse authorization tag cached client-side. It gates UI
// surfaces only; the server independently authorizes every API call.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Store reads and writes the current session. All operations are synchronous
// and infallible; durability belongs to the persistence collaborator.
type Store struct {
	kv kvstore.Store
}

// NewStore creates a session store over the given persistence backend.
func NewStore(kv kvstore.Store) *Store {
	return &Store{kv: kv}
}

// Login records a new session. It trusts the supplied token and role as-is;
// validation happened during the auth round trip that produced them.
func (s *Store) Login(token string, role Role) {
	s.kv.Set(keyToken, token)
	s.kv.Set(keyRole, string(role))
}

// Logout clears the session. Idempotent.
func (s *Store) Logout() {
	s.kv.Delete(keyToken)
	s.kv.Delete(keyRole)
}

// Token returns the stored credential, if any.
func (s *Store) Token() (string, bool) {
	v, ok := s.kv.Get(keyToken)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Role returns the stored role. A role without a credential is meaningless
// (a stale leftover), so absence of the token means absence of the role.
func (s *Store) Role() (Role, bool) {
	if _, ok := s.Token(); !ok {
		return "", false
	}
	v, ok := s.kv.Get(keyRole)
	if !ok || v == "" {
		return "", false
	}
	return Role(v), true
}

// Snapshot captures the session at a point in time for guard decisions.
func (s *Store) Snapshot() Snapshot {
	var snap Snapshot
	if token, ok := s.Token(); ok {
		snap.Token = token
		if role, ok := s.Role(); ok {
			snap.Role = role
		}
	}
	return snap
}

// Snapshot is an immutable view of the session. Zero values mean absent.
type Snapshot struct {
	Token string
	Role  Role
}

// LoggedIn reports whether a credential is present.
func (s Snapshot) LoggedIn() bool {
	return s.Token != ""
}

// IsAdmin reports whether the session carries the admin role. A role on a
// logged-out snapshot never counts.
func (s Snapshot) IsAdmin() bool {
	return s.LoggedIn() && s.Role == RoleAdmin
}
