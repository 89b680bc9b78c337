// Package guard decides, per protected surface, whether the current session
// may render it. Decisions are computed purely from the locally cached
// session snapshot with no server round trip, so the guard is a UX
// convenience, not a security boundary: a stale or forged local role would
// pass it. The backend independently rejects unauthorized API calls.
package guard

import "github.com/Shivam2709/attendance-cli/internal/session"

// Surface classifies what a view requires of the session.
type Surface int

const (
	// Public surfaces render for everyone.
	Public Surface = iota
	// Authenticated surfaces require a credential.
	Authenticated
	// AdminOnly surfaces require the admin role.
	AdminOnly
)

// Route is a navigation target for redirect decisions.
type Route string

const (
	RouteLogin     Route = "/"
	RouteDashboard Route = "/dashboard"
)

// Decision is the three-way outcome of a guard check. When Render is false,
// Target holds where the caller should send the user instead.
type Decision struct {
	Render bool
	Target Route
}

// Decide evaluates a surface against a session snapshot. It is re-evaluated
// on every navigation and caches nothing.
//
// A logged-in non-admin hitting an AdminOnly surface is sent to the
// dashboard, not the login page: they have a valid session, just not the
// role.
func Decide(surface Surface, sess session.Snapshot) Decision {
	switch surface {
	case Authenticated:
		if !sess.LoggedIn() {
			return Decision{Target: RouteLogin}
		}
	case AdminOnly:
		if !sess.IsAdmin() {
			return Decision{Target: RouteDashboard}
		}
	}
	return Decision{Render: true}
}

// Gate runs render only when the guard allows it, returning the decision
// either way. The caller interprets a redirect decision however its
// navigation layer works.
func Gate(surface Surface, sess session.Snapshot, render func() error) (Decision, error) {
	dec := Decide(surface, sess)
	if !dec.Render {
		return dec, nil
	}
	return dec, render()
}
