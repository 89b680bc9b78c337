package guard

import (
	"errors"
	"testing"

	"github.com/Shivam2709/attendance-cli/internal/session"
)

func TestDecide(t *testing.T) {
	t.Parallel()

	anonymous := session.Snapshot{}
	user := session.Snapshot{Token: "tok", Role: session.RoleUser}
	admin := session.Snapshot{Token: "tok", Role: session.RoleAdmin}
	staleRole := session.Snapshot{Role: session.RoleAdmin} // no credential

	tests := []struct {
		name    string
		surface Surface
		sess    session.Snapshot
		render  bool
		target  Route
	}{
		{"public anonymous", Public, anonymous, true, ""},
		{"public admin", Public, admin, true, ""},
		{"authenticated anonymous", Authenticated, anonymous, false, RouteLogin},
		{"authenticated user", Authenticated, user, true, ""},
		{"authenticated admin", Authenticated, admin, true, ""},
		{"admin-only anonymous", AdminOnly, anonymous, false, RouteDashboard},
		{"admin-only user", AdminOnly, user, false, RouteDashboard},
		{"admin-only admin", AdminOnly, admin, true, ""},
		{"admin-only stale role without token", AdminOnly, staleRole, false, RouteDashboard},
		{"authenticated stale role without token", Authenticated, staleRole, false, RouteLogin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec := Decide(tt.surface, tt.sess)
			if dec.Render != tt.render {
				t.Errorf("Render = %v, want %v", dec.Render, tt.render)
			}
			if dec.Target != tt.target {
				t.Errorf("Target = %q, want %q", dec.Target, tt.target)
			}
		})
	}
}

func TestLoginThenNavigateScenario(t *testing.T) {
	t.Parallel()

	// Login returned {token: "abc", role: "user"}.
	sess := session.Snapshot{Token: "abc", Role: session.RoleUser}

	if dec := Decide(Authenticated, sess); !dec.Render {
		t.Errorf("dashboard should render for logged-in user, got redirect to %q", dec.Target)
	}
	if dec := Decide(AdminOnly, sess); dec.Render || dec.Target != RouteDashboard {
		t.Errorf("admin page for plain user should redirect to dashboard, got %+v", dec)
	}
}

func TestGateInvokesRenderOnlyWhenAllowed(t *testing.T) {
	t.Parallel()

	calls := 0
	render := func() error {
		calls++
		return errors.New("from render")
	}

	dec, err := Gate(Authenticated, session.Snapshot{}, render)
	if dec.Render || calls != 0 {
		t.Fatalf("render ran behind a redirect decision (calls=%d)", calls)
	}
	if err != nil {
		t.Fatalf("redirect decision should not carry a render error, got %v", err)
	}

	dec, err = Gate(Authenticated, session.Snapshot{Token: "tok"}, render)
	if !dec.Render || calls != 1 {
		t.Fatalf("render should run exactly once when allowed (calls=%d)", calls)
	}
	if err == nil || err.Error() != "from render" {
		t.Fatalf("expected render error to pass through, got %v", err)
	}
}
