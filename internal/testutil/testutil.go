// Package testutil provides reusable helpers for attend integration tests.
package testutil

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Shivam2709/attendance-cli/internal/api"
	"github.com/Shivam2709/attendance-cli/internal/kvstore"
	"github.com/Shivam2709/attendance-cli/internal/session"
	"github.com/Shivam2709/attendance-cli/internal/stubserver"
)

// AdminEmail is the address that receives the admin role on the test stub.
const AdminEmail = "admin@example.com"

// StartStub runs an in-memory stub service on an httptest server. The server
// shuts down with the test.
func StartStub(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := stubserver.NewServer(stubserver.Config{
		JWTSecret:  "test-secret",
		AdminEmail: AdminEmail,
	})
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

// NewClient creates an api.Client for the stub backed by a fresh in-memory
// session, returning both.
func NewClient(t *testing.T, ts *httptest.Server) (*api.Client, *session.Store) {
	t.Helper()
	sess := session.NewStore(kvstore.NewMemory())
	client := api.NewClient(ts.URL, sess, 5*time.Second)
	return client, sess
}

// SignupAndLogin registers an account on the stub and logs the session in.
func SignupAndLogin(t *testing.T, client *api.Client, sess *session.Store, name, email, password string) {
	t.Helper()
	ctx := context.Background()

	if _, err := client.Signup(ctx, name, email, password); err != nil {
		t.Fatalf("Signup failed: %v", err)
	}
	resp, err := client.Login(ctx, email, password)
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	sess.Login(resp.Token, session.Role(resp.Role))
}
