package kvstore

import (
	"path/filepath"
	"testing"
)

func TestSQLiteRoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "state.db")

	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	s.Set("token", "abc")
	s.Set("token", "def") // upsert
	s.Set("role", "user")
	s.Delete("role")

	if v, ok := s.Get("token"); !ok || v != "def" {
		t.Errorf("Get(token) = %q, %v; want def, true", v, ok)
	}
	if _, ok := s.Get("role"); ok {
		t.Error("deleted key should be absent")
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	if v, ok := reopened.Get("token"); !ok || v != "def" {
		t.Errorf("Get(token) after reopen = %q, %v; want def, true", v, ok)
	}
}
