package tasklist

import (
	"context"
	"errors"
	"testing"

	"github.com/Shivam2709/attendance-cli/internal/api"
)

func TestStartEditAbandonsPriorDraftSilently(t *testing.T) {
	t.Parallel()
	s, backend, _ := newTestSyncer()
	ctx := context.Background()

	if err := s.Create(ctx, "Task A"); err != nil {
		t.Fatal(err)
	}
	if err := s.Create(ctx, "Task B"); err != nil {
		t.Fatal(err)
	}
	taskA, taskB := s.Tasks()[0], s.Tasks()[1]
	updatesBefore := backend.updateCalls

	e := NewEditor(s)
	e.StartEdit(taskA)
	if err := e.ChangeDraft("half-finished rename"); err != nil {
		t.Fatal(err)
	}

	e.StartEdit(taskB)

	id, draft, ok := e.Editing()
	if !ok || id != taskB.ID || draft != taskB.Title {
		t.Errorf("Editing() = %q, %q, %v; want taskB with its own title", id, draft, ok)
	}
	if backend.updateCalls != updatesBefore {
		t.Errorf("abandoning a draft issued %d update calls, want 0", backend.updateCalls-updatesBefore)
	}
}

func TestSaveEmptyDraftStaysEditingWithNoRemoteCalls(t *testing.T) {
	t.Parallel()
	s, backend, _ := newTestSyncer()
	ctx := context.Background()

	if err := s.Create(ctx, "Original"); err != nil {
		t.Fatal(err)
	}
	task := s.Tasks()[0]
	callsBefore := backend.calls()

	e := NewEditor(s)
	e.StartEdit(task)
	if err := e.ChangeDraft("   "); err != nil {
		t.Fatal(err)
	}

	if err := e.SaveEdit(ctx); !errors.Is(err, ErrEmptyTitle) {
		t.Fatalf("SaveEdit = %v, want ErrEmptyTitle", err)
	}
	if backend.calls() != callsBefore {
		t.Errorf("blank save caused %d remote calls, want 0", backend.calls()-callsBefore)
	}
	if _, draft, ok := e.Editing(); !ok || draft != "   " {
		t.Errorf("editor should stay in editing with draft intact, got %q, %v", draft, ok)
	}
}

func TestSaveEditSuccessReturnsToViewing(t *testing.T) {
	t.Parallel()
	s, backend, _ := newTestSyncer()
	ctx := context.Background()

	if err := s.Create(ctx, "Old title"); err != nil {
		t.Fatal(err)
	}
	task := s.Tasks()[0]

	e := NewEditor(s)
	e.StartEdit(task)
	if err := e.ChangeDraft("New title"); err != nil {
		t.Fatal(err)
	}
	if err := e.SaveEdit(ctx); err != nil {
		t.Fatalf("SaveEdit failed: %v", err)
	}

	if _, _, ok := e.Editing(); ok {
		t.Error("editor should be back in viewing after a successful save")
	}
	// The refresh from Update supplied the new title.
	if got := s.Tasks()[0].Title; got != "New title" {
		t.Errorf("cached title = %q, want refreshed %q", got, "New title")
	}
	if backend.updateCalls != 1 {
		t.Errorf("updateCalls = %d, want 1", backend.updateCalls)
	}
}

func TestSaveEditFailureKeepsDraftForRetry(t *testing.T) {
	t.Parallel()
	s, backend, rec := newTestSyncer()
	ctx := context.Background()

	if err := s.Create(ctx, "Old title"); err != nil {
		t.Fatal(err)
	}
	task := s.Tasks()[0]

	e := NewEditor(s)
	e.StartEdit(task)
	if err := e.ChangeDraft("New title"); err != nil {
		t.Fatal(err)
	}

	backend.failWith = &api.Error{Status: 500, Message: "Something broke"}
	if err := e.SaveEdit(ctx); err == nil {
		t.Fatal("expected save to fail")
	}

	id, draft, ok := e.Editing()
	if !ok || id != task.ID || draft != "New title" {
		t.Errorf("editor should keep the unsaved draft, got %q, %q, %v", id, draft, ok)
	}
	if msg, _ := rec.LastError(); msg != "Something broke" {
		t.Errorf("notice = %q, want server message", msg)
	}

	// Retry succeeds once the backend recovers.
	if err := e.SaveEdit(ctx); err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if _, _, ok := e.Editing(); ok {
		t.Error("editor should return to viewing after the retry")
	}
}

func TestDraftOperationsWhileViewing(t *testing.T) {
	t.Parallel()
	s, backend, _ := newTestSyncer()

	e := NewEditor(s)
	if err := e.ChangeDraft("text"); !errors.Is(err, ErrNotEditing) {
		t.Errorf("ChangeDraft while viewing = %v, want ErrNotEditing", err)
	}
	if err := e.SaveEdit(context.Background()); !errors.Is(err, ErrNotEditing) {
		t.Errorf("SaveEdit while viewing = %v, want ErrNotEditing", err)
	}
	if backend.calls() != 0 {
		t.Errorf("viewing-state operations caused %d remote calls, want 0", backend.calls())
	}
}
