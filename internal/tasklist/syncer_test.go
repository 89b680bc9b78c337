package tasklist

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Shivam2709/attendance-cli/internal/api"
	"github.com/Shivam2709/attendance-cli/internal/notify"
)

// fakeBackend is an in-memory Backend that counts round trips and can be
// told to fail the next call.
type fakeBackend struct {
	tasks  []api.Task
	nextID int

	listCalls   int
	createCalls int
	updateCalls int
	deleteCalls int

	failWith error // returned by the next call, then cleared
}

func (f *fakeBackend) fail() error {
	err := f.failWith
	f.failWith = nil
	return err
}

func (f *fakeBackend) Tasks(ctx context.Context) ([]api.Task, error) {
	f.listCalls++
	if err := f.fail(); err != nil {
		return nil, err
	}
	out := make([]api.Task, len(f.tasks))
	copy(out, f.tasks)
	return out, nil
}

func (f *fakeBackend) CreateTask(ctx context.Context, title string) (api.Task, error) {
	f.createCalls++
	if err := f.fail(); err != nil {
		return api.Task{}, err
	}
	f.nextID++
	t := api.Task{ID: fmt.Sprintf("t%d", f.nextID), Title: title, Status: api.StatusPending}
	f.tasks = append(f.tasks, t)
	return t, nil
}

func (f *fakeBackend) UpdateTask(ctx context.Context, id string, patch api.TaskPatch) (api.Task, error) {
	f.updateCalls++
	if err := f.fail(); err != nil {
		return api.Task{}, err
	}
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			if patch.Title != nil {
				f.tasks[i].Title = *patch.Title
			}
			if patch.Status != nil {
				f.tasks[i].Status = *patch.Status
			}
			return f.tasks[i], nil
		}
	}
	return api.Task{}, &api.Error{Status: 404, Message: "Task not found"}
}

func (f *fakeBackend) DeleteTask(ctx context.Context, id string) error {
	f.deleteCalls++
	if err := f.fail(); err != nil {
		return err
	}
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return &api.Error{Status: 404, Message: "Task not found"}
}

func (f *fakeBackend) calls() int {
	return f.listCalls + f.createCalls + f.updateCalls + f.deleteCalls
}

func newTestSyncer() (*Syncer, *fakeBackend, *notify.Recorder) {
	backend := &fakeBackend{}
	rec := &notify.Recorder{}
	return NewSyncer(backend, rec), backend, rec
}

func TestCreateBlankTitleMakesNoRemoteCalls(t *testing.T) {
	t.Parallel()
	s, backend, rec := newTestSyncer()

	for _, title := range []string{"", "   ", "\t\n"} {
		if err := s.Create(context.Background(), title); !errors.Is(err, ErrEmptyTitle) {
			t.Errorf("Create(%q) = %v, want ErrEmptyTitle", title, err)
		}
	}
	if backend.calls() != 0 {
		t.Errorf("blank titles caused %d remote calls, want 0", backend.calls())
	}
	if len(rec.Errors) != 3 {
		t.Errorf("expected 3 validation notices, got %d", len(rec.Errors))
	}
}

func TestCreateRefreshesAndCachesNewTask(t *testing.T) {
	t.Parallel()
	s, backend, _ := newTestSyncer()

	if err := s.Create(context.Background(), "Write spec"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	tasks := s.Tasks()
	if len(tasks) != 1 {
		t.Fatalf("cached %d tasks, want 1", len(tasks))
	}
	if tasks[0].Title != "Write spec" || tasks[0].Status != api.StatusPending {
		t.Errorf("cached task = %+v, want pending \"Write spec\"", tasks[0])
	}
	if backend.createCalls != 1 || backend.listCalls != 1 {
		t.Errorf("calls = create %d, list %d; want 1 and 1 (mutation then refresh)",
			backend.createCalls, backend.listCalls)
	}
}

func TestToggleIsATwoCycle(t *testing.T) {
	t.Parallel()
	s, _, _ := newTestSyncer()
	ctx := context.Background()

	if err := s.Create(ctx, "Flip me"); err != nil {
		t.Fatal(err)
	}
	original := s.Tasks()[0]

	if err := s.Toggle(ctx, s.Tasks()[0]); err != nil {
		t.Fatal(err)
	}
	if got := s.Tasks()[0].Status; got != api.StatusCompleted {
		t.Errorf("after one toggle status = %q, want completed", got)
	}

	if err := s.Toggle(ctx, s.Tasks()[0]); err != nil {
		t.Fatal(err)
	}
	if got := s.Tasks()[0].Status; got != original.Status {
		t.Errorf("after two toggles status = %q, want %q", got, original.Status)
	}
}

func TestDeclinedDeleteMakesNoRemoteCalls(t *testing.T) {
	t.Parallel()
	s, backend, _ := newTestSyncer()
	ctx := context.Background()

	if err := s.Create(ctx, "Keep me"); err != nil {
		t.Fatal(err)
	}
	before := backend.calls()
	cached := s.Tasks()

	token := s.RequestDelete(cached[0].ID)
	s.CancelDelete(token)

	if backend.calls() != before {
		t.Errorf("declined delete caused %d extra calls, want 0", backend.calls()-before)
	}
	if got := s.Tasks(); len(got) != len(cached) || got[0] != cached[0] {
		t.Errorf("cache changed after declined delete: %v", got)
	}

	// The cancelled token is spent.
	if err := s.ConfirmDelete(ctx, token); !errors.Is(err, ErrUnknownConfirmation) {
		t.Errorf("ConfirmDelete(cancelled token) = %v, want ErrUnknownConfirmation", err)
	}
	if backend.deleteCalls != 0 {
		t.Errorf("cancelled token reached the server (%d delete calls)", backend.deleteCalls)
	}
}

func TestConfirmedDeleteIsSingleUse(t *testing.T) {
	t.Parallel()
	s, backend, _ := newTestSyncer()
	ctx := context.Background()

	if err := s.Create(ctx, "Doomed"); err != nil {
		t.Fatal(err)
	}
	token := s.RequestDelete(s.Tasks()[0].ID)

	if err := s.ConfirmDelete(ctx, token); err != nil {
		t.Fatalf("ConfirmDelete failed: %v", err)
	}
	if len(s.Tasks()) != 0 {
		t.Errorf("task still cached after confirmed delete: %v", s.Tasks())
	}
	if backend.deleteCalls != 1 {
		t.Errorf("deleteCalls = %d, want 1", backend.deleteCalls)
	}

	if err := s.ConfirmDelete(ctx, token); !errors.Is(err, ErrUnknownConfirmation) {
		t.Errorf("second ConfirmDelete = %v, want ErrUnknownConfirmation", err)
	}
}

func TestRefreshFailureKeepsPreviousCache(t *testing.T) {
	t.Parallel()
	s, backend, rec := newTestSyncer()
	ctx := context.Background()

	if err := s.Create(ctx, "Survivor"); err != nil {
		t.Fatal(err)
	}

	backend.failWith = errors.New("connection reset")
	if err := s.Refresh(ctx); err == nil {
		t.Fatal("expected refresh to fail")
	}

	if len(s.Tasks()) != 1 || s.Tasks()[0].Title != "Survivor" {
		t.Errorf("cache should be untouched after failed refresh, got %v", s.Tasks())
	}
	if msg, ok := rec.LastError(); !ok || msg != msgLoadFailed {
		t.Errorf("notice = %q, want default %q", msg, msgLoadFailed)
	}
}

func TestFailureNoticePrefersServerMessage(t *testing.T) {
	t.Parallel()
	s, backend, rec := newTestSyncer()

	backend.failWith = &api.Error{Status: 500, Message: "Task limit reached"}
	if err := s.Create(context.Background(), "One too many"); err == nil {
		t.Fatal("expected create to fail")
	}

	if msg, ok := rec.LastError(); !ok || msg != "Task limit reached" {
		t.Errorf("notice = %q, want server message", msg)
	}
}
