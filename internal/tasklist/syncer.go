package tasklist

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/Shivam2709/attendance-cli/internal/api"
	"github.com/Shivam2709/attendance-cli/internal/notify"
)

var (
	// ErrEmptyTitle rejects blank titles before any remote call is made.
	ErrEmptyTitle = errors.New("task title cannot be empty")
	// ErrUnknownConfirmation rejects confirmation tokens that were never
	// issued or were already spent.
	ErrUnknownConfirmation = errors.New("unknown delete confirmation")
)

// Default failure messages, used when the server sent none.
const (
	msgLoadFailed   = "Failed to load tasks"
	msgCreateFailed = "Failed to create task"
	msgUpdateFailed = "Failed to update task"
	msgDeleteFailed = "Failed to delete task"
)

// Backend is the remote task store. Implemented by *api.Client.
type Backend interface {
	Tasks(ctx context.Context) ([]api.Task, error)
	CreateTask(ctx context.Context, title string) (api.Task, error)
	UpdateTask(ctx context.Context, id string, patch api.TaskPatch) (api.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

// Syncer maintains the cached task list against a Backend. See the package
// documentation for the consistency model.
type Syncer struct {
	backend Backend
	notify  notify.Notifier

	mu      sync.Mutex
	cache   []api.Task
	pending map[string]string // confirmation token -> task id
}

// NewSyncer creates a Syncer. Notifications go to n.
func NewSyncer(b Backend, n notify.Notifier) *Syncer {
	return &Syncer{
		backend: b,
		notify:  n,
		pending: make(map[string]string),
	}
}

// Tasks returns a copy of the cached list in server order.
func (s *Syncer) Tasks() []api.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]api.Task, len(s.cache))
	copy(out, s.cache)
	return out
}

// Find returns the cached task with the given id.
func (s *Syncer) Find(id string) (api.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.cache {
		if t.ID == id {
			return t, true
		}
	}
	return api.Task{}, false
}

// Refresh fetches the authoritative list and replaces the cache wholesale.
// On failure the previous cache is left untouched.
func (s *Syncer) Refresh(ctx context.Context) error {
	tasks, err := s.backend.Tasks(ctx)
	if err != nil {
		s.report(err, msgLoadFailed)
		return err
	}

	s.mu.Lock()
	s.cache = tasks
	s.mu.Unlock()
	return nil
}

// Create submits a new task and refreshes. Blank titles are rejected locally
// with zero remote calls.
func (s *Syncer) Create(ctx context.Context, title string) error {
	if isBlank(title) {
		s.notify.Error(ErrEmptyTitle.Error())
		return ErrEmptyTitle
	}

	if _, err := s.backend.CreateTask(ctx, title); err != nil {
		s.report(err, msgCreateFailed)
		return err
	}
	return s.Refresh(ctx)
}

// Update submits a partial update for the task with the given id, then
// refreshes.
func (s *Syncer) Update(ctx context.Context, id string, patch api.TaskPatch) error {
	if _, err := s.backend.UpdateTask(ctx, id, patch); err != nil {
		s.report(err, msgUpdateFailed)
		return err
	}
	return s.Refresh(ctx)
}

// Toggle flips a task between pending and completed.
func (s *Syncer) Toggle(ctx context.Context, task api.Task) error {
	status := api.StatusPending
	if task.Status == api.StatusPending {
		status = api.StatusCompleted
	}
	return s.Update(ctx, task.ID, api.TaskPatch{Status: &status})
}

// RequestDelete stages a delete and returns a single-use confirmation token.
// Nothing is sent to the server until the token is confirmed.
func (s *Syncer) RequestDelete(id string) string {
	token := uuid.New().String()
	s.mu.Lock()
	s.pending[token] = id
	s.mu.Unlock()
	return token
}

// ConfirmDelete spends a confirmation token, issues the delete, and
// refreshes.
func (s *Syncer) ConfirmDelete(ctx context.Context, token string) error {
	s.mu.Lock()
	id, ok := s.pending[token]
	delete(s.pending, token)
	s.mu.Unlock()
	if !ok {
		return ErrUnknownConfirmation
	}

	if err := s.backend.DeleteTask(ctx, id); err != nil {
		s.report(err, msgDeleteFailed)
		return err
	}
	return s.Refresh(ctx)
}

// CancelDelete discards a staged delete. Zero remote calls.
func (s *Syncer) CancelDelete(token string) {
	s.mu.Lock()
	delete(s.pending, token)
	s.mu.Unlock()
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// report surfaces a failure through the notification sink, preferring the
// server's own message over the fallback.
func (s *Syncer) report(err error, fallback string) {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		s.notify.Error(apiErr.Message)
		return
	}
	s.notify.Error(fallback)
}
