package tasklist

import (
	"context"
	"errors"

	"github.com/Shivam2709/attendance-cli/internal/api"
)

// ErrNotEditing rejects draft operations while no edit is in progress.
var ErrNotEditing = errors.New("no task is being edited")

// Editor tracks the single in-place title edit, if any. Viewing is the zero
// state; StartEdit enters editing, and the only ways back out are a
// successful SaveEdit or a StartEdit on another task.
type Editor struct {
	syncer *Syncer

	editing bool
	taskID  string
	draft   string
}

// NewEditor creates an Editor saving through s.
func NewEditor(s *Syncer) *Editor {
	return &Editor{syncer: s}
}

// StartEdit begins editing task, seeding the draft with its current title.
// Any prior edit is abandoned unconditionally: no save, no warning.
func (e *Editor) StartEdit(task api.Task) {
	e.editing = true
	e.taskID = task.ID
	e.draft = task.Title
}

// ChangeDraft replaces the draft title. Valid only while editing.
func (e *Editor) ChangeDraft(text string) error {
	if !e.editing {
		return ErrNotEditing
	}
	e.draft = text
	return nil
}

// SaveEdit submits the draft as the task's new title. A blank draft is
// rejected locally with zero remote calls. On failure the edit stays open
// with the draft intact so the user can retry; on success the editor returns
// to viewing and the refresh from Update supplies the new title.
func (e *Editor) SaveEdit(ctx context.Context) error {
	if !e.editing {
		return ErrNotEditing
	}
	if isBlank(e.draft) {
		e.syncer.notify.Error(ErrEmptyTitle.Error())
		return ErrEmptyTitle
	}

	title := e.draft
	if err := e.syncer.Update(ctx, e.taskID, api.TaskPatch{Title: &title}); err != nil {
		return err
	}

	e.editing = false
	e.taskID = ""
	e.draft = ""
	return nil
}

// Editing returns the task id and draft of the edit in progress, if any.
func (e *Editor) Editing() (taskID, draft string, ok bool) {
	if !e.editing {
		return "", "", false
	}
	return e.taskID, e.draft, true
}
