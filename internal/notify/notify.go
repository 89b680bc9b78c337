// Package notify is the user-visible notification sink. Failures and
// confirmations surface here as transient messages; nothing is persisted.
package notify

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Notifier receives user-visible messages.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Terminal prints notifications to the terminal, successes on stdout and
// errors on stderr.
type Terminal struct {
	Out io.Writer
	Err io.Writer
}

// NewTerminal creates a Terminal bound to the process streams.
func NewTerminal() *Terminal {
	return &Terminal{Out: os.Stdout, Err: os.Stderr}
}

func (t *Terminal) Success(msg string) {
	fmt.Fprintln(t.Out, msg)
}

func (t *Terminal) Error(msg string) {
	fmt.Fprintln(t.Err, "✗", msg)
}

// Recorder captures notifications for assertions in tests.
type Recorder struct {
	mu        sync.Mutex
	Successes []string
	Errors    []string
}

func (r *Recorder) Success(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Successes = append(r.Successes, msg)
}

func (r *Recorder) Error(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Errors = append(r.Errors, msg)
}

// LastError returns the most recent error message, if any.
func (r *Recorder) LastError() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Errors) == 0 {
		return "", false
	}
	return r.Errors[len(r.Errors)-1], true
}
