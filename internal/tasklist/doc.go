// Package tasklist keeps the client-visible task list consistent with the
// remote store.
//
// # Consistency Model
//
// Read-your-writes via full refresh: every successful mutation re-fetches
// the authoritative list and replaces the cache wholesale before the
// operation returns. The cache is never optimistically patched, so there is
// nothing to roll back when a mutation fails.
//
// Operations are not serialized against each other. Two rapid mutations on
// the same task can race, and whichever refresh response lands last wins.
// The cache swap is guarded by a mutex only so a late response cannot
// corrupt memory; it does not impose ordering.
//
// # Failure Reporting
//
// Every failure goes to the notification sink with the server-supplied
// message when present, else a per-operation default. There are no retries.
//
// # Editing
//
// Editor is a two-state machine over Syncer for in-place title edits. At
// most one task is in edit at a time; starting an edit on another task
// silently discards the previous draft. There is no cancel: the only exits
// from editing are a successful save or starting a different edit.
//
// # Deletion
//
// Deletes are two-step: RequestDelete hands out a single-use confirmation
// token and ConfirmDelete spends it. No remote call happens until the token
// is confirmed; CancelDelete discards it for free.
package tasklist
