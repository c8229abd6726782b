// Package ui provides the optional full-screen interactive mode.
// This file defines message types for async storage operations using the
// Bubble Tea command pattern.
package ui

import "todo/internal/storage"

// tasksLoadedMsg is sent when the task list is (re)loaded from storage.
type tasksLoadedMsg struct {
	tasks []storage.Task
}

// taskAddedMsg is sent when a new task has been saved.
type taskAddedMsg struct {
	text string
	err  error
}

// taskCompletedMsg is sent after an attempt to mark a task complete.
type taskCompletedMsg struct {
	text        string
	alreadyDone bool
	stale       bool // the list changed on disk and the position no longer exists
	err         error
}

// taskRemovedMsg is sent after an attempt to remove a task.
type taskRemovedMsg struct {
	text  string
	stale bool
	err   error
}

// completedClearedMsg is sent after clearing completed tasks.
type completedClearedMsg struct {
	cleared int
	err     error
}
