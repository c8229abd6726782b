// Package task implements the core task list operations. Each method is one
// atomic load-mutate-save cycle over the full list; no state is held in
// memory between calls.
package task

import (
	"fmt"
	"strings"
	"time"

	"todo/internal/output"
	"todo/internal/storage"
	"todo/internal/validate"
)

// Manager orchestrates task operations against storage and reports outcomes
// through the printer.
//
// Methods return (ok, err): ok is the user-facing outcome of the operation,
// err is non-nil only when saving the list failed. A save error is fatal and
// must terminate the process with a non-zero status.
type Manager struct {
	store   *storage.Storage
	printer *output.Printer
	now     func() time.Time // injectable clock for deterministic tests
}

// NewManager creates a Manager using the given storage and printer.
func NewManager(store *storage.Storage, printer *output.Printer) *Manager {
	return &Manager{store: store, printer: printer, now: time.Now}
}

// SetNowFunc overrides the clock used for task creation timestamps.
// Passing nil resets it to time.Now.
func (m *Manager) SetNowFunc(now func() time.Time) {
	if now == nil {
		m.now = time.Now
		return
	}
	m.now = now
}

// Add appends a new pending task with the given text. Empty or
// whitespace-only text is rejected without touching storage.
func (m *Manager) Add(text string) (bool, error) {
	if !validate.TaskText(text) {
		m.printer.Error("Task cannot be empty!")
		return false, nil
	}

	tasks := m.store.Load()
	trimmed := strings.TrimSpace(text)
	tasks = append(tasks, storage.NewTask(trimmed, m.now()))

	if err := m.store.Save(tasks); err != nil {
		return false, err
	}

	m.printer.Success("Task added: " + trimmed)
	return true, nil
}

// List prints all tasks, pending first then completed, followed by a summary.
//
// Display indices restart at 1 within the pending group and continue from
// len(pending)+1 for the completed group. They do not necessarily match the
// storage-order indices that Complete and Remove resolve against; users with
// mixed lists should complete tasks before relying on displayed numbers.
func (m *Manager) List() {
	tasks := m.store.Load()

	if len(tasks) == 0 {
		m.printer.Empty()
		return
	}

	m.printer.Header("Your Todo List")

	var pending, completed []storage.Task
	for _, t := range tasks {
		if t.Completed {
			completed = append(completed, t)
		} else {
			pending = append(pending, t)
		}
	}

	if len(pending) > 0 {
		m.printer.Blank()
		m.printer.Line(m.printer.PendingGroupLabel())
		for i, t := range pending {
			m.printer.Line("  " + m.printer.RenderItem(t, i+1))
		}
	}

	if len(completed) > 0 {
		m.printer.Blank()
		m.printer.Line(m.printer.DoneGroupLabel())
		start := len(pending) + 1
		for i, t := range completed {
			m.printer.Line("  " + m.printer.RenderItem(t, start+i))
		}
	}

	m.printer.Blank()
	m.printer.Line(m.printer.RenderSummary(len(tasks), len(completed), len(pending)))
}

// Complete marks the task at the given storage-order index as completed.
// Completing an already-completed task is a no-op reported as a failure.
func (m *Manager) Complete(rawIndex string) (bool, error) {
	tasks := m.store.Load()

	if len(tasks) == 0 {
		m.printer.Error("No tasks found!")
		return false, nil
	}

	index, ok := validate.ResolveIndex(tasks, rawIndex)
	if !ok {
		m.printer.Error(fmt.Sprintf("Invalid task number: %s", rawIndex))
		return false, nil
	}

	target := &tasks[index-1]
	if target.Completed {
		m.printer.Info(fmt.Sprintf("Task %d is already completed!", index))
		return false, nil
	}
	target.Completed = true

	if err := m.store.Save(tasks); err != nil {
		return false, err
	}

	m.printer.Success(fmt.Sprintf("Task %d marked as complete: %s", index, target.Text))
	return true, nil
}

// Remove deletes the task at the given storage-order index. Tasks after it
// shift down by one position.
func (m *Manager) Remove(rawIndex string) (bool, error) {
	tasks := m.store.Load()

	if len(tasks) == 0 {
		m.printer.Error("No tasks found!")
		return false, nil
	}

	index, ok := validate.ResolveIndex(tasks, rawIndex)
	if !ok {
		m.printer.Error(fmt.Sprintf("Invalid task number: %s", rawIndex))
		return false, nil
	}

	removed := tasks[index-1]
	tasks = append(tasks[:index-1], tasks[index:]...)

	if err := m.store.Save(tasks); err != nil {
		return false, err
	}

	m.printer.Success(fmt.Sprintf("Task %d removed: %s", index, removed.Text))
	return true, nil
}

// ClearCompleted removes every completed task, preserving the relative order
// of the remainder.
func (m *Manager) ClearCompleted() (bool, error) {
	tasks := m.store.Load()

	cleared := 0
	remaining := make([]storage.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Completed {
			cleared++
			continue
		}
		remaining = append(remaining, t)
	}

	if cleared == 0 {
		m.printer.Info("No completed tasks to clear!")
		return false, nil
	}

	if err := m.store.Save(remaining); err != nil {
		return false, err
	}

	m.printer.Success(fmt.Sprintf("Cleared %d completed task(s)", cleared))
	return true, nil
}
