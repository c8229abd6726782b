// Package ui provides the optional full-screen interactive mode.
// This file contains tea.Cmd factories that wrap storage operations so file
// I/O stays off the Bubble Tea event loop. Positions are re-checked against
// a fresh load because the file may have changed between render and action.
package ui

import (
	"strings"
	"time"

	"todo/internal/storage"

	tea "github.com/charmbracelet/bubbletea"
)

// loadTasksCmd returns a command that loads the task list.
func loadTasksCmd(store *storage.Storage) tea.Cmd {
	return func() tea.Msg {
		return tasksLoadedMsg{tasks: store.Load()}
	}
}

// addTaskCmd returns a command that appends a new pending task.
func addTaskCmd(store *storage.Storage, text string) tea.Cmd {
	return func() tea.Msg {
		trimmed := strings.TrimSpace(text)
		tasks := store.Load()
		tasks = append(tasks, storage.NewTask(trimmed, time.Now()))
		return taskAddedMsg{text: trimmed, err: store.Save(tasks)}
	}
}

// completeTaskCmd returns a command that marks the task at pos (0-based
// storage position) as completed.
func completeTaskCmd(store *storage.Storage, pos int) tea.Cmd {
	return func() tea.Msg {
		tasks := store.Load()
		if pos < 0 || pos >= len(tasks) {
			return taskCompletedMsg{stale: true}
		}
		if tasks[pos].Completed {
			return taskCompletedMsg{text: tasks[pos].Text, alreadyDone: true}
		}
		tasks[pos].Completed = true
		return taskCompletedMsg{text: tasks[pos].Text, err: store.Save(tasks)}
	}
}

// removeTaskCmd returns a command that deletes the task at pos.
func removeTaskCmd(store *storage.Storage, pos int) tea.Cmd {
	return func() tea.Msg {
		tasks := store.Load()
		if pos < 0 || pos >= len(tasks) {
			return taskRemovedMsg{stale: true}
		}
		removed := tasks[pos]
		tasks = append(tasks[:pos], tasks[pos+1:]...)
		return taskRemovedMsg{text: removed.Text, err: store.Save(tasks)}
	}
}

// clearCompletedCmd returns a command that removes all completed tasks.
func clearCompletedCmd(store *storage.Storage) tea.Cmd {
	return func() tea.Msg {
		tasks := store.Load()
		remaining := make([]storage.Task, 0, len(tasks))
		cleared := 0
		for _, t := range tasks {
			if t.Completed {
				cleared++
				continue
			}
			remaining = append(remaining, t)
		}
		if cleared == 0 {
			return completedClearedMsg{}
		}
		return completedClearedMsg{cleared: cleared, err: store.Save(remaining)}
	}
}
