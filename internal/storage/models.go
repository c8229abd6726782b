package storage

import "time"

// CreatedLayout is the timestamp format stored in the tasks file.
// Minute resolution, no seconds or timezone.
const CreatedLayout = "2006-01-02 15:04"

// Task represents a single todo item.
type Task struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Created   string `json:"created"`
}

// NewTask builds a task from text, trimming is the caller's responsibility.
// Created is stamped with the given clock at minute resolution.
func NewTask(text string, now time.Time) Task {
	return Task{
		Text:    text,
		Created: now.Format(CreatedLayout),
	}
}
