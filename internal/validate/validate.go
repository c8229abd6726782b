// Package validate holds the pure predicates used before mutating the task
// list. All functions are stateless.
package validate

import (
	"strconv"
	"strings"

	"todo/internal/storage"
)

// TaskText reports whether text contains at least one non-whitespace
// character.
func TaskText(text string) bool {
	return strings.TrimSpace(text) != ""
}

// TaskIndex reports whether index is a valid 1-based position in tasks.
func TaskIndex(tasks []storage.Task, index int) bool {
	return index >= 1 && index <= len(tasks)
}

// ResolveIndex parses raw as a base-10 integer and checks it against the
// list bounds. It returns false for anything unparseable or out of range;
// there is no clamping.
func ResolveIndex(tasks []storage.Task, raw string) (int, bool) {
	index, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	if !TaskIndex(tasks, index) {
		return 0, false
	}
	return index, true
}
