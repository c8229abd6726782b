package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// createTestStorage creates a Storage backed by a file in a temp directory.
func createTestStorage(t *testing.T) *Storage {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "tasks.json"))
	if err != nil {
		t.Fatalf("failed to create test storage: %v", err)
	}
	return store
}

func TestNew_CreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	if _, err := New(filepath.Join(dir, "tasks.json")); err != nil {
		t.Fatalf("New() error = %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("data directory not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("data directory path is not a directory")
	}
}

func TestNewTask(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	task := NewTask("Buy milk", now)

	if task.Text != "Buy milk" {
		t.Errorf("task.Text = %q, want %q", task.Text, "Buy milk")
	}
	if task.Completed {
		t.Error("new task should not be completed")
	}
	if task.Created != "2025-03-14 09:26" {
		t.Errorf("task.Created = %q, want %q", task.Created, "2025-03-14 09:26")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	store := createTestStorage(t)

	tasks := store.Load()
	if tasks == nil {
		t.Fatal("Load() returned nil, want empty slice")
	}
	if len(tasks) != 0 {
		t.Errorf("len(tasks) = %d, want 0", len(tasks))
	}
}

func TestLoad_Degraded(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "empty file", data: ""},
		{name: "whitespace only", data: "  \n\t "},
		{name: "truncated json", data: `[{"text":"Buy`},
		{name: "wrong shape", data: `{"tasks":[]}`},
		{name: "null document", data: `null`},
		{name: "plain garbage", data: "not json at all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := createTestStorage(t)
			if err := os.WriteFile(store.Path(), []byte(tt.data), 0600); err != nil {
				t.Fatalf("write fixture: %v", err)
			}

			tasks := store.Load()
			if tasks == nil {
				t.Fatal("Load() returned nil, want empty slice")
			}
			if len(tasks) != 0 {
				t.Errorf("len(tasks) = %d, want 0", len(tasks))
			}
		})
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	store := createTestStorage(t)

	saved := []Task{
		{Text: "Buy milk", Completed: false, Created: "2025-03-14 09:26"},
		{Text: "Написать отчёт", Completed: true, Created: "2025-03-14 10:00"},
		{Text: "Fix <script> & \"quotes\"", Completed: false, Created: "2025-03-15 08:12"},
	}

	if err := store.Save(saved); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded := store.Load()
	if len(loaded) != len(saved) {
		t.Fatalf("len(loaded) = %d, want %d", len(loaded), len(saved))
	}
	for i := range saved {
		if loaded[i] != saved[i] {
			t.Errorf("loaded[%d] = %+v, want %+v", i, loaded[i], saved[i])
		}
	}
}

func TestSave_DocumentFormat(t *testing.T) {
	store := createTestStorage(t)

	tasks := []Task{{Text: "Café & <tea> 日本語", Created: "2025-03-14 09:26"}}
	if err := store.Save(tasks); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	text := string(data)

	// Two-space indentation for human inspection.
	if !strings.Contains(text, "\n  {") {
		t.Errorf("document not indented with two spaces:\n%s", text)
	}
	// Non-ASCII and HTML-sensitive characters stored literally.
	if !strings.Contains(text, "Café & <tea> 日本語") {
		t.Errorf("text not preserved literally:\n%s", text)
	}
	if !strings.HasSuffix(text, "\n") {
		t.Error("document missing trailing newline")
	}
	// Document is a JSON array, matching the on-disk contract.
	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("document is not a JSON array: %v", err)
	}
	for _, key := range []string{"text", "completed", "created"} {
		if _, ok := raw[0][key]; !ok {
			t.Errorf("document record missing %q field", key)
		}
	}
}

func TestSave_OverwritesFully(t *testing.T) {
	store := createTestStorage(t)

	if err := store.Save([]Task{
		{Text: "one", Created: "2025-01-01 00:00"},
		{Text: "two", Created: "2025-01-01 00:01"},
	}); err != nil {
		t.Fatalf("first Save() error = %v", err)
	}
	if err := store.Save([]Task{{Text: "three", Created: "2025-01-01 00:02"}}); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}

	loaded := store.Load()
	if len(loaded) != 1 || loaded[0].Text != "three" {
		t.Errorf("loaded = %+v, want single task %q", loaded, "three")
	}
}

func TestSave_KeepsBackup(t *testing.T) {
	store := createTestStorage(t)

	if err := store.Save([]Task{{Text: "first", Created: "2025-01-01 00:00"}}); err != nil {
		t.Fatalf("first Save() error = %v", err)
	}
	if err := store.Save([]Task{{Text: "second", Created: "2025-01-01 00:01"}}); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}

	bak, err := os.ReadFile(store.Path() + ".bak")
	if err != nil {
		t.Fatalf("backup not written: %v", err)
	}
	if !strings.Contains(string(bak), "first") {
		t.Errorf("backup holds %q, want previous contents", string(bak))
	}
}

func TestSave_NilTreatedAsEmpty(t *testing.T) {
	store := createTestStorage(t)

	if err := store.Save(nil); err != nil {
		t.Fatalf("Save(nil) error = %v", err)
	}

	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("saved document = %q, want empty array", string(data))
	}
}

func TestSave_FailureIsReported(t *testing.T) {
	store := createTestStorage(t)

	// A directory at the target path makes the final rename fail.
	if err := os.Mkdir(store.Path(), 0700); err != nil {
		t.Fatalf("mkdir fixture: %v", err)
	}
	// Non-empty directories cannot be renamed over.
	if err := os.WriteFile(filepath.Join(store.Path(), "blocker"), []byte("x"), 0600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if err := store.Save([]Task{{Text: "doomed", Created: "2025-01-01 00:00"}}); err == nil {
		t.Error("Save() expected error when target is unwritable")
	}
}
