package storage

import (
	"os"
	"path/filepath"
	"testing"
)

// FuzzLoad feeds arbitrary bytes through the on-disk document path. Load must
// never panic and must always return a usable (possibly empty) list.
func FuzzLoad(f *testing.F) {
	f.Add([]byte(`[]`))
	f.Add([]byte(`[{"text":"Buy milk","completed":false,"created":"2025-03-14 09:26"}]`))
	f.Add([]byte(`null`))
	f.Add([]byte(``))
	f.Add([]byte(`{"tasks":[]}`))
	f.Add([]byte(`[{"text":`))
	f.Add([]byte("\x00\x01\x02"))
	f.Add([]byte(`[1,2,3]`))

	f.Fuzz(func(t *testing.T, data []byte) {
		dir := t.TempDir()
		path := filepath.Join(dir, "tasks.json")
		if err := os.WriteFile(path, data, 0600); err != nil {
			t.Skip()
		}

		store, err := New(path)
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}

		tasks := store.Load()
		if tasks == nil {
			t.Fatal("Load() returned nil")
		}

		// Whatever was loaded must save and reload cleanly.
		if err := store.Save(tasks); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		reloaded := store.Load()
		if len(reloaded) != len(tasks) {
			t.Fatalf("reloaded %d tasks, saved %d", len(reloaded), len(tasks))
		}
	})
}
