package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRemoveEventLog(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "events.db")

	for _, p := range []string{dbPath, dbPath + "-wal", dbPath + "-shm"} {
		if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", p, err)
		}
	}

	if err := removeEventLog(dbPath); err != nil {
		t.Fatalf("removeEventLog: %v", err)
	}

	for _, p := range []string{dbPath, dbPath + "-wal", dbPath + "-shm"} {
		if _, err := os.Stat(p); !os.IsNotExist(err) {
			t.Errorf("%s still exists", p)
		}
	}

	// Repeating on missing files must stay a no-op.
	if err := removeEventLog(dbPath); err != nil {
		t.Fatalf("removeEventLog on missing files: %v", err)
	}
}
