package dedup

import (
	"os"
	"path/filepath"
	"testing"

	"slangvault/internal/logging"
)

func writeDump(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestAdmitOncePerID(t *testing.T) {
	set := NewSeenSet()

	if !set.Admit(1) {
		t.Fatal("first admission of id 1 should succeed")
	}
	if set.Admit(1) {
		t.Fatal("second admission of id 1 should fail")
	}
	set.Commit()
	if set.Admit(1) {
		t.Fatal("admission after commit should still fail")
	}
	if !set.Admit(2) {
		t.Fatal("unrelated id should be admitted")
	}
	if set.Len() != 2 {
		t.Errorf("Len = %d, want 2", set.Len())
	}
}

func TestRollbackForgetsPendingOnly(t *testing.T) {
	set := NewSeenSet()

	if !set.Admit(1) {
		t.Fatal("admit 1")
	}
	set.Commit()
	if !set.Admit(2) {
		t.Fatal("admit 2")
	}
	set.Rollback()

	if set.Admit(1) {
		t.Error("committed id must survive rollback")
	}
	if !set.Admit(2) {
		t.Error("rolled-back id should be admissible again")
	}
}

func TestBootstrapCollectsIDsFromDumps(t *testing.T) {
	dir := t.TempDir()
	writeDump(t, dir, "2026-08-30.json", `[{"defid":1,"word":"Cat","definition":"d","example":"e","written_on":"w"},{"defid":2,"word":"Dog","definition":"d","example":"e","written_on":"w"}]`)
	writeDump(t, dir, "2026-08-31.json", `[{"defid":3,"word":"cat2","definition":"d","example":"e","written_on":"w"}]`)
	writeDump(t, dir, "notes.txt", "not a dump")

	set := Bootstrap(dir, logging.NewNop())
	if set.Len() != 3 {
		t.Fatalf("Len = %d, want 3", set.Len())
	}
	for _, id := range []int64{1, 2, 3} {
		if set.Admit(id) {
			t.Errorf("id %d should already be seen", id)
		}
	}
}

func TestBootstrapIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	writeDump(t, dir, "2026-08-30.json", `[{"defid":10,"word":"a","definition":"d","example":"e","written_on":"w"},{"defid":11,"word":"b","definition":"d","example":"e","written_on":"w"}]`)

	first := Bootstrap(dir, logging.NewNop())
	second := Bootstrap(dir, logging.NewNop())
	if first.Len() != second.Len() {
		t.Errorf("loads differ: %d vs %d", first.Len(), second.Len())
	}
	for _, id := range []int64{10, 11} {
		if first.Contains(id) != second.Contains(id) {
			t.Errorf("membership of id %d differs between loads", id)
		}
	}
}

func TestBootstrapSkipsCorruptDump(t *testing.T) {
	dir := t.TempDir()
	writeDump(t, dir, "2026-08-29.json", `{"this is": "not an array`)
	writeDump(t, dir, "2026-08-30.json", `[{"defid":5,"word":"ok","definition":"d","example":"e","written_on":"w"}]`)

	set := Bootstrap(dir, logging.NewNop())
	if set.Len() != 1 {
		t.Fatalf("Len = %d, want 1 (corrupt file contributes zero ids)", set.Len())
	}
	if !set.Contains(5) {
		t.Error("id from the healthy dump should be present")
	}
}

func TestBootstrapMissingDirectory(t *testing.T) {
	set := Bootstrap(filepath.Join(t.TempDir(), "nope"), logging.NewNop())
	if set.Len() != 0 {
		t.Errorf("Len = %d, want 0", set.Len())
	}
}
