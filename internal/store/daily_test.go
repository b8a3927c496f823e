package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"slangvault/internal/dictionary"
	"slangvault/internal/logging"
)

var day = time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

func entry(id int64, word string) dictionary.Entry {
	return dictionary.Entry{
		DefID:      id,
		Word:       word,
		Definition: "def of " + word,
		Example:    "example of " + word,
		WrittenOn:  "2026-08-31T00:00:00.000Z",
	}
}

func TestDailyAppendCreatesFile(t *testing.T) {
	s := NewDailyStore(t.TempDir(), logging.NewNop())

	if err := s.Append(day, []dictionary.Entry{entry(1, "Cat"), entry(2, "Dog")}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	got := s.Load(day)
	if len(got) != 2 {
		t.Fatalf("loaded %d entries, want 2", len(got))
	}
	if got[0].Word != "Cat" || got[1].Word != "Dog" {
		t.Errorf("order not preserved: %+v", got)
	}
	if filepath.Base(s.Path(day)) != "2026-08-31.json" {
		t.Errorf("unexpected file name %q", s.Path(day))
	}
}

func TestDailyAppendExtendsExistingFile(t *testing.T) {
	s := NewDailyStore(t.TempDir(), logging.NewNop())

	if err := s.Append(day, []dictionary.Entry{entry(1, "Cat")}); err != nil {
		t.Fatalf("first append: %v", err)
	}
	if err := s.Append(day, []dictionary.Entry{entry(2, "Dog")}); err != nil {
		t.Fatalf("second append: %v", err)
	}

	got := s.Load(day)
	if len(got) != 2 {
		t.Fatalf("loaded %d entries, want 2", len(got))
	}
	if got[0].DefID != 1 || got[1].DefID != 2 {
		t.Errorf("append order wrong: %+v", got)
	}
}

func TestDailyAppendEmptySetLeavesFileUntouched(t *testing.T) {
	s := NewDailyStore(t.TempDir(), logging.NewNop())

	if err := s.Append(day, []dictionary.Entry{entry(1, "Cat")}); err != nil {
		t.Fatalf("seed append: %v", err)
	}
	before, err := os.ReadFile(s.Path(day))
	if err != nil {
		t.Fatalf("read dump: %v", err)
	}

	if err := s.Append(day, nil); err != nil {
		t.Fatalf("empty append: %v", err)
	}
	after, err := os.ReadFile(s.Path(day))
	if err != nil {
		t.Fatalf("re-read dump: %v", err)
	}
	if string(before) != string(after) {
		t.Error("empty merge changed the file content")
	}
}

func TestDailyAppendStartsEmptyOnCorruptFile(t *testing.T) {
	dir := t.TempDir()
	s := NewDailyStore(dir, logging.NewNop())

	if err := os.WriteFile(s.Path(day), []byte("{{{{"), 0o644); err != nil {
		t.Fatalf("write corrupt dump: %v", err)
	}

	if err := s.Append(day, []dictionary.Entry{entry(3, "Eel")}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	got := s.Load(day)
	if len(got) != 1 || got[0].DefID != 3 {
		t.Errorf("corrupt file should be replaced by fresh sequence, got %+v", got)
	}
}

func TestDailyFilesArePerDate(t *testing.T) {
	s := NewDailyStore(t.TempDir(), logging.NewNop())
	other := day.AddDate(0, 0, 1)

	if err := s.Append(day, []dictionary.Entry{entry(1, "Cat")}); err != nil {
		t.Fatalf("append day one: %v", err)
	}
	if err := s.Append(other, []dictionary.Entry{entry(2, "Dog")}); err != nil {
		t.Fatalf("append day two: %v", err)
	}

	if n := len(s.Load(day)); n != 1 {
		t.Errorf("day one has %d entries, want 1", n)
	}
	if n := len(s.Load(other)); n != 1 {
		t.Errorf("day two has %d entries, want 1", n)
	}
}
