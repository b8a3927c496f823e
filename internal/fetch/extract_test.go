package fetch

import "testing"

func strp(s string) *string { return &s }
func intp(i int64) *int64   { return &i }

func TestExtractCompleteRecord(t *testing.T) {
	raw := RawEntry{
		DefID:      intp(7),
		Word:       strp("  yeet "),
		Definition: strp(" to throw\n"),
		Example:    strp("\the yeeted it "),
		WrittenOn:  strp("2020-05-05T00:00:00.000Z"),
	}

	entry, ok := Extract(raw)
	if !ok {
		t.Fatal("Extract rejected a complete record")
	}
	if entry.DefID != 7 {
		t.Errorf("DefID = %d, want 7", entry.DefID)
	}
	if entry.Word != "yeet" {
		t.Errorf("Word = %q, want trimmed", entry.Word)
	}
	if entry.Definition != "to throw" {
		t.Errorf("Definition = %q, want trimmed", entry.Definition)
	}
	if entry.Example != "he yeeted it" {
		t.Errorf("Example = %q, want trimmed", entry.Example)
	}
	if entry.WrittenOn != "2020-05-05T00:00:00.000Z" {
		t.Errorf("WrittenOn = %q, want verbatim", entry.WrittenOn)
	}
}

func TestExtractDropsRecordsMissingFields(t *testing.T) {
	complete := RawEntry{
		DefID:      intp(1),
		Word:       strp("w"),
		Definition: strp("d"),
		Example:    strp("e"),
		WrittenOn:  strp("t"),
	}

	variants := map[string]func(RawEntry) RawEntry{
		"defid":      func(r RawEntry) RawEntry { r.DefID = nil; return r },
		"word":       func(r RawEntry) RawEntry { r.Word = nil; return r },
		"definition": func(r RawEntry) RawEntry { r.Definition = nil; return r },
		"example":    func(r RawEntry) RawEntry { r.Example = nil; return r },
		"written_on": func(r RawEntry) RawEntry { r.WrittenOn = nil; return r },
	}

	for field, mutate := range variants {
		if _, ok := Extract(mutate(complete)); ok {
			t.Errorf("record missing %s should be dropped", field)
		}
	}

	if _, ok := Extract(complete); !ok {
		t.Error("sanity: complete record should pass")
	}
}
