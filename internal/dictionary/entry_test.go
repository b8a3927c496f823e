package dictionary

import "testing"

func TestBucket(t *testing.T) {
	cases := []struct {
		word string
		want string
	}{
		{"Apple", "A"},
		{"apple", "A"},
		{"zebra", "Z"},
		{"Dog", "D"},
		{"42Coins", CatchAllBucket},
		{"-dash", CatchAllBucket},
		{"", CatchAllBucket},
		{"Übermensch", CatchAllBucket},
		{" leading space", CatchAllBucket},
	}
	for _, tc := range cases {
		if got := Bucket(tc.word); got != tc.want {
			t.Errorf("Bucket(%q) = %q, want %q", tc.word, got, tc.want)
		}
	}
}

func TestEntryRecord(t *testing.T) {
	entry := Entry{
		DefID:      42,
		Word:       "yeet",
		Definition: "to throw with force",
		Example:    "he yeeted it across the room",
		WrittenOn:  "2020-01-02T00:00:00.000Z",
	}

	rec := entry.Record()
	if rec.DefID != entry.DefID {
		t.Errorf("DefID = %d, want %d", rec.DefID, entry.DefID)
	}
	if rec.Definition != entry.Definition {
		t.Errorf("Definition = %q, want %q", rec.Definition, entry.Definition)
	}
	if rec.Example != entry.Example {
		t.Errorf("Example = %q, want %q", rec.Example, entry.Example)
	}
	if rec.WrittenOn != entry.WrittenOn {
		t.Errorf("WrittenOn = %q, want %q", rec.WrittenOn, entry.WrittenOn)
	}
}
