// Package dictionary defines the archive's data model: the Entry stored in
// daily dumps, the Record stored in the letter index, and the bucketing rule
// that partitions words across index files.
package dictionary

// CatchAllBucket collects words whose first character is not an ASCII letter.
const CatchAllBucket = "OTHER"

// Entry is one dictionary definition as fetched from the API and stored in
// the daily dumps. Entries are immutable once created; the defid is assigned
// by the remote service and is unique across the whole archive.
type Entry struct {
	DefID      int64  `json:"defid"`
	Word       string `json:"word"`
	Definition string `json:"definition"`
	Example    string `json:"example"`
	WrittenOn  string `json:"written_on"`
}

// Record is the per-definition payload stored in the letter index. The word
// itself is the map key in the index file, so it is not repeated here.
type Record struct {
	DefID      int64  `json:"defid"`
	Definition string `json:"definition"`
	Example    string `json:"example"`
	WrittenOn  string `json:"written_on"`
}

// Record returns the letter-index representation of the entry.
func (e Entry) Record() Record {
	return Record{
		DefID:      e.DefID,
		Definition: e.Definition,
		Example:    e.Example,
		WrittenOn:  e.WrittenOn,
	}
}

// Bucket returns the letter-index bucket for a word: the uppercase ASCII
// first letter, or CatchAllBucket when the word is empty or starts with a
// non-alphabetic byte. Word keys inside a bucket keep their original case;
// only the bucket name is derived from the uppercased first character.
func Bucket(word string) string {
	if word == "" {
		return CatchAllBucket
	}
	switch c := word[0]; {
	case c >= 'a' && c <= 'z':
		return string(c - 'a' + 'A')
	case c >= 'A' && c <= 'Z':
		return string(c)
	default:
		return CatchAllBucket
	}
}
