package fetch

import (
	"strings"

	"slangvault/internal/dictionary"
)

// Extract maps a raw API record to a normalized Entry. All five fields must
// be present; textual fields are trimmed of surrounding whitespace. A record
// missing any required field yields ok=false and is dropped without
// disturbing the rest of the batch. written_on is stored verbatim.
func Extract(raw RawEntry) (dictionary.Entry, bool) {
	if raw.DefID == nil || raw.Word == nil || raw.Definition == nil || raw.Example == nil || raw.WrittenOn == nil {
		return dictionary.Entry{}, false
	}
	return dictionary.Entry{
		DefID:      *raw.DefID,
		Word:       strings.TrimSpace(*raw.Word),
		Definition: strings.TrimSpace(*raw.Definition),
		Example:    strings.TrimSpace(*raw.Example),
		WrittenOn:  *raw.WrittenOn,
	}, true
}
