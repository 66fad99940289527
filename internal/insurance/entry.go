package insurance

import "github.com/BartokGyorgy07/webkert-insurance/internal/docstore"

// IndexEntry is one element of an owner's denormalized index. Historical data
// mixes bare record ids with embedded partial copies; entries written today
// are bare ids only, so embedded copies can no longer go stale (the copy is
// still decoded for old documents).
type IndexEntry struct {
	ID string
	// Embedded holds the cached partial copy for legacy entries, nil for
	// bare-id entries.
	Embedded docstore.Fields
}

// BareEntry builds an id-only index entry.
func BareEntry(id string) IndexEntry { return IndexEntry{ID: id} }

// EntryFromValue decodes one stored index element. Supported shapes are a
// bare id string and an object with an "id" field; anything else is dropped.
func EntryFromValue(v any) (IndexEntry, bool) {
	switch val := v.(type) {
	case string:
		if val == "" {
			return IndexEntry{}, false
		}
		return IndexEntry{ID: val}, true
	case map[string]any:
		id, ok := val["id"].(string)
		if !ok || id == "" {
			return IndexEntry{}, false
		}
		return IndexEntry{ID: id, Embedded: docstore.Fields(val)}, true
	case docstore.Fields:
		id, ok := val["id"].(string)
		if !ok || id == "" {
			return IndexEntry{}, false
		}
		return IndexEntry{ID: id, Embedded: val}, true
	default:
		return IndexEntry{}, false
	}
}

// EntryIDs extracts the record ids referenced by entries, in order.
func EntryIDs(entries []IndexEntry) []string {
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	return ids
}

// EntriesToField renders entries back into the stored index shape. Legacy
// embedded copies round-trip untouched.
func EntriesToField(entries []IndexEntry) []any {
	out := make([]any, 0, len(entries))
	for _, e := range entries {
		if e.Embedded != nil {
			out = append(out, map[string]any(e.Embedded))
			continue
		}
		out = append(out, e.ID)
	}
	return out
}
