package settings

import (
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"
)

// Hooks is the raw hooks subtree: event kind name to its ordered
// entries, each kept as the bytes it had on disk so user extensions
// inside preserved entries survive untouched.
type Hooks map[string][]json.RawMessage

// isManagedEntry reports whether an entry was generated by us: every
// action must be a command starting with the managed prefix. Entries
// without actions, or with any foreign action, belong to the user.
func isManagedEntry(entry json.RawMessage) bool {
	actions := gjson.GetBytes(entry, "hooks")
	if !actions.IsArray() {
		return false
	}
	list := actions.Array()
	if len(list) == 0 {
		return false
	}
	for _, action := range list {
		if action.Get("type").String() != "command" {
			return false
		}
		if !strings.HasPrefix(action.Get("command").String(), managedCommandPrefix) {
			return false
		}
	}
	return true
}

// Merge reconciles a generated hooks subtree into an existing one.
// Per kind already in the document: entries recognized as managed are
// dropped (they are stale the moment a new generation exists), user
// entries keep their original relative order, and the generated
// entries are appended after them. A kind left with no entries is
// omitted entirely. Kinds that only exist in the generated subtree
// are added verbatim when non-empty.
//
// Merging the same generation twice is a no-op: the appended entries
// are recognized as managed next time around and replaced, never
// duplicated.
func Merge(existing, generated Hooks) Hooks {
	merged := Hooks{}

	for kind, entries := range existing {
		preserved := make([]json.RawMessage, 0, len(entries))
		for _, entry := range entries {
			if !isManagedEntry(entry) {
				preserved = append(preserved, entry)
			}
		}
		combined := append(preserved, generated[kind]...)
		if len(combined) > 0 {
			merged[kind] = combined
		}
	}

	for kind, entries := range generated {
		if _, ok := merged[kind]; ok {
			continue
		}
		if len(entries) > 0 {
			merged[kind] = entries
		}
	}

	return merged
}
