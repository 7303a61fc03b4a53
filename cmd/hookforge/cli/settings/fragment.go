// Package settings generates the hooks subtree of the host's
// settings.json from a registry, merges it into the user's document
// without touching anything the user wrote, and persists the result.
package settings

import (
	"encoding/json"
	"strings"

	"github.com/hookforge/cli/cmd/hookforge/cli/event"
	"github.com/hookforge/cli/cmd/hookforge/cli/hook"
)

// managedCommandPrefix is the exact prefix every generated command
// starts with. It is the sole marker for recognizing entries we own:
// prefix plus hook name round-trips without any side table.
const managedCommandPrefix = `"${CLAUDE_PROJECT_DIR}"/.claude/hooks/hookforge execute `

// Action is one command the host runs for a hook entry.
type Action struct {
	Type    string `json:"type"`
	Command string `json:"command"`
	Timeout int    `json:"timeout,omitempty"`
}

// Entry is one hook entry in the settings hooks subtree. Matcher is
// only set for tool-scoped event kinds.
type Entry struct {
	Matcher string   `json:"matcher,omitempty"`
	Actions []Action `json:"hooks"`
}

// Fragment is a freshly generated hooks subtree, keyed by event kind
// name. Kinds without hooks are absent, never empty lists.
type Fragment map[string][]Entry

// ManagedCommand builds the invocation command for a hook name.
func ManagedCommand(name string) string {
	return managedCommandPrefix + name
}

// ManagedHook reports whether command is one of ours and, if so,
// which hook name it encodes.
func ManagedHook(command string) (string, bool) {
	name, ok := strings.CutPrefix(command, managedCommandPrefix)
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

// Generate walks the registry in its listing order and emits one
// entry per descriptor: a single command action built from the
// descriptor's name, carrying its timeout in seconds, plus the
// matcher when the kind is tool-scoped.
func Generate(reg *hook.Registry) Fragment {
	frag := Fragment{}
	for _, group := range reg.List() {
		contract, err := event.Lookup(string(group.Kind))
		if err != nil {
			// Registration already validated the kind.
			continue
		}
		entries := make([]Entry, 0, len(group.Hooks))
		for _, d := range group.Hooks {
			entry := Entry{
				Actions: []Action{{
					Type:    "command",
					Command: ManagedCommand(d.Name),
					Timeout: int(d.Timeout.Seconds()),
				}},
			}
			if contract.Matcher {
				entry.Matcher = d.Matcher
			}
			entries = append(entries, entry)
		}
		frag[string(group.Kind)] = entries
	}
	return frag
}

// Hooks converts the fragment to the raw entry representation the
// merger operates on.
func (f Fragment) Hooks() (Hooks, error) {
	hooks := Hooks{}
	for kind, entries := range f {
		raws := make([]json.RawMessage, 0, len(entries))
		for _, entry := range entries {
			raw, err := json.Marshal(entry)
			if err != nil {
				return nil, err
			}
			raws = append(raws, raw)
		}
		hooks[kind] = raws
	}
	return hooks, nil
}
