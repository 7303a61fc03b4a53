package settings

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/hookforge/cli/cmd/hookforge/cli/event"
	"github.com/hookforge/cli/cmd/hookforge/cli/hook"
)

type stubPre struct{}

func (stubPre) PreToolUse(context.Context, *event.PreToolUseInput) (*event.PreToolUseOutput, error) {
	return nil, nil
}

type stubSessionEnd struct{}

func (stubSessionEnd) SessionEnd(context.Context, *event.SessionEndInput) (*event.SessionEndOutput, error) {
	return nil, nil
}

func buildRegistry(t *testing.T) *hook.Registry {
	t.Helper()
	reg := hook.NewRegistry(io.Discard)
	require.NoError(t, reg.Register(event.PreToolUse, hook.Candidate{
		Name:    "GuardA",
		Impl:    stubPre{},
		Matcher: "Bash",
		Timeout: 30 * time.Second,
	}, "unit/a"))
	require.NoError(t, reg.Register(event.PreToolUse, hook.Candidate{
		Name: "GuardB",
		Impl: stubPre{},
	}, "unit/b"))
	require.NoError(t, reg.Register(event.SessionEnd, hook.Candidate{
		Name: "Closer",
		Impl: stubSessionEnd{},
	}, "unit/c"))
	return reg
}

func TestManagedCommandRoundTrip(t *testing.T) {
	command := ManagedCommand("GuardA")

	name, ok := ManagedHook(command)
	require.True(t, ok)
	assert.Equal(t, "GuardA", name)

	_, ok = ManagedHook("run /tmp/manual.sh")
	assert.False(t, ok)
	_, ok = ManagedHook(managedCommandPrefix)
	assert.False(t, ok, "a bare prefix encodes no hook name")
}

func TestGenerate(t *testing.T) {
	frag := Generate(buildRegistry(t))

	require.Len(t, frag, 2, "kinds without hooks must be absent")

	pre := frag["PreToolUse"]
	require.Len(t, pre, 2)
	assert.Equal(t, "Bash", pre[0].Matcher)
	assert.Equal(t, ManagedCommand("GuardA"), pre[0].Actions[0].Command)
	assert.Equal(t, 30, pre[0].Actions[0].Timeout)
	assert.Equal(t, "command", pre[0].Actions[0].Type)
	// Defaults: matcher "*", 10s.
	assert.Equal(t, "*", pre[1].Matcher)
	assert.Equal(t, 10, pre[1].Actions[0].Timeout)

	end := frag["SessionEnd"]
	require.Len(t, end, 1)
	assert.Empty(t, end[0].Matcher, "SessionEnd is not tool-scoped and never carries a matcher")
}

func TestFragment_RoundTrip(t *testing.T) {
	frag := Generate(buildRegistry(t))

	hooks, err := frag.Hooks()
	require.NoError(t, err)

	decoded := Fragment{}
	for kind, entries := range hooks {
		for _, raw := range entries {
			var entry Entry
			require.NoError(t, json.Unmarshal(raw, &entry))
			decoded[kind] = append(decoded[kind], entry)
		}
	}
	assert.Equal(t, frag, decoded)
}

func entry(t *testing.T, raw string) json.RawMessage {
	t.Helper()
	require.True(t, gjson.Valid(raw), "bad test fixture: %s", raw)
	return json.RawMessage(raw)
}

// managedCommandJSON returns ManagedCommand(name) as a quoted JSON
// string literal, so it can be spliced into raw fixtures even though
// the command itself contains double quotes.
func managedCommandJSON(t *testing.T, name string) string {
	t.Helper()
	b, err := json.Marshal(ManagedCommand(name))
	require.NoError(t, err)
	return string(b)
}

func TestMerge_PreservesUserEntries(t *testing.T) {
	manual := entry(t, `{"hooks":[{"type":"command","command":"run /tmp/manual.sh"}]}`)
	managed := entry(t, `{"matcher":"*","hooks":[{"type":"command","command":`+managedCommandJSON(t, "Old")+`,"timeout":10}]}`)
	existing := Hooks{"PreToolUse": {manual, managed}}

	fresh := entry(t, `{"matcher":"*","hooks":[{"type":"command","command":`+managedCommandJSON(t, "New")+`,"timeout":10}]}`)
	generated := Hooks{"PreToolUse": {fresh}}

	merged := Merge(existing, generated)

	require.Len(t, merged["PreToolUse"], 2)
	assert.JSONEq(t, string(manual), string(merged["PreToolUse"][0]), "user entry survives in place")
	assert.JSONEq(t, string(fresh), string(merged["PreToolUse"][1]), "stale managed entry replaced, not duplicated")
}

func TestMerge_DropsEmptiedKinds(t *testing.T) {
	managed := entry(t, `{"hooks":[{"type":"command","command":`+managedCommandJSON(t, "OldHook")+`,"timeout":10}]}`)
	existing := Hooks{"SessionEnd": {managed}}

	merged := Merge(existing, Hooks{})

	_, ok := merged["SessionEnd"]
	assert.False(t, ok, "a kind left with no entries must not appear at all")
}

func TestMerge_EmptyFragmentKeepsManualEntries(t *testing.T) {
	manual := entry(t, `{"hooks":[{"type":"command","command":"run /tmp/manual.sh"}]}`)
	existing := Hooks{"Notification": {manual}}

	merged := Merge(existing, Hooks{})

	require.Len(t, merged["Notification"], 1)
	assert.JSONEq(t, string(manual), string(merged["Notification"][0]))
}

func TestMerge_AddsFragmentOnlyKinds(t *testing.T) {
	fresh := entry(t, `{"hooks":[{"type":"command","command":`+managedCommandJSON(t, "New")+`,"timeout":10}]}`)
	merged := Merge(Hooks{}, Hooks{"SessionStart": {fresh}, "Stop": {}})

	require.Len(t, merged["SessionStart"], 1)
	_, ok := merged["Stop"]
	assert.False(t, ok, "empty fragment lists must not be materialized")
}

func TestMerge_Idempotent(t *testing.T) {
	manual := entry(t, `{"hooks":[{"type":"command","command":"run /tmp/manual.sh"}]}`)
	stale := entry(t, `{"hooks":[{"type":"command","command":`+managedCommandJSON(t, "Old")+`,"timeout":10}]}`)
	existing := Hooks{
		"PreToolUse": {manual, stale},
		"SessionEnd": {stale},
	}

	generated, err := Generate(buildRegistry(t)).Hooks()
	require.NoError(t, err)

	once := Merge(existing, generated)
	twice := Merge(once, generated)

	require.Equal(t, len(once), len(twice))
	for kind, entries := range once {
		require.Len(t, twice[kind], len(entries), "kind %s", kind)
		for i := range entries {
			assert.JSONEq(t, string(entries[i]), string(twice[kind][i]), "kind %s entry %d", kind, i)
		}
	}
}

func TestIsManagedEntry(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{"managed single action", `{"hooks":[{"type":"command","command":` + managedCommandJSON(t, "X") + `}]}`, true},
		{"user command", `{"hooks":[{"type":"command","command":"run /tmp/manual.sh"}]}`, false},
		{"mixed actions stay with the user", `{"hooks":[{"type":"command","command":` + managedCommandJSON(t, "X") + `},{"type":"command","command":"mine"}]}`, false},
		{"non-command action", `{"hooks":[{"type":"script","command":` + managedCommandJSON(t, "X") + `}]}`, false},
		{"no actions", `{"matcher":"*"}`, false},
		{"empty action list", `{"hooks":[]}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isManagedEntry(entry(t, tt.raw)))
		})
	}
}

func TestDocument_LoadMissingFileIsEmpty(t *testing.T) {
	doc, err := LoadDocument(filepath.Join(t.TempDir(), "settings.json"))
	require.NoError(t, err)
	assert.False(t, doc.Exists())
	assert.Empty(t, doc.Hooks())
}

func TestDocument_LoadRejectsInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadDocument(path)
	var perr *PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "parse", perr.Op)
}

func TestDocument_SetHooksPreservesForeignKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	original := `{"permissions":{"allow":["Bash"]},"hooks":{"Stop":[]},"model":"opus"}`
	require.NoError(t, os.WriteFile(path, []byte(original), 0o644))

	doc, err := LoadDocument(path)
	require.NoError(t, err)
	require.NoError(t, doc.SetHooks(Hooks{"Notification": {entry(t, `{"hooks":[{"type":"command","command":"x"}]}`)}}))
	require.NoError(t, doc.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	parsed := gjson.ParseBytes(data)
	assert.Equal(t, "opus", parsed.Get("model").String())
	assert.Equal(t, "Bash", parsed.Get("permissions.allow.0").String())
	assert.True(t, parsed.Get("hooks.Notification").IsArray())
	assert.False(t, parsed.Get("hooks.Stop").Exists())
}

func TestDocument_Backup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a":1}`), 0o644))

	doc, err := LoadDocument(path)
	require.NoError(t, err)

	now := time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC)
	backupPath, err := doc.Backup(now)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "settings.backup.20260828_103000.json"), backupPath)
	data, err := os.ReadFile(backupPath)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(data))
}

func TestUpdate_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".claude", "settings.json")

	var out strings.Builder
	require.NoError(t, Update(path, buildRegistry(t), true, &out))

	// No backup line for a file that did not exist yet.
	assert.NotContains(t, out.String(), "Backed up")
	assert.Contains(t, out.String(), "✓ Configuration updated: "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	parsed := gjson.ParseBytes(data)
	assert.EqualValues(t, 2, parsed.Get("hooks.PreToolUse.#").Int())
	assert.EqualValues(t, 1, parsed.Get("hooks.SessionEnd.#").Int())
	assert.True(t, strings.HasSuffix(string(data), "\n"), "saved document ends with a newline")
}
