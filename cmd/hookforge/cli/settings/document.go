package settings

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/hookforge/cli/cmd/hookforge/cli/hook"
	"github.com/hookforge/cli/cmd/hookforge/cli/jsonutil"
)

// PersistenceError wraps a failed read or write of the settings
// document. Nothing is partially written: a failed update leaves the
// file as it was.
type PersistenceError struct {
	Op   string
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Document is a settings.json file held as raw bytes. Only the hooks
// subtree is ever rewritten; every other top-level key keeps its
// structure and order.
type Document struct {
	path    string
	raw     []byte
	existed bool
}

// LoadDocument reads the settings file at path. A missing file is an
// empty document, not an error; unreadable or invalid JSON is a
// PersistenceError.
func LoadDocument(path string) (*Document, error) {
	raw, err := os.ReadFile(path) //nolint:gosec // path comes from project root resolution
	if os.IsNotExist(err) {
		return &Document{path: path, raw: []byte("{}")}, nil
	}
	if err != nil {
		return nil, &PersistenceError{Op: "read", Path: path, Err: err}
	}
	if !gjson.ValidBytes(raw) {
		return nil, &PersistenceError{Op: "parse", Path: path, Err: fmt.Errorf("not valid JSON")}
	}
	return &Document{path: path, raw: raw, existed: true}, nil
}

// Exists reports whether the document was read from disk.
func (d *Document) Exists() bool { return d.existed }

// Hooks extracts the hooks subtree. A missing or malformed subtree is
// empty; a kind whose value is not a list contributes no preserved
// entries and will be rebuilt from the generated side.
func (d *Document) Hooks() Hooks {
	hooks := Hooks{}
	tree := gjson.GetBytes(d.raw, "hooks")
	if !tree.IsObject() {
		return hooks
	}
	tree.ForEach(func(key, value gjson.Result) bool {
		if !value.IsArray() {
			hooks[key.String()] = nil
			return true
		}
		list := value.Array()
		entries := make([]json.RawMessage, 0, len(list))
		for _, item := range list {
			entries = append(entries, json.RawMessage(item.Raw))
		}
		hooks[key.String()] = entries
		return true
	})
	return hooks
}

// SetHooks replaces the hooks subtree in place, leaving all other
// top-level keys byte-identical in structure and order.
func (d *Document) SetHooks(hooks Hooks) error {
	tree, err := json.Marshal(hooks)
	if err != nil {
		return err
	}
	raw, err := sjson.SetRawBytes(d.raw, "hooks", tree)
	if err != nil {
		return err
	}
	d.raw = raw
	return nil
}

// Backup copies the document beside itself with a timestamped name
// and returns the backup path.
func (d *Document) Backup(now time.Time) (string, error) {
	base := filepath.Base(d.path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	name := fmt.Sprintf("%s.backup.%s.json", stem, now.Format("20060102_150405"))
	backupPath := filepath.Join(filepath.Dir(d.path), name)
	if err := os.WriteFile(backupPath, d.raw, 0o600); err != nil {
		return "", &PersistenceError{Op: "back up", Path: d.path, Err: err}
	}
	return backupPath, nil
}

// Save commits the document atomically: the new bytes land in a temp
// file first and are renamed over the target, so a crash never leaves
// a half-written settings file.
func (d *Document) Save() error {
	pretty, err := jsonutil.IndentWithNewline(d.raw, "", "  ")
	if err != nil {
		return &PersistenceError{Op: "format", Path: d.path, Err: err}
	}

	dir := filepath.Dir(d.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return &PersistenceError{Op: "create directory for", Path: d.path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, ".settings-*.json")
	if err != nil {
		return &PersistenceError{Op: "write", Path: d.path, Err: err}
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) //nolint:errcheck // no-op after successful rename

	if _, err := tmp.Write(pretty); err != nil {
		tmp.Close() //nolint:errcheck,gosec // write error takes precedence
		return &PersistenceError{Op: "write", Path: d.path, Err: err}
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close() //nolint:errcheck,gosec // chmod error takes precedence
		return &PersistenceError{Op: "write", Path: d.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &PersistenceError{Op: "write", Path: d.path, Err: err}
	}
	if err := os.Rename(tmpPath, d.path); err != nil {
		return &PersistenceError{Op: "write", Path: d.path, Err: err}
	}
	return nil
}

// Update runs the full sync for one registry against the settings
// file at path: optional timestamped backup, generate, merge, atomic
// save. Progress messages go to out.
func Update(path string, reg *hook.Registry, backup bool, out io.Writer) error {
	doc, err := LoadDocument(path)
	if err != nil {
		return err
	}

	if backup && doc.Exists() {
		backupPath, err := doc.Backup(time.Now())
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "✓ Backed up: %s\n", backupPath)
	}

	generated, err := Generate(reg).Hooks()
	if err != nil {
		return fmt.Errorf("failed to encode generated hooks: %w", err)
	}
	if err := doc.SetHooks(Merge(doc.Hooks(), generated)); err != nil {
		return fmt.Errorf("failed to rewrite hooks subtree: %w", err)
	}
	if err := doc.Save(); err != nil {
		return err
	}
	fmt.Fprintf(out, "✓ Configuration updated: %s\n", path)
	return nil
}
