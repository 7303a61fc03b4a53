// Package list provides a hierarchical interactive view of the hook
// registry: event kinds at the top level, registered hooks beneath.
package list

import (
	"github.com/hookforge/cli/cmd/hookforge/cli/event"
	"github.com/hookforge/cli/cmd/hookforge/cli/hook"
)

// NodeType identifies the type of item in the tree.
type NodeType int

const (
	NodeTypeKind NodeType = iota
	NodeTypeHook
)

// Node represents an item in the hierarchical tree view.
type Node struct {
	Type  NodeType
	ID    string
	Label string

	// Kind-specific fields.
	Kind        event.Kind
	Description string

	// Hook-specific fields.
	Hook *hook.Descriptor

	Children []*Node
	Parent   *Node

	// UI state.
	Expanded bool
}

// Result is the outcome of an action performed from the browser,
// reported after the TUI exits.
type Result struct {
	HookName string
	Output   string
	Err      error
}
