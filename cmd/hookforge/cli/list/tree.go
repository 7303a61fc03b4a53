package list

import (
	"fmt"

	"github.com/hookforge/cli/cmd/hookforge/cli/event"
	"github.com/hookforge/cli/cmd/hookforge/cli/hook"
)

// BuildTree converts a registry into a node tree. Hierarchy: event
// kind → hooks, both in registry order. The first kind starts
// expanded so the view opens with something to look at.
func BuildTree(reg *hook.Registry) []*Node {
	var nodes []*Node

	for i, group := range reg.List() {
		description := ""
		if contract, err := event.Lookup(string(group.Kind)); err == nil {
			description = contract.Description
		}

		kindNode := &Node{
			Type:        NodeTypeKind,
			ID:          string(group.Kind),
			Kind:        group.Kind,
			Description: description,
			Expanded:    i == 0,
		}
		kindNode.Label = formatKindLabel(group)

		for _, d := range group.Hooks {
			kindNode.Children = append(kindNode.Children, &Node{
				Type:   NodeTypeHook,
				ID:     string(group.Kind) + "/" + d.Name,
				Label:  formatHookLabel(d),
				Kind:   group.Kind,
				Hook:   d,
				Parent: kindNode,
			})
		}

		nodes = append(nodes, kindNode)
	}

	return nodes
}

func formatKindLabel(group hook.KindHooks) string {
	label := fmt.Sprintf("%s  (%d hook", group.Kind, len(group.Hooks))
	if len(group.Hooks) > 1 {
		label += "s"
	}
	return label + ")"
}

func formatHookLabel(d *hook.Descriptor) string {
	label := d.Name
	if d.Description != "" {
		desc := d.Description
		if len(desc) > 50 {
			desc = desc[:47] + "..."
		}
		label += " - " + desc
	}
	return label
}

// FlattenTree returns the visible nodes in display order, honoring
// expansion state.
func FlattenTree(nodes []*Node) []*Node {
	var flat []*Node
	for _, node := range nodes {
		flat = append(flat, node)
		if node.Expanded {
			flat = append(flat, node.Children...)
		}
	}
	return flat
}

// NodeDepth returns the depth of a node in the tree (0 for root).
func NodeDepth(node *Node) int {
	depth := 0
	for current := node.Parent; current != nil; current = current.Parent {
		depth++
	}
	return depth
}
