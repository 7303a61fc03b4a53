package list

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hookforge/cli/cmd/hookforge/cli/hook"
)

// Styles for the TUI.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	hookStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			MarginTop(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)
)

// keyMap defines the keybindings for the TUI.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Enter    key.Binding
	Inspect  key.Binding
	Run      key.Binding
	Collapse key.Binding
	Expand   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("up/k", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("down/j", "move down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("left/h", "collapse"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("right/l", "expand"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "toggle/inspect"),
	),
	Inspect: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "inspect hook"),
	),
	Run: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "run sample event"),
	),
	Collapse: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "collapse all"),
	),
	Expand: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "expand all"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q", "quit"),
	),
}

// Model is the bubbletea model for the registry browser.
//
//nolint:recvcheck // Mixed receivers required by bubbletea's interface pattern
type Model struct {
	ctx context.Context //nolint:containedctx // carried for dispatching sample runs
	reg *hook.Registry

	tree     []*Node
	flatList []*Node
	cursor   int

	width    int
	height   int
	showHelp bool
	quitting bool
	detail   string

	result *Result
}

// NewModel creates a browser over the given registry and tree.
func NewModel(ctx context.Context, reg *hook.Registry, tree []*Node) Model {
	m := Model{ctx: ctx, reg: reg, tree: tree}
	m.updateFlatList()
	return m
}

func (m *Model) updateFlatList() {
	m.flatList = FlattenTree(m.tree)
	if m.cursor >= len(m.flatList) {
		m.cursor = len(m.flatList) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) current() *Node {
	if len(m.flatList) == 0 {
		return nil
	}
	return m.flatList[m.cursor]
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
//
//nolint:ireturn // Required by tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			m.detail = ""

		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.flatList)-1 {
				m.cursor++
			}
			m.detail = ""

		case key.Matches(msg, keys.Left):
			if node := m.current(); node != nil {
				if node.Expanded && len(node.Children) > 0 {
					node.Expanded = false
					m.updateFlatList()
				} else if node.Parent != nil {
					for i, n := range m.flatList {
						if n == node.Parent {
							m.cursor = i
							break
						}
					}
				}
			}

		case key.Matches(msg, keys.Right):
			if node := m.current(); node != nil && len(node.Children) > 0 {
				node.Expanded = true
				m.updateFlatList()
			}

		case key.Matches(msg, keys.Enter):
			if node := m.current(); node != nil {
				if len(node.Children) > 0 {
					node.Expanded = !node.Expanded
					m.updateFlatList()
				} else if node.Type == NodeTypeHook {
					m.detail = Inspect(node)
				}
			}

		case key.Matches(msg, keys.Inspect):
			if node := m.current(); node != nil && node.Type == NodeTypeHook {
				m.detail = Inspect(node)
			}

		case key.Matches(msg, keys.Run):
			if node := m.current(); node != nil && node.Type == NodeTypeHook {
				m.result = SampleRun(m.ctx, m.reg, node)
				m.quitting = true
				return m, tea.Quit
			}

		case key.Matches(msg, keys.Collapse):
			for _, node := range m.tree {
				node.Expanded = false
			}
			m.updateFlatList()

		case key.Matches(msg, keys.Expand):
			for _, node := range m.tree {
				node.Expanded = true
			}
			m.updateFlatList()

		case key.Matches(msg, keys.Help):
			m.showHelp = !m.showHelp
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Registered Hooks"))
	b.WriteString("\n\n")

	if len(m.flatList) == 0 {
		b.WriteString("No hooks registered.\n")
	} else {
		for i, node := range m.flatList {
			b.WriteString(m.renderNode(node, i == m.cursor))
			b.WriteString("\n")
		}
	}

	if m.detail != "" {
		b.WriteString(detailStyle.Render(m.detail))
		b.WriteString("\n")
	}

	if m.showHelp {
		b.WriteString("\n")
		b.WriteString(m.renderFullHelp())
	} else {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("[i]nspect  [r]un sample  [enter]toggle  [?]help  [q]uit"))
	}

	return b.String()
}

func (m Model) renderNode(node *Node, selected bool) string {
	indent := strings.Repeat("  ", NodeDepth(node))

	var expander string
	switch {
	case len(node.Children) == 0:
		expander = "  "
	case node.Expanded:
		expander = "v "
	default:
		expander = "> "
	}

	var style lipgloss.Style
	switch node.Type {
	case NodeTypeKind:
		style = kindStyle
	case NodeTypeHook:
		style = hookStyle
	}

	text := indent + expander + style.Render(node.Label)
	if selected {
		return selectedStyle.Render("> ") + text
	}
	return "  " + text
}

func (m Model) renderFullHelp() string {
	return helpStyle.Render(`Keybindings:
  up/k, down/j   Navigate
  left/h         Collapse / go to parent
  right/l        Expand
  enter          Toggle expand / inspect hook
  i              Inspect hook details
  r              Run the hook against a sample event
  c              Collapse all
  e              Expand all
  ?              Toggle help
  q/esc          Quit`)
}

// Result returns the last action's outcome after the model finishes.
func (m Model) Result() *Result {
	return m.result
}
