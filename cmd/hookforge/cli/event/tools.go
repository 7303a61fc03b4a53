package event

// Tool names the host's built-in tools as they appear in tool_name
// fields and matcher strings.
type Tool string

const (
	ToolBash         Tool = "Bash"
	ToolRead         Tool = "Read"
	ToolWrite        Tool = "Write"
	ToolEdit         Tool = "Edit"
	ToolNotebookEdit Tool = "NotebookEdit"
	ToolGlob         Tool = "Glob"
	ToolGrep         Tool = "Grep"

	ToolWebFetch  Tool = "WebFetch"
	ToolWebSearch Tool = "WebSearch"

	ToolTask      Tool = "Task"
	ToolTodoWrite Tool = "TodoWrite"

	ToolAskUserQuestion Tool = "AskUserQuestion"
	ToolEnterPlanMode   Tool = "EnterPlanMode"

	ToolSendMessage Tool = "SendMessage"
	ToolTeamCreate  Tool = "TeamCreate"
	ToolTeamDelete  Tool = "TeamDelete"

	ToolSkill Tool = "Skill"

	// ToolAll is the matcher wildcard.
	ToolAll Tool = "*"
)
