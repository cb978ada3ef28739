package nav

// Kind discriminates dashboard commands.
type Kind int

const (
	CmdNone Kind = iota
	CmdSelectNode
	CmdSelectRow
	CmdMove
	CmdToggleOverlay
	CmdSwitchChart
	CmdPaginate
	CmdAdvanceFocus
	CmdToggleMap
	CmdToggleTheme
	CmdQuit
)

// Command is one user intent routed through the dashboard's dispatch loop.
// Dir is -1 or +1 for CmdMove and CmdPaginate and zero otherwise.
type Command struct {
	Kind  Kind
	Dir   int
	Panel Panel
}

func (k Kind) String() string {
	switch k {
	case CmdSelectNode:
		return "select-node"
	case CmdSelectRow:
		return "select-row"
	case CmdMove:
		return "move"
	case CmdToggleOverlay:
		return "toggle-overlay"
	case CmdSwitchChart:
		return "switch-chart"
	case CmdPaginate:
		return "paginate"
	case CmdAdvanceFocus:
		return "advance-focus"
	case CmdToggleMap:
		return "toggle-map"
	case CmdToggleTheme:
		return "toggle-theme"
	case CmdQuit:
		return "quit"
	default:
		return "none"
	}
}
