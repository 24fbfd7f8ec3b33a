package session

import "gridsnake/pkg/core"

// CommandKind enumerates the requests a session accepts.
type CommandKind uint8

const (
	CmdTick CommandKind = iota
	CmdTurn
	CmdRestart
)

// Command is one queued request for the session owner.
type Command struct {
	Kind CommandKind
	Dir  core.Direction
}

// Tick requests one simulation step.
func Tick() Command { return Command{Kind: CmdTick} }

// Turn requests a heading change.
func Turn(d core.Direction) Command { return Command{Kind: CmdTurn, Dir: d} }

// Restart requests a fresh game once the current one has finished.
func Restart() Command { return Command{Kind: CmdRestart} }

func (c Command) String() string {
	switch c.Kind {
	case CmdTick:
		return "tick"
	case CmdTurn:
		return "turn " + c.Dir.String()
	case CmdRestart:
		return "restart"
	default:
		return "unknown"
	}
}
