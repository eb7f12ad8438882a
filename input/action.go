package input

// Action is what a key does in the raycaster
type Action uint8

const (
	ActionNone Action = iota

	// Movement, held while the key repeats
	ActionForward
	ActionBackward
	ActionTurnLeft
	ActionTurnRight

	// One-shot, handled by the host
	ActionQuit
	ActionToggleMinimap
	ActionToggleMute

	actionCount
)

// actionRegistry maps canonical action names to actions
// Used by LoadKeyConfig to resolve keymap override values
var actionRegistry = map[string]Action{
	"none":           ActionNone,
	"forward":        ActionForward,
	"backward":       ActionBackward,
	"turn_left":      ActionTurnLeft,
	"turn_right":     ActionTurnRight,
	"quit":           ActionQuit,
	"toggle_minimap": ActionToggleMinimap,
	"toggle_mute":    ActionToggleMute,
}

// String returns the canonical name
func (a Action) String() string {
	for name, act := range actionRegistry {
		if act == a {
			return name
		}
	}
	return "unknown"
}

// IsMovement reports whether the action feeds the held-key tracker
func (a Action) IsMovement() bool {
	return a >= ActionForward && a <= ActionTurnRight
}

// opposite returns the action cancelled by a press of a, ActionNone for non-movement
func (a Action) opposite() Action {
	switch a {
	case ActionForward:
		return ActionBackward
	case ActionBackward:
		return ActionForward
	case ActionTurnLeft:
		return ActionTurnRight
	case ActionTurnRight:
		return ActionTurnLeft
	default:
		return ActionNone
	}
}
