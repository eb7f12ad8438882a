package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps tcell keys to actions
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]Action

	// Printable rune bindings, case sensitive
	Runes map[rune]Action
}

// DefaultKeyTable binds arrows, WASD and the vi home row
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyUp:     ActionForward,
			tcell.KeyDown:   ActionBackward,
			tcell.KeyLeft:   ActionTurnLeft,
			tcell.KeyRight:  ActionTurnRight,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyCtrlQ:  ActionQuit,
			tcell.KeyCtrlS:  ActionToggleMute,
		},
		Runes: map[rune]Action{
			'w': ActionForward,
			's': ActionBackward,
			'a': ActionTurnLeft,
			'd': ActionTurnRight,
			'W': ActionForward,
			'S': ActionBackward,
			'A': ActionTurnLeft,
			'D': ActionTurnRight,

			'k': ActionForward,
			'j': ActionBackward,
			'h': ActionTurnLeft,
			'l': ActionTurnRight,

			'q': ActionQuit,
			'm': ActionToggleMinimap,
		},
	}
}

// Lookup resolves a key event, ActionNone when unbound
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev == nil {
		return ActionNone
	}
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}

// Merge applies override entries on top of kt, binding to ActionNone unbinds
func (kt *KeyTable) Merge(override *KeyTable) {
	if override == nil {
		return
	}
	for k, a := range override.SpecialKeys {
		if a == ActionNone {
			delete(kt.SpecialKeys, k)
			continue
		}
		kt.SpecialKeys[k] = a
	}
	for r, a := range override.Runes {
		if a == ActionNone {
			delete(kt.Runes, r)
			continue
		}
		kt.Runes[r] = a
	}
}

// specialKeyNames are the names accepted for non-rune keys in keymap overrides
var specialKeyNames = map[string]tcell.Key{
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"enter":     tcell.KeyEnter,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
	"ctrl+c":    tcell.KeyCtrlC,
	"ctrl+q":    tcell.KeyCtrlQ,
	"ctrl+s":    tcell.KeyCtrlS,
}

// runeAliases name keys that are awkward as bare JSON keys
var runeAliases = map[string]rune{
	"space": ' ',
}

// LoadKeyConfig builds a sparse override table from key name → action name pairs
// Single characters bind runes, other names must be in specialKeyNames or runeAliases
func LoadKeyConfig(bindings map[string]string) (*KeyTable, error) {
	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]Action),
		Runes:       make(map[rune]Action),
	}

	for keyName, actionName := range bindings {
		action, ok := actionRegistry[strings.ToLower(actionName)]
		if !ok {
			return nil, fmt.Errorf("keymap %q: unknown action %q", keyName, actionName)
		}

		if utf8.RuneCountInString(keyName) == 1 {
			r, _ := utf8.DecodeRuneInString(keyName)
			kt.Runes[r] = action
			continue
		}

		lower := strings.ToLower(keyName)
		if r, ok := runeAliases[lower]; ok {
			kt.Runes[r] = action
			continue
		}
		if k, ok := specialKeyNames[lower]; ok {
			kt.SpecialKeys[k] = action
			continue
		}
		return nil, fmt.Errorf("keymap: unknown key name %q", keyName)
	}

	return kt, nil
}
