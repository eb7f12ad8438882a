package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/raycaster/player"
)

// Tracker turns key presses into held movement state
// Terminals deliver presses and auto-repeats but never releases, so a movement key counts
// as held until window elapses without another press
type Tracker struct {
	table  *KeyTable
	window time.Duration
	last   [actionCount]time.Time

	// now is replaceable for tests
	now func() time.Time
}

// NewTracker creates a tracker over table, nil selects DefaultKeyTable
func NewTracker(table *KeyTable, window time.Duration) *Tracker {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Tracker{
		table:  table,
		window: window,
		now:    time.Now,
	}
}

// HandleKey resolves ev and latches movement actions
// The action is returned so the host can act on one-shots
func (t *Tracker) HandleKey(ev *tcell.EventKey) Action {
	action := t.table.Lookup(ev)
	if action.IsMovement() {
		t.Press(action)
	}
	return action
}

// Press marks a movement action held from now
// The opposite direction is released, a terminal only repeats the most recent key
func (t *Tracker) Press(a Action) {
	if !a.IsMovement() {
		return
	}
	t.last[a] = t.now()
	t.last[a.opposite()] = time.Time{}
}

// Input snapshots the actions still inside the hold window
func (t *Tracker) Input() player.Input {
	now := t.now()
	return player.Input{
		Forward:   t.held(ActionForward, now),
		Backward:  t.held(ActionBackward, now),
		TurnLeft:  t.held(ActionTurnLeft, now),
		TurnRight: t.held(ActionTurnRight, now),
	}
}

// Reset releases everything
func (t *Tracker) Reset() {
	t.last = [actionCount]time.Time{}
}

func (t *Tracker) held(a Action, now time.Time) bool {
	last := t.last[a]
	return !last.IsZero() && now.Sub(last) < t.window
}
