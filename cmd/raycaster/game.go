package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/raycaster/audio"
	"github.com/lixenwraith/raycaster/constants"
	"github.com/lixenwraith/raycaster/input"
	"github.com/lixenwraith/raycaster/player"
	"github.com/lixenwraith/raycaster/render"
)

// bumpFlashDuration keeps the HUD bump tag visible long enough to notice
const bumpFlashDuration = 200 * time.Millisecond

// game owns the pose; only the main loop touches it
type game struct {
	screen   tcell.Screen
	ctrl     *player.Controller
	tracker  *input.Tracker
	renderer *render.TerminalRenderer
	sound    *audio.SoundManager

	pose         player.Pose
	view         player.View
	blockedUntil time.Time
	lastFrame    time.Duration
}

func newGame(screen tcell.Screen, ctrl *player.Controller, pose player.Pose, keys *input.KeyTable, sound *audio.SoundManager) *game {
	return &game{
		screen:   screen,
		ctrl:     ctrl,
		tracker:  input.NewTracker(keys, constants.KeyHoldWindow),
		renderer: render.NewTerminalRenderer(screen),
		sound:    sound,
		pose:     pose,
	}
}

// handleEvent applies one terminal event, false means quit
func (g *game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch g.tracker.HandleKey(ev) {
		case input.ActionQuit:
			return false

		case input.ActionToggleMinimap:
			g.renderer.ShowMinimap = !g.renderer.ShowMinimap
			g.sound.PlayToggle()
			log.Printf("minimap %v", g.renderer.ShowMinimap)

		case input.ActionToggleMute:
			muted := g.sound.ToggleMute()
			if !muted {
				g.sound.PlayToggle()
			}
			log.Printf("muted %v", muted)
		}

	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

// step advances one frame: input snapshot, Advance, Project, draw
func (g *game) step(now time.Time) {
	start := time.Now()

	next, blocked := g.ctrl.Advance(g.pose, g.tracker.Input())
	g.pose = next
	if blocked {
		g.blockedUntil = now.Add(bumpFlashDuration)
		if g.sound.PlayBump() {
			log.Printf("bump at (%.2f, %.2f)", g.pose.X, g.pose.Y)
		}
	}

	g.ctrl.ProjectInto(g.pose, &g.view)

	g.renderer.RenderFrame(render.Frame{
		View:      &g.view,
		Pose:      g.pose,
		Map:       g.ctrl.Map(),
		FrameTime: g.lastFrame,
		Blocked:   now.Before(g.blockedUntil),
		Muted:     g.sound.Muted(),
	})

	g.lastFrame = time.Since(start)
}

// run drives frames on a ticker and applies events as they arrive, until quit or terminal closure
func (g *game) run(events <-chan tcell.Event) {
	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	g.step(time.Now())

	for {
		select {
		case ev, ok := <-events:
			if !ok || !g.handleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			g.step(now)
		}
	}
}
