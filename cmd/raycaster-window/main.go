// Command raycaster-window renders the view into a 160x160 window, one vertical line per column
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lixenwraith/raycaster/audio"
	"github.com/lixenwraith/raycaster/config"
	"github.com/lixenwraith/raycaster/constants"
	"github.com/lixenwraith/raycaster/player"
	"github.com/lixenwraith/raycaster/render"
)

var (
	configFlag = flag.String("config", "", "Path to a JSON config file")
	muteFlag   = flag.Bool("mute", false, "Start with sound muted")
)

var (
	colorLit     = rgba(render.RgbWallLit)
	colorShadow  = rgba(render.RgbWallShadow)
	colorCeiling = rgba(render.RgbCeiling)
	colorFloor   = rgba(render.RgbFloor)
)

type window struct {
	ctrl  *player.Controller
	sound *audio.SoundManager
	pose  player.Pose
	view  player.View
}

func (w *window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		w.sound.ToggleMute()
	}

	next, blocked := w.ctrl.Advance(w.pose, heldInput())
	w.pose = next
	if blocked {
		w.sound.PlayBump()
	}

	w.ctrl.ProjectInto(w.pose, &w.view)
	return nil
}

func (w *window) Draw(screen *ebiten.Image) {
	size := float32(constants.ScreenHeight)
	vector.FillRect(screen, 0, 0, size, size/2, colorCeiling, false)
	vector.FillRect(screen, 0, size/2, size, size/2, colorFloor, false)

	for x, s := range w.view {
		top, bottom := render.ColumnSpan(s.Height, constants.ScreenHeight)
		if bottom <= top {
			continue
		}
		clr := colorLit
		if s.Shadow {
			clr = colorShadow
		}
		vector.FillRect(screen, float32(x), float32(top), 1, float32(bottom-top), clr, false)
	}
}

func (w *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return constants.ScreenColumns, constants.ScreenHeight
}

// heldInput samples movement keys; the windowing system reports releases so no hold window is needed
func heldInput() player.Input {
	return player.Input{
		Forward:   ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Backward:  ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		TurnLeft:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		TurnRight: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
	}
}

func rgba(c tcell.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}
}

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}
	m, pose, err := cfg.World()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Map error: %v\n", err)
		os.Exit(1)
	}

	sound := audio.NewSoundManager(audio.LoadAudioConfig())
	if err := sound.Initialize(); err != nil {
		log.Printf("Audio unavailable: %v (continuing without audio)", err)
	} else {
		defer sound.Cleanup()
	}
	sound.SetMuted(*muteFlag)

	w := &window{ctrl: cfg.Controller(m), sound: sound, pose: pose}

	ebiten.SetWindowSize(constants.ScreenColumns*constants.WindowScale, constants.ScreenHeight*constants.WindowScale)
	ebiten.SetWindowTitle("raycaster")
	ebiten.SetTPS(int(time.Second / constants.FrameUpdateInterval))

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
