package game

import (
	"fmt"
	"image"
	"log"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/image-particles/internal/audio"
	"github.com/iburimskiy/image-particles/internal/config"
	"github.com/iburimskiy/image-particles/internal/imagesrc"
	"github.com/iburimskiy/image-particles/internal/input"
	"github.com/iburimskiy/image-particles/internal/particle"
	"github.com/iburimskiy/image-particles/internal/scene"
)

// Game is the windowed effect. It implements ebiten.Game.
type Game struct {
	cfg     config.Config
	scene   *scene.Scene
	tracker input.Tracker
	player  *audio.Player
	buttons []*button

	// layout size waiting to be sampled
	pendingW, pendingH int
	resizePending      bool

	touchIDs []ebiten.TouchID

	paused  bool
	halted  atomic.Bool
	lastErr error
}

// New builds the game around img. img may be nil; the surface then stays
// blank until an image is opened.
func New(cfg config.Config, img image.Image, player *audio.Player) (*Game, error) {
	sc, err := scene.New(cfg)
	if err != nil {
		return nil, err
	}
	// Sampled on the first Layout.
	_ = sc.SetImage(img)
	g := &Game{
		cfg:    cfg,
		scene:  sc,
		player: player,
	}
	g.buttons = []*button{
		newButton("Open Image", config.ButtonX, config.ButtonY, g.openImage),
		newButton("Reload", config.ButtonX+config.ButtonWidth+config.ButtonGap, config.ButtonY, g.reload),
	}
	return g, nil
}

// Halt makes the next Update end the game loop.
func (g *Game) Halt() {
	g.halted.Store(true)
}

func (g *Game) Update() error {
	if g.halted.Load() {
		return ebiten.Termination
	}

	// Resamples only happen here, between two frames.
	if g.resizePending {
		g.resizePending = false
		g.setErr(g.scene.Rebuild(g.pendingW, g.pendingH))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reload()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.openImage()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	sample := g.poll()
	ptr := g.tracker.Update(sample)
	pressed := g.tracker.TakePress()

	overButton := false
	for _, b := range g.buttons {
		if b.update(sample.CursorX, sample.CursorY) {
			overButton = true
		}
	}
	if overButton {
		ptr = particle.Absent()
	} else if pressed {
		g.player.Play()
	}

	if g.paused {
		g.scene.Sim().SetPointer(ptr)
		return nil
	}
	g.scene.Step(ptr)
	return nil
}

// poll reads mouse and touch state in layout coordinates.
func (g *Game) poll() input.Sample {
	mx, my := ebiten.CursorPosition()
	s := input.Sample{
		CursorX:   mx,
		CursorY:   my,
		MouseDown: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
	s.Width, s.Height = g.scene.Size()
	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		s.Touches = append(s.Touches, input.Touch{X: tx, Y: ty})
	}
	return s
}

func (g *Game) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	frame := g.scene.Frame()
	frame.Resize(b.Dx(), b.Dy())
	if g.resizePending {
		// The set belongs to the old size until Update resamples.
		frame.Clear()
	} else {
		g.scene.Draw()
	}
	screen.WritePixels(frame.Pix())

	for _, btn := range g.buttons {
		btn.draw(screen)
	}

	sm := g.scene.Sim()
	status := fmt.Sprintf("%d particles, %d displaced", sm.Len(), sm.Displaced())
	if g.scene.Image() == nil {
		status = "No image - click Open Image"
	}
	if g.paused {
		status += " | Paused - Space to resume"
	} else {
		status += " | Space pause, R reload, O open, Esc quit"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.cfg.BufferSize(outsideWidth, outsideHeight)
	w, h = max(w, 1), max(h, 1)
	if sw, sh := g.scene.Size(); w != sw || h != sh {
		g.pendingW, g.pendingH = w, h
		g.resizePending = true
	}
	return w, h
}

func (g *Game) reload() {
	g.setErr(g.scene.Rebuild(g.scene.Size()))
}

func (g *Game) openImage() {
	path, err := imagesrc.Pick()
	if err != nil {
		g.setErr(err)
		return
	}
	if path == "" {
		return
	}
	img, err := imagesrc.Load(path)
	if err != nil {
		// Leave the surface blank until another image loads.
		g.setErr(err)
		_ = g.scene.SetImage(nil)
		return
	}
	log.Printf("loaded %s", path)
	g.lastErr = nil
	g.setErr(g.scene.SetImage(img))
}

func (g *Game) setErr(err error) {
	if err == nil {
		return
	}
	log.Printf("error: %v", err)
	g.lastErr = err
}
