//go:build cgo

package hal

import (
	"errors"

	"lumen/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow opens a desktop window that displays the framebuffer and
// forwards keyboard and pointer input. It blocks until the window closes or
// the step function returns ErrQuit.
func RunWindow(cfg Config, newApp func(HAL) func() error) error {
	h := newHost(cfg)
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	g.title = h.disp.Title()
	ebiten.SetWindowTitle(windowTitle(g.title))
	ebiten.SetWindowSize(h.cfg.Width*h.cfg.Scale, h.cfg.Height*h.cfg.Scale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

func windowTitle(t string) string {
	return t + " (" + buildinfo.Short() + ")"
}

type hostGame struct {
	h     *hostHAL
	step  func() error
	title string

	rgba  []byte
	fbImg *ebiten.Image
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	x, y := ebiten.CursorPosition()
	fb := g.h.disp.fb
	g.h.ptr.set(x, y, x >= 0 && y >= 0 && x < fb.width && y < fb.height)

	if g.step != nil {
		if err := g.step(); err != nil {
			if errors.Is(err, ErrQuit) {
				return ebiten.Termination
			}
			return err
		}
	}
	if t := g.h.disp.Title(); t != g.title {
		g.title = t
		ebiten.SetWindowTitle(windowTitle(t))
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.disp.fb
	if g.fbImg == nil {
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
		g.rgba = make([]byte, fb.width*fb.height*4)
	}

	fb.snapshotRGBA(g.rgba)
	g.fbImg.WritePixels(g.rgba)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.cfg.Width, g.h.cfg.Height
}
