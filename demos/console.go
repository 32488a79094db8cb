package demos

import (
	"math"

	"lumen/gfx"

	"tinygo.org/x/tinyterm"
)

// Console echoes typed text into a VT100 terminal panel composited over a
// slowly shifting background.
type Console struct {
	buf  *gfx.Buffer
	term *tinyterm.Terminal
	hue  float64
}

const consoleBanner = "\x1b[32mlumen console\x1b[0m\n" +
	"type to echo, enter for a new line\n\n> "

func NewConsole() *Console { return &Console{} }

func (*Console) Name() string { return "Console" }

// Reset drops the terminal so the next frame starts on a fresh screen.
func (c *Console) Reset() {
	c.buf.Destroy()
	c.buf, c.term = nil, nil
}

func (c *Console) open(w, h int) bool {
	b, err := gfx.NewBuffer(w, h)
	if err != nil {
		return false
	}
	b.Clear(0, 0, 0)
	c.buf = b
	c.term = tinyterm.NewTerminal(gfx.NewDisplayer(b))
	c.term.Configure(&tinyterm.Config{
		Font:              gfx.DefaultFont,
		FontHeight:        gfx.FontHeight,
		FontOffset:        8,
		UseSoftwareScroll: true,
	})
	c.term.Write([]byte(consoleBanner))
	return true
}

func (c *Console) Draw(cv *gfx.Canvas, f Frame) {
	const margin = 20
	pw, ph := f.W-2*margin, f.H-2*margin-30
	if pw <= 0 || ph <= 0 {
		return
	}
	if c.buf.Width() != pw || c.buf.Height() != ph {
		c.Reset()
		if !c.open(pw, ph) {
			return
		}
	}

	c.hue += 0.005
	if c.hue > 1 {
		c.hue--
	}
	val := 0.1 + 0.05*math.Sin(c.hue*2*math.Pi*2)
	cv.FillRect(0, 0, f.W, f.H, Enhanced(c.hue*2*math.Pi, val*4))

	for _, r := range f.Input {
		switch r {
		case '\r', '\n':
			c.term.Write([]byte("\n> "))
		default:
			c.term.Write([]byte(string(r)))
		}
	}
	cv.Blit(c.buf, margin, margin+30, 220)
}
