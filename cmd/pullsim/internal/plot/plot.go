// Package plot renders a scroll-offset trace as a PNG chart.
package plot

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/pulltoload/pkg/graphics"
)

// Point is one trace sample.
type Point struct {
	At     time.Duration
	Offset int
	// Busy marks samples taken while loading was in progress.
	Busy bool
}

// Options configures the chart.
type Options struct {
	Title  string
	Width  int
	Height int
	// Guides are offsets drawn as dashed horizontal lines, typically the
	// header and footer extents.
	Guides []int
}

const (
	defaultWidth  = 640
	defaultHeight = 320
	margin        = 40
)

var (
	background = graphics.RGB(0xfa, 0xfa, 0xfa)
	axisColor  = graphics.RGB(0x60, 0x60, 0x60)
	guideColor = graphics.RGB(0xb0, 0xb0, 0xb0)
	traceColor = graphics.RGB(0x1e, 0x88, 0xe5)
	busyColor  = graphics.RGB(0xe5, 0x39, 0x35)
	textColor  = graphics.RGB(0x21, 0x21, 0x21)
)

// ErrNoPoints is returned when there is nothing to draw.
var ErrNoPoints = errors.New("plot: no points")

// Render draws points as a step chart of offset over time and encodes it
// as PNG.
func Render(w io.Writer, points []Point, opts Options) error {
	if len(points) == 0 {
		return ErrNoPoints
	}
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = defaultHeight
	}
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: background}, image.Point{}, draw.Src)

	c := newCanvas(img, points, opts.Guides)
	for _, g := range opts.Guides {
		c.dashed(c.y(g), guideColor)
		c.label(margin-36, c.y(g)+4, fmt.Sprintf("%d", g))
	}
	c.hline(c.y(0), axisColor)
	c.vline(margin, axisColor)
	c.label(margin-36, c.y(0)+4, "0")

	for i := 1; i < len(points); i++ {
		prev, cur := points[i-1], points[i]
		col := traceColor
		if prev.Busy {
			col = busyColor
		}
		x0, x1 := c.x(prev.At), c.x(cur.At)
		c.segment(x0, c.y(prev.Offset), x1, c.y(prev.Offset), col)
		c.segment(x1, c.y(prev.Offset), x1, c.y(cur.Offset), col)
	}

	if opts.Title != "" {
		c.label(margin, margin/2, opts.Title)
	}
	c.label(opts.Width-margin-60, opts.Height-margin/3, c.maxT.String())
	return png.Encode(w, img)
}

type canvas struct {
	img          *image.RGBA
	maxT         time.Duration
	lo, hi       int
	plotW, plotH int
}

func newCanvas(img *image.RGBA, points []Point, guides []int) *canvas {
	c := &canvas{img: img}
	b := img.Bounds()
	c.plotW = b.Dx() - 2*margin
	c.plotH = b.Dy() - 2*margin
	for _, p := range points {
		c.maxT = max(c.maxT, p.At)
		c.lo = min(c.lo, p.Offset)
		c.hi = max(c.hi, p.Offset)
	}
	for _, g := range guides {
		c.lo = min(c.lo, g)
		c.hi = max(c.hi, g)
	}
	if c.maxT == 0 {
		c.maxT = time.Millisecond
	}
	if c.hi == c.lo {
		c.hi = c.lo + 1
	}
	return c
}

func (c *canvas) x(t time.Duration) int {
	return margin + int(float64(t)/float64(c.maxT)*float64(c.plotW))
}

// y maps an offset so that negative offsets, pulls from the top, sit
// above the zero line.
func (c *canvas) y(offset int) int {
	frac := float64(offset-c.lo) / float64(c.hi-c.lo)
	return margin + int(frac*float64(c.plotH))
}

func (c *canvas) hline(y int, col color.Color) {
	c.segment(margin, y, margin+c.plotW, y, col)
}

func (c *canvas) vline(x int, col color.Color) {
	c.segment(x, margin, x, margin+c.plotH, col)
}

func (c *canvas) dashed(y int, col color.Color) {
	for x := margin; x < margin+c.plotW; x += 8 {
		c.segment(x, y, min(x+4, margin+c.plotW), y, col)
	}
}

// segment draws a line with Bresenham's algorithm.
func (c *canvas) segment(x0, y0, x1, y1 int, col color.Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.img.Set(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func (c *canvas) label(x, y int, s string) {
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(textColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
