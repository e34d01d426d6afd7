package pull

import (
	"fmt"
	"strings"

	"github.com/go-drift/pulltoload/pkg/graphics"
)

// Orientation is the physical axis the container scrolls along.
type Orientation int

const (
	// Vertical scrolls along the y axis; start is the top.
	Vertical Orientation = iota
	// Horizontal scrolls along the x axis; start is the left edge.
	Horizontal
)

func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// ParseOrientation resolves "vertical" or "horizontal".
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "vertical":
		return Vertical, nil
	case "horizontal":
		return Horizontal, nil
	default:
		return Vertical, fmt.Errorf("unknown orientation %q", s)
	}
}

// Along returns the component of p on the scroll axis.
func (o Orientation) Along(p graphics.Offset) float64 {
	if o == Horizontal {
		return p.X
	}
	return p.Y
}

// Cross returns the component of p on the cross axis.
func (o Orientation) Cross(p graphics.Offset) float64 {
	if o == Horizontal {
		return p.Y
	}
	return p.X
}

// Split decomposes a physical delta into along-axis and cross-axis parts.
func (o Orientation) Split(dx, dy int) (along, cross int) {
	if o == Horizontal {
		return dx, dy
	}
	return dy, dx
}

// Physical maps an along-axis offset back to an (x, y) pair.
func (o Orientation) Physical(v int) (x, y int) {
	if o == Horizontal {
		return v, 0
	}
	return 0, v
}

// Extent returns the size of s along the scroll axis.
func (o Orientation) Extent(s graphics.Size) float64 {
	if o == Horizontal {
		return s.Width
	}
	return s.Height
}

// CrossExtent returns the size of s along the cross axis.
func (o Orientation) CrossExtent(s graphics.Size) float64 {
	if o == Horizontal {
		return s.Height
	}
	return s.Width
}

// Direction names one end of the scroll axis.
type Direction int

const (
	// Start is the top (vertical) or left (horizontal) end.
	Start Direction = iota
	// End is the bottom (vertical) or right (horizontal) end.
	End
)

func (d Direction) String() string {
	switch d {
	case Start:
		return "start"
	case End:
		return "end"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Side is the edge a gesture session is pulling from.
type Side int

const (
	// SideNone means no pull is armed.
	SideNone Side = iota
	// SideStart means the session pulls the header in.
	SideStart
	// SideEnd means the session pulls the footer in.
	SideEnd
)

func (s Side) String() string {
	switch s {
	case SideNone:
		return "none"
	case SideStart:
		return "start"
	case SideEnd:
		return "end"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Direction returns the edge direction of s. ok is false for SideNone.
func (s Side) Direction() (d Direction, ok bool) {
	switch s {
	case SideStart:
		return Start, true
	case SideEnd:
		return End, true
	default:
		return Start, false
	}
}
