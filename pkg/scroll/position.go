// Package scroll provides a default viewport for hosts that do not keep
// their own scroll position.
package scroll

import "github.com/go-drift/pulltoload/pkg/graphics"

// Position stores the container's physical scroll offset and size and
// notifies listeners whenever the offset changes.
//
// Position satisfies pull.Viewport:
//
//	pos := &scroll.Position{}
//	pos.SetSize(graphics.Size{Width: 400, Height: 800})
//	engine, err := pull.New(pull.Config{Content: content, Viewport: pos})
type Position struct {
	x, y           int
	size           graphics.Size
	listeners      map[int]func()
	nextListenerID int
}

// ScrollTo moves the container to the given offset.
func (p *Position) ScrollTo(x, y int) {
	if p.x == x && p.y == y {
		return
	}
	p.x, p.y = x, y
	p.notifyListeners()
}

// Offset returns the current offset.
func (p *Position) Offset() (x, y int) {
	return p.x, p.y
}

// Size returns the container size.
func (p *Position) Size() graphics.Size {
	return p.size
}

// SetSize updates the container size.
func (p *Position) SetSize(size graphics.Size) {
	p.size = size
}

// AddListener registers a callback for offset changes and returns a
// function that removes it.
func (p *Position) AddListener(listener func()) func() {
	if listener == nil {
		return func() {}
	}
	if p.listeners == nil {
		p.listeners = make(map[int]func())
	}
	id := p.nextListenerID
	p.nextListenerID++
	p.listeners[id] = listener
	return func() {
		delete(p.listeners, id)
	}
}

func (p *Position) notifyListeners() {
	for _, listener := range p.listeners {
		listener()
	}
}
