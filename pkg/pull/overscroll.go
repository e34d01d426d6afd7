package pull

// pullEdge forwards a drag on a rubber-banding edge to the edge effect as
// a fraction of the container extent.
func (e *Engine) pullEdge(drag int) {
	if e.cfg.EdgeEffect == nil || e.cfg.Viewport == nil {
		return
	}
	size := e.cfg.Viewport.Size()
	extent := e.orientation.Extent(size)
	if extent <= 0 {
		return
	}
	fraction := float64(drag) / extent
	lateral := 0.5
	if cross := e.orientation.CrossExtent(size); cross > 0 {
		lateral = e.orientation.Cross(e.session.Last) / cross
	}
	switch e.session.Active {
	case SideStart:
		e.cfg.EdgeEffect.OnPullStart(fraction, lateral)
	case SideEnd:
		e.cfg.EdgeEffect.OnPullEnd(fraction, lateral)
	}
}
