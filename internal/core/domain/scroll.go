package domain

// Surface holds the scroll metrics of one scrollable pane as reported by
// the host UI. All values are in the host's own units (pixels, rows); only
// ratios cross the component boundary.
type Surface struct {
	// ScrollTop is the current scroll offset from the top.
	ScrollTop float64

	// ScrollHeight is the total content height.
	ScrollHeight float64

	// ClientHeight is the visible viewport height.
	ClientHeight float64
}

// Range returns the scrollable range of the surface. A zero range means
// the content fits the viewport and the scroll ratio is undefined.
func (s Surface) Range() float64 {
	return s.ScrollHeight - s.ClientHeight
}

// Ratio returns the scroll position as a fraction of the scrollable range
// in [0, 1]. The boolean is false when the range is zero or negative, in
// which case the ratio is undefined and sync must be skipped.
func (s Surface) Ratio() (float64, bool) {
	r := s.Range()
	if r <= 0 {
		return 0, false
	}
	ratio := s.ScrollTop / r
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return ratio, true
}
