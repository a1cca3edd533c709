package dashboard

// Carousel tracks the single visible card of a scrollable collection view.
// The index is clamped to [0, n-1] after every move and whenever the item
// count changes; with no items there is no valid position and the index
// rests at 0.
type Carousel struct {
	Index int
}

func (c *Carousel) Next(n int) { c.Index = clampIndex(c.Index+1, n) }
func (c *Carousel) Prev(n int) { c.Index = clampIndex(c.Index-1, n) }

// Clamp re-derives a valid index after the underlying collection changed,
// so a stale index past the new end never shows a blank frame.
func (c *Carousel) Clamp(n int) { c.Index = clampIndex(c.Index, n) }

func clampIndex(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}
