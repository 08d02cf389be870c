package physics

// Counter is a shared tally used for scores and for remaining blocks and
// balls. It is not safe for concurrent use.
type Counter struct {
	value int
}

// NewCounter returns a counter starting at initial.
func NewCounter(initial int) *Counter {
	return &Counter{value: initial}
}

func (c *Counter) Increase(n int) { c.value += n }
func (c *Counter) Decrease(n int) { c.value -= n }
func (c *Counter) Value() int     { return c.value }
