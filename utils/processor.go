package utils

// Processor accumulates items in memory and reports how many it has seen.
// There is no removal or reset operation; the sequence only grows. It is not
// safe for concurrent use.
type Processor[T any] struct {
	items []T
}

// NewProcessor creates an empty processor.
func NewProcessor[T any]() *Processor[T] {
	return &Processor[T]{}
}

// Add appends item to the accumulated sequence. It always succeeds.
func (p *Processor[T]) Add(item T) {
	p.items = append(p.items, item)
}

// Count returns the number of items added so far.
func (p *Processor[T]) Count() int {
	return len(p.items)
}

// Items returns a copy of the accumulated items in insertion order.
func (p *Processor[T]) Items() []T {
	out := make([]T, len(p.items))
	copy(out, p.items)
	return out
}
