package cursor

// Pull adapts a cursor pair to the pull protocol, so any container
// exposing Begin and End accessors satisfies Iterator without extra
// code. See Iterator for the contract and usage.
type Pull[T any, C Cursor[C, T]] struct {
	next C
	end  C
	item T
}

// NewPull returns a Pull iterator over the range [begin, end).
func NewPull[T any, C Cursor[C, T]](begin, end C) *Pull[T, C] {
	return &Pull[T, C]{
		next: begin,
		end:  end,
	}
}

// Next advances the iterator and reports whether there is an element
// to be read with Item. Next must be called before Item.
func (p *Pull[T, C]) Next() bool {
	// next == end means the range is exhausted
	if !p.next.NotEqual(p.end) {
		return false
	}

	p.item = p.next.Item()
	p.next = p.next.Advance()
	return true
}

// Item returns the element produced by the last call to Next.
func (p *Pull[T, C]) Item() T {
	return p.item
}
