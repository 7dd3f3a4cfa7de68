package portfolio

import "github.com/tdial/ranged-for/cursor"

var _ cursor.Cursor[Iterator, string] = Iterator{}

// Iterator is a position cursor over a Portfolio. It holds a
// non-owning reference back to the Portfolio it came from plus the
// position it points at; the Portfolio must outlive every Iterator
// derived from it. Valid positions are [0, Len()], where Len() is
// the sentinel End position: good for comparison, not for Item.
//
// Iterators are plain values. Copying one, or calling Begin twice,
// yields cursors that advance independently with no shared state.
// The usual usage is:
//
//	for it := p.Begin(); it.NotEqual(p.End()); it = it.Advance() {
//		symbol := it.Item()
//		... do stuff with symbol, or break ...
//	}
//
// The zero Iterator points at nothing; obtain Iterators from Begin
// and End.
type Iterator struct {
	p   *Portfolio
	pos int
}

// Advance returns a copy of the iterator moved one position forward.
// The receiver is unchanged, so reassign as in the usage above.
// Advancing past End and dereferencing the result is a caller error;
// Item is where it blows up.
func (it Iterator) Advance() Iterator {
	it.pos++
	return it
}

// Equal reports whether two iterators sit at the same position.
// It is only meaningful for iterators obtained from the same
// Portfolio; comparing across containers tells you nothing.
func (it Iterator) Equal(other Iterator) bool {
	return it.pos == other.pos
}

// NotEqual reports whether two iterators sit at different positions.
// This is the comparison that terminates the canonical loop.
func (it Iterator) NotEqual(other Iterator) bool {
	return !it.Equal(other)
}

// Item returns the symbol at the iterator's position. The position
// must be strictly less than Len(): dereferencing End, or anything
// past it, panics with an out-of-range error.
func (it Iterator) Item() string {
	return it.p.constituents[it.pos]
}
