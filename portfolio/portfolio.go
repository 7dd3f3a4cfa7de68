// Package portfolio provides a fixed, read-only container of stock
// symbols together with the position iterator that walks it. It is
// the worked example for the protocols in package cursor: one
// container, walkable with an explicit cursor pair, a callback, a
// pull iterator, a channel, or a plain range loop.
package portfolio

import (
	"iter"
	"strings"

	"github.com/tdial/ranged-for/cursor"
)

// Portfolio is an ordered collection of stock symbols, fixed at
// construction. Iteration order is insertion order: the order the
// symbols were passed to New is the order every iteration mode
// yields them in.
//
// Nothing can mutate a Portfolio once New returns, so it is safe for
// concurrent reads, and any number of iterators may walk it at the
// same time.
type Portfolio struct {
	constituents []string
}

// New returns a Portfolio holding the given symbols, in the given
// order. The symbols are copied: the Portfolio owns its storage
// exclusively and later changes to the caller's slice are not seen.
func New(symbols ...string) *Portfolio {
	return &Portfolio{
		constituents: append([]string(nil), symbols...),
	}
}

// Classic returns a Portfolio hardcoded with some great holdings.
func Classic() *Portfolio {
	return New("FDS", "GOOG", "AAPL", "NFLX")
}

// Len returns the number of holdings.
func (p *Portfolio) Len() int {
	return len(p.constituents)
}

// At returns the symbol at position i.
// It panics unless i is in [0, Len()).
func (p *Portfolio) At(i int) string {
	return p.constituents[i]
}

// Begin returns an Iterator at the first holding. Every call
// produces an independent iterator value; advancing one never moves
// another.
func (p *Portfolio) Begin() Iterator {
	return Iterator{p: p}
}

// End returns the one-past-last sentinel Iterator. It bounds the
// iterable range for comparison and must never be dereferenced.
func (p *Portfolio) End() Iterator {
	return Iterator{p: p, pos: len(p.constituents)}
}

// ForEach applies f to each symbol in order. If f returns false at
// any point, the iteration is stopped early.
func (p *Portfolio) ForEach(f func(symbol string) bool) {
	for _, s := range p.constituents {
		if !f(s) {
			return
		}
	}
}

// All returns the holdings as a sequence, so a Portfolio can back a
// plain range loop:
//
//	for symbol := range p.All() {
//		... do stuff with symbol, or break ...
//	}
func (p *Portfolio) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, s := range p.constituents {
			if !yield(s) {
				return
			}
		}
	}
}

// Symbols returns a fresh slice of all holdings in order.
func (p *Portfolio) Symbols() []string {
	out := make([]string, 0, len(p.constituents))

	for it := p.Begin(); it.NotEqual(p.End()); it = it.Advance() {
		out = append(out, it.Item())
	}

	return out
}

// Coroutine starts coroutine-style iteration over the holdings.
// See cursor.CoIterate for the usage and the pumping goroutine's
// lifetime.
func (p *Portfolio) Coroutine() cursor.CoIterator[string] {
	return cursor.CoIterate[string](cursor.NewPull[string](p.Begin(), p.End()))
}

// String returns the holdings joined by spaces.
func (p *Portfolio) String() string {
	return strings.Join(p.constituents, " ")
}
