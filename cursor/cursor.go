// Package cursor defines the iteration protocols shared by the
// containers in this module, together with generic drivers that
// consume them.
//
// Two protocols are provided. Cursor is the position-cursor
// capability set (advance, compare, dereference) whose values are
// produced in pairs by a container's Begin and End accessors.
// Iterator is the conventional pull protocol (Next, then Item).
// NewPull bridges the former to the latter, CoIterate bridges the
// latter to a channel, and Seq bridges a cursor pair to the range
// syntax directly.
package cursor

// Cursor is the capability set a position cursor must provide.
// C is the concrete cursor type itself and T is the element type.
// Two cursors bound the half-open range [begin, end); end is a
// sentinel, compared against but never dereferenced.
// The usual usage of a Cursor pair is:
//
//	for it := c.Begin(); it.NotEqual(c.End()); it = it.Advance() {
//		item := it.Item()
//		... do stuff with item, or break ...
//	}
//
// The cursors may be abandoned at any time. Calling Item at the end
// position, or Advance beyond it, is a caller error: containers are
// free to panic rather than report it.
type Cursor[C, T any] interface {
	// Advance returns a copy of the cursor moved one position
	// forward. The receiver itself is unchanged.
	Advance() C
	// NotEqual reports whether the other cursor sits at a
	// different position. It is only meaningful between cursors
	// obtained from the same container.
	NotEqual(C) bool
	// Item returns the element at the current position.
	Item() T
}

// Each applies f to every element of [begin, end) in order.
// If f returns false at any point, the walk is stopped early.
func Each[T any, C Cursor[C, T]](begin, end C, f func(T) bool) {
	for it := begin; it.NotEqual(end); it = it.Advance() {
		if !f(it.Item()) {
			return
		}
	}
}

// Collect gathers every element of [begin, end) into a slice.
// An empty range yields a nil slice.
func Collect[T any, C Cursor[C, T]](begin, end C) []T {
	var out []T

	Each(begin, end, func(item T) bool {
		out = append(out, item)
		return true
	})

	return out
}

// Count returns the number of positions in [begin, end) by walking
// the whole range.
func Count[T any, C Cursor[C, T]](begin, end C) int {
	n := 0

	for it := begin; it.NotEqual(end); it = it.Advance() {
		n++
	}

	return n
}
