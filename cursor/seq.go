package cursor

import "iter"

// Seq adapts the range [begin, end) to a sequence usable directly
// with the range syntax:
//
//	for item := range cursor.Seq[string](c.Begin(), c.End()) {
//		... do stuff with item, or break ...
//	}
//
// Breaking out of the loop stops the walk immediately. Unlike
// CoIterate there is no goroutine behind the sequence, so nothing
// needs stopping or draining.
func Seq[T any, C Cursor[C, T]](begin, end C) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := begin; it.NotEqual(end); it = it.Advance() {
			if !yield(it.Item()) {
				return
			}
		}
	}
}
