package cursor

// Iterator is the pull protocol over some data structure.
// Next must always be called before Item, even for the first round
// of iteration. If Next returns false, Item must not be called, and
// every later call to Next must return false too.
// Item may be called any number of times after a Next that returned
// true. The iterator may be abandoned at any time and must not
// require closing, as CoIterate may leave it mid-iteration.
//
// The usual usage of an Iterator is:
//
//	it := cursor.NewPull[string](c.Begin(), c.End())
//	for it.Next() {
//		item := it.Item()
//		... do stuff with item, or break ...
//	}
type Iterator[T any] interface {
	Next() bool
	Item() T
}

// CoIterator is returned from CoIterate and abstracts communication
// with the pumping goroutine.
type CoIterator[T any] struct {
	items <-chan T
	stop  chan<- struct{}
}

// Items returns the channel on which the iterator's elements are
// delivered. It is closed once the iterator is exhausted or Stop is
// called.
func (c CoIterator[T]) Items() <-chan T {
	return c.items
}

// Stop abandons the iteration and releases the pumping goroutine.
// It must not be called more than once; guard it with a sync.Once if
// several goroutines may race to stop. Once Items is closed, calling
// Stop is unnecessary.
func (c CoIterator[T]) Stop() {
	close(c.stop)
}

// CoIterate starts coroutine-style iteration over it.
// The usage is as follows:
//
//	co := cursor.CoIterate[string](it)
//	for item := range co.Items() {
//		... do stuff with item ...
//		if item meets some stopping condition {
//			co.Stop()
//		}
//	}
//
// CoIterate starts one goroutine, which exits when the iterator is
// exhausted or Stop is called. Following the usage above, the
// goroutine never outlives the for-range loop. A nil iterator is
// treated as empty.
func CoIterate[T any](it Iterator[T]) CoIterator[T] {
	items := make(chan T)
	stop := make(chan struct{})
	co := CoIterator[T]{
		items: items,
		stop:  stop,
	}

	if it == nil {
		close(items)
		return co
	}

	go func() {
		defer close(items)
		for it.Next() {
			select {
			case items <- it.Item():
			case <-stop:
				return
			}
		}
	}()

	return co
}
