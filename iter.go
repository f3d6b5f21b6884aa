package rope

// Iterator walks a rope's content in level-0 order, one node's buffer at
// a time. It is a thin cursor over the underlying linked nodes, cheap to
// construct, and is invalidated by any mutation of the rope it was created
// from. Using an Iterator across an Insert or Delete call is a programming
// error and its results are undefined; Each, which takes a callback and
// never outlives a single call, is the safer default for callers who
// don't need to pause mid-walk.
type Iterator struct {
	next *node
}

// Iterate returns an Iterator positioned at the start of the rope.
func (r *Rope) Iterate() *Iterator {
	return &Iterator{next: r.firstNode()}
}

// Next returns the next chunk of the rope's content, and whether one was
// available. The returned slice aliases the rope's internal buffer and
// must not be mutated or retained past the next call to Next.
func (it *Iterator) Next() ([]byte, bool) {
	if it.next == nil {
		return nil, false
	}
	chunk := it.next.buf
	it.next = it.next.forward[0].next
	return chunk, true
}
