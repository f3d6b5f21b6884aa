package rope

// Delete removes the n characters starting at character position pos.
// Both pos and pos+n are clamped into [0, CharCount()]; deleting zero
// characters is a no-op.
func (r *Rope) Delete(pos, n int) {
	if r == nil {
		panicContract("rope: Delete on nil rope")
	}
	if n <= 0 {
		return
	}
	pos = r.clampPos(pos)
	if pos >= r.chars {
		return
	}
	if pos+n > r.chars {
		n = r.chars - pos
	}
	r.deleteChars(pos, n)
}

// deleteChars locates pos once, then repeatedly trims or splices nodes
// until n characters have been removed.
func (r *Rope) deleteChars(pos, n int) {
	p := r.locate(pos)

	for n > 0 {
		nd, consumed := p.pred[0], p.consumed[0]
		if nd == nil || consumed == nd.chars {
			nd, consumed = r.forwardAt(p.pred[0], 0).next, 0
		}
		if nd == nil {
			break
		}
		available := nd.chars - consumed

		if n < available {
			off := charOffsetToByteOffset(nd.buf, consumed)
			end := charOffsetToByteOffset(nd.buf, consumed+n)
			byteLen := end - off
			nd.deleteRange(off, byteLen)
			for l := 0; consumed == 0 && l < nd.height; l++ {
				p.pred[l] = nd
			}
			r.bumpSkips(p, -n)
			r.chars -= n
			r.bytes -= byteLen
			n = 0
			break
		}

		if consumed > 0 {
			off := charOffsetToByteOffset(nd.buf, consumed)
			removed := nd.truncate(off)
			removedChars := countChars(removed)
			r.bumpSkips(p, -removedChars)
			r.chars -= removedChars
			r.bytes -= len(removed)
			n -= removedChars
			continue
		}

		n -= r.spliceNode(p, nd)
	}
}

// spliceNode removes nd from the skip list entirely, rewriting every
// level it participated in to point past it and shrinking the spanning
// forward entry at every level above it. It returns nd's character
// count and returns the node to the pool.
func (r *Rope) spliceNode(p *path, nd *node) int {
	removedChars := nd.chars
	removedBytes := len(nd.buf)

	for l := 0; l < nd.height; l++ {
		ndFw := nd.forward[l]
		r.setForwardAt(p.pred[l], l, forward{next: ndFw.next, skip: p.consumed[l] + ndFw.skip - removedChars})
	}
	for l := nd.height; l < r.height; l++ {
		fw := r.forwardAt(p.pred[l], l)
		fw.skip -= removedChars
		r.setForwardAt(p.pred[l], l, fw)
	}

	r.chars -= removedChars
	r.bytes -= removedBytes
	r.pool.put(nd)

	for r.height > 0 && r.head[r.height-1].next == nil {
		r.height--
	}

	return removedChars
}
