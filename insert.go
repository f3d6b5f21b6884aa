package rope

// Insert inserts s at character position pos, shifting everything at or
// after pos to the right. pos is clamped into [0, CharCount()]. Inserting
// the empty string is a no-op.
//
// s must be well-formed UTF-8; this is a hot-path method and does not
// re-validate its input the way NewFromString does — a malformed s leaves
// the rope in an unspecified state. Use NewFromString or validate with
// utf8.Valid beforehand if s's provenance is untrusted.
func (r *Rope) Insert(pos int, s string) {
	if r == nil {
		panicContract("rope: Insert on nil rope")
	}
	if len(s) == 0 {
		return
	}
	r.insertBytes(r.clampPos(pos), []byte(s))
}

// insertBytes is the shared engine behind Insert and the construction
// entry points. data must be well-formed UTF-8 and pos must already be
// clamped into [0, r.chars].
func (r *Rope) insertBytes(pos int, data []byte) {
	p := r.locate(pos)

	if p0 := p.pred0(); p0 != nil && len(data) <= p0.freeCapacity() {
		off := charOffsetToByteOffset(p0.buf, p.consumed[0])
		p0.insertBytesAt(off, data)
		delta := countChars(data)
		r.bumpSkips(p, delta)
		r.chars += delta
		r.bytes += len(data)
		return
	}

	// Slow path: provisionally detach whatever remains of pred[0] beyond
	// the insertion point, thread the new content in as one or more
	// nodes, then re-append the detached suffix as one final piece.
	var suffix []byte
	if p0 := p.pred0(); p0 != nil {
		off := charOffsetToByteOffset(p0.buf, p.consumed[0])
		if off < len(p0.buf) {
			suffix = p0.truncate(off)
			suffixChars := countChars(suffix)
			r.bumpSkips(p, -suffixChars)
			r.chars -= suffixChars
			r.bytes -= len(suffix)
		}
	}

	insertPos := pos
	for _, piece := range chunkPieces(data, r.nodeCapacity) {
		r.insertNewNodeAt(p, insertPos, piece)
		insertPos += countChars(piece)
	}
	if suffix != nil {
		r.insertNewNodeAt(p, insertPos, suffix)
	}
}

// chunkPieces splits data into pieces no larger than capacity bytes,
// never splitting a codepoint.
func chunkPieces(data []byte, capacity int) [][]byte {
	var pieces [][]byte
	for len(data) > 0 {
		end := capacity
		if end >= len(data) {
			pieces = append(pieces, data)
			break
		}
		for end > 0 && !isLeadByte(data[end]) {
			end--
		}
		if end == 0 {
			end = codepointSize(data[0])
			if end > len(data) {
				end = len(data)
			}
		}
		pieces = append(pieces, data[:end])
		data = data[end:]
	}
	return pieces
}

// insertNewNodeAt threads a freshly allocated node holding piece into the
// skip list at the position path p currently identifies, mutating p in
// place so a subsequent call (for the next chunk) threads in right after
// it. insertPos is piece's absolute character position in the rope as it
// stands at the start of this call.
func (r *Rope) insertNewNodeAt(p *path, insertPos int, piece []byte) {
	h := r.heightSource.Height(r.maxHeight)
	n := r.pool.get(h, r.nodeCapacity)
	n.appendBytes(piece)
	pieceChars := n.chars
	pieceBytes := len(piece)

	oldHeight := r.height
	minLevel := h
	if oldHeight < minLevel {
		minLevel = oldHeight
	}

	for l := 0; l < minLevel; l++ {
		predFw := r.forwardAt(p.pred[l], l)
		n.forward[l] = forward{next: predFw.next, skip: pieceChars + predFw.skip - p.consumed[l]}
		r.setForwardAt(p.pred[l], l, forward{next: n, skip: p.consumed[l]})
		p.pred[l] = n
		p.consumed[l] = pieceChars
	}

	switch {
	case h > oldHeight:
		before := insertPos
		after := pieceChars + (r.chars - before)
		r.growHead(h)
		p.pred = append(p.pred, make([]*node, h-oldHeight)...)
		p.consumed = append(p.consumed, make([]int, h-oldHeight)...)
		for l := oldHeight; l < h; l++ {
			r.head[l] = forward{next: n, skip: before}
			n.forward[l] = forward{next: nil, skip: after}
			p.pred[l] = n
			p.consumed[l] = pieceChars
		}
		r.height = h
	default:
		for l := h; l < oldHeight; l++ {
			fw := r.forwardAt(p.pred[l], l)
			fw.skip += pieceChars
			r.setForwardAt(p.pred[l], l, fw)
			p.consumed[l] += pieceChars
		}
	}

	r.chars += pieceChars
	r.bytes += pieceBytes
}
