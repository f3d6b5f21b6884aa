// Package rope provides a mutable, character-indexed rope for UTF-8 text.
//
// A rope here is a singly-linked skip list whose elements ("nodes") are
// small fixed-capacity UTF-8 byte buffers. What distinguishes it from an
// ordinary ordered-set skip list is that every forward pointer, at every
// level, carries the number of characters it skips over — turning the
// structure into a positional (rank) index addressable by codepoint offset
// instead of by key comparison. This lets Insert and Delete at an arbitrary
// character index run in O(log C) expected time without ever materializing
// the full text.
//
// # Basic usage
//
//	r, err := rope.NewFromString("hello world")
//	if err != nil {
//		// s was not valid UTF-8
//	}
//
//	r.Insert(5, ",")       // "hello, world"
//	r.Delete(0, 7)         // "world"
//	text := r.ToUTF8()     // []byte("world")
//
// # Mutability
//
// Unlike a persistent/immutable rope, every operation here mutates the
// receiver in place. The structure is not thread-safe (see Non-goals
// below); external synchronization is the caller's responsibility.
//
// # Character vs. byte addressing
//
// Every offset accepted or returned by Insert, Delete, Slice, RuneAt and
// friends is a character index — a count of Unicode codepoints, delimited
// by UTF-8 lead-byte classification, not a byte offset and not a
// grapheme-cluster or word boundary. ByteCount and WriteTo operate in bytes
// because they describe the underlying UTF-8 encoding, not rope positions.
//
// # Determinism
//
// Node height is drawn from a pluggable HeightSource. Two ropes built from
// the same edit sequence against the same (deterministic) HeightSource
// produce byte-identical internal structure and therefore byte-identical
// traversals; the height source is the only source of nondeterminism in the
// package.
//
// # Non-goals
//
// This package is not thread-safe, provides no snapshotting, transaction
// log, or observer hooks, and has no grapheme-cluster or word-boundary
// semantics. Persistence, undo, concurrent access, and text search are out
// of scope; callers needing those should build them on top of Insert/Delete
// the way an editor buffer builds undo on top of a flat text API.
package rope
