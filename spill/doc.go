// Package spill provides a disk-backed window buffer for window capacities
// too large to hold in memory, built on pebble.
//
// Elements are stored under a caller-supplied key encoding: key bytes must
// compare the way elements should be yielded, and the element with the
// lexicographically largest stored key leaves the window first. Values are
// serialized with an injectable Codec, encoding/gob by default.
//
// Basic usage:
//
//	buf, err := spill.Open(
//	    spill.Options{Path: filepath.Join(dir, "window")},
//	    func(v uint64) []byte { return binary.BigEndian.AppendUint64(nil, v) },
//	    nil, // gob
//	)
//	if err != nil {
//	    return err
//	}
//	defer buf.Close()
//
//	for v, err := range spill.Sort(events, 10_000_000, buf) {
//	    if err != nil {
//	        return err
//	    }
//	    handle(v)
//	}
//
// Unlike the in-memory adapter, every operation can fail, so the buffer
// methods return errors and Sort produces an error-paired sequence. For
// windows that fit in memory, prefer the windowsort package directly.
package spill
