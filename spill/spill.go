package spill

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
)

// Common errors returned by spill buffers.
var (
	ErrClosed = errors.New("spill: buffer already closed")
	ErrNilKey = errors.New("spill: key function cannot be nil")
)

const seqSuffixSize = 8

// Codec serializes window elements for storage.
type Codec[E any] interface {
	Encode(v E) ([]byte, error)
	Decode(data []byte) (E, error)
}

type gobCodec[E any] struct{}

// GobCodec returns a Codec backed by encoding/gob. It handles any
// gob-encodable element type and is the default when no codec is supplied.
func GobCodec[E any]() Codec[E] {
	return gobCodec[E]{}
}

func (gobCodec[E]) Encode(v E) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, fmt.Errorf("spill: gob encode: %w", err)
	}
	return buf.Bytes(), nil
}

func (gobCodec[E]) Decode(data []byte) (E, error) {
	var v E
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&v); err != nil {
		return v, fmt.Errorf("spill: gob decode: %w", err)
	}
	return v, nil
}

// Options configures a disk-backed window buffer.
type Options struct {
	// Path is the directory holding the backing database.
	Path string

	// CacheSize is the pebble block cache size in bytes. Zero leaves
	// pebble's default in place.
	CacheSize int64

	// MaxOpenFiles bounds the file descriptors the database may hold
	// open. Zero leaves pebble's default in place.
	MaxOpenFiles int
}

// Buffer is a window buffer kept in a pebble database instead of memory,
// for window capacities too large to buffer in the heap. Elements are
// stored under a caller-supplied key encoding whose byte order must match
// the desired yield order: Pop returns the element with the largest stored
// key. Equal keys are disambiguated internally and popped in arrival order.
//
// Buffer satisfies the shape of windowsort.Buffer apart from returning
// errors, since storage operations can fail; use it with Sort in this
// package rather than with the in-memory adapter. Not safe for concurrent
// use.
type Buffer[E any] struct {
	db     *pebble.DB
	key    func(E) []byte
	codec  Codec[E]
	seq    uint64
	length int
	closed bool
}

// Open creates or reopens the database at opts.Path and returns an empty
// buffer over it. key encodes an element's ordering as bytes: whichever
// element encodes to the lexicographically largest key is popped first.
// Key encodings should be fixed length (or otherwise prefix-free), since a
// sequence suffix is appended internally and can perturb the order between
// keys of differing lengths. A nil codec selects GobCodec.
func Open[E any](opts Options, key func(E) []byte, codec Codec[E]) (*Buffer[E], error) {
	if key == nil {
		return nil, ErrNilKey
	}
	if codec == nil {
		codec = GobCodec[E]()
	}

	pebbleOpts := &pebble.Options{}
	if opts.CacheSize > 0 {
		pebbleOpts.Cache = pebble.NewCache(opts.CacheSize)
	}
	if opts.MaxOpenFiles > 0 {
		pebbleOpts.MaxOpenFiles = opts.MaxOpenFiles
	}

	db, err := pebble.Open(opts.Path, pebbleOpts)
	if err != nil {
		return nil, fmt.Errorf("spill: open database: %w", err)
	}

	return &Buffer[E]{
		db:    db,
		key:   key,
		codec: codec,
	}, nil
}

// Push inserts an element into the window.
func (b *Buffer[E]) Push(v E) error {
	if b.closed {
		return ErrClosed
	}

	value, err := b.codec.Encode(v)
	if err != nil {
		return err
	}

	b.seq++
	if err := b.db.Set(b.storedKey(v), value, pebble.NoSync); err != nil {
		return fmt.Errorf("spill: write element: %w", err)
	}
	b.length++
	return nil
}

// Pop removes and returns the element with the largest key, reporting
// false if the window is empty.
func (b *Buffer[E]) Pop() (E, bool, error) {
	var zero E
	if b.closed {
		return zero, false, ErrClosed
	}
	if b.length == 0 {
		return zero, false, nil
	}

	it, err := b.db.NewIter(nil)
	if err != nil {
		return zero, false, fmt.Errorf("spill: open iterator: %w", err)
	}
	defer it.Close()

	if !it.Last() {
		if err := it.Error(); err != nil {
			return zero, false, fmt.Errorf("spill: seek last: %w", err)
		}
		return zero, false, nil
	}

	v, err := b.codec.Decode(it.Value())
	if err != nil {
		return zero, false, err
	}

	key := append([]byte(nil), it.Key()...)
	if err := b.db.Delete(key, pebble.NoSync); err != nil {
		return zero, false, fmt.Errorf("spill: delete element: %w", err)
	}
	b.length--
	return v, true, nil
}

// Len returns the number of buffered elements.
func (b *Buffer[E]) Len() int {
	return b.length
}

// Close releases the backing database. The buffer is unusable afterwards;
// Close is idempotent.
func (b *Buffer[E]) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	return b.db.Close()
}

// storedKey appends the inverted insertion sequence to the element key so
// duplicate keys remain distinct, with earlier arrivals sorting higher and
// therefore popping first.
func (b *Buffer[E]) storedKey(v E) []byte {
	user := b.key(v)
	key := make([]byte, 0, len(user)+seqSuffixSize)
	key = append(key, user...)
	key = binary.BigEndian.AppendUint64(key, ^b.seq)
	return key
}
