// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package engine defines the ordered key/value storage interface the key
// store is built on.  Backends live in the leveldb and pebbledb
// subpackages.
package engine

import (
	"errors"
)

// ErrIterReleased is returned by Iterator.Error once the iterator has been
// released.
var ErrIterReleased = errors.New("iterator: iterator released")

// Engine is an ordered key/value store supporting atomic write batches and
// consistent read snapshots.
type Engine interface {
	// Transaction starts a write batch.  Writes become visible on Commit.
	Transaction() (Transaction, error)

	// Snapshot returns a consistent read-only view of the committed data.
	Snapshot() (Snapshot, error)

	// Close closes the engine.  Closing an engine twice is an error.
	Close() error
}

// Transaction is an atomic batch of writes.
type Transaction interface {
	Put(key, value []byte) error
	Delete(key []byte) error
	Commit() error

	// Discard abandons the batch.  It is safe to call more than once.
	Discard()
}

// Snapshot is a read-only view of the engine.
type Snapshot interface {
	// Get returns the value of key or an error when it does not exist.
	Get(key []byte) ([]byte, error)
	Has(key []byte) (bool, error)

	// NewIterator returns an iterator over the keys inside r positioned
	// before the first key.
	NewIterator(r *Range) Iterator
	Releaser
}

// Releaser is implemented by resources that must be released after use.
// Release is safe to call more than once.
type Releaser interface {
	Release()
}

// Iterator walks the key/value pairs of a snapshot in key order.
type Iterator interface {
	// First moves the iterator to the first key/value pair and reports
	// whether it exists.
	First() bool

	// Last moves the iterator to the last key/value pair and reports
	// whether it exists.
	Last() bool

	// Seek moves the iterator to the first key/value pair whose key is
	// greater than or equal to key.
	Seek(key []byte) bool

	// Next moves the iterator to the next key/value pair.  It returns
	// false once the iterator is exhausted.
	Next() bool

	// Prev moves the iterator to the previous key/value pair.
	Prev() bool

	// Valid reports whether the iterator is positioned on a pair.
	Valid() bool

	// Error returns any accumulated error.  Exhausting all the key/value
	// pairs is not considered to be an error.
	Error() error

	// Key returns the key of the current key/value pair, or nil if done.
	// The contents may change on the next call to any positioning method.
	Key() []byte

	// Value returns the value of the current key/value pair, or nil if
	// done.
	Value() []byte

	Releaser
}

// Range is a key range.
type Range struct {
	// Start of the key range, included in the range.
	Start []byte

	// Limit of the key range, not included in the range.
	Limit []byte
}

// BytesPrefix returns the key range that covers every key with the passed
// prefix under bytewise ordering.
func BytesPrefix(prefix []byte) *Range {
	var limit []byte
	for i := len(prefix) - 1; i >= 0; i-- {
		c := prefix[i]
		if c < 0xff {
			limit = make([]byte, i+1)
			copy(limit, prefix)
			limit[i] = c + 1
			break
		}
	}
	return &Range{prefix, limit}
}
