// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestSuiteEngine runs the behavior every backend must share against engines
// returned by new.  Each call to new must return a fresh, empty engine.
func TestSuiteEngine(t *testing.T, new func() Engine) {
	t.Run("TransactionSnapshot", func(t *testing.T) {
		engine := new()
		defer engine.Close()

		tx, err := engine.Transaction()
		require.NoErrorf(t, err, "failed to create transaction")

		key := []byte("K-163/alice")
		value := []byte("record")
		err = tx.Put(key, value)
		require.NoErrorf(t, err, "failed to put data into transaction")

		// Uncommitted writes are invisible.
		snapshot, err := engine.Snapshot()
		require.NoErrorf(t, err, "failed to create snapshot")

		has, err := snapshot.Has(key)
		require.NoErrorf(t, err, "failed to check if key exists in snapshot")
		require.Falsef(t, has, "expected key to not exist in snapshot")

		gotValue, err := snapshot.Get(key)
		require.Errorf(t, err, "expected to get error when getting value from snapshot")
		require.Nil(t, gotValue, "expected to get nil value from snapshot")
		snapshot.Release()

		err = tx.Commit()
		require.NoErrorf(t, err, "failed to commit transaction")

		snapshot, err = engine.Snapshot()
		require.NoErrorf(t, err, "failed to create snapshot")

		gotValue, err = snapshot.Get(key)
		require.NoErrorf(t, err, "failed to get value from snapshot")
		require.Equalf(t, value, gotValue, "snapshot value mismatch")

		// A snapshot does not observe later commits.
		tx, err = engine.Transaction()
		require.NoError(t, err)
		require.NoError(t, tx.Delete(key))
		require.NoError(t, tx.Commit())

		has, err = snapshot.Has(key)
		require.NoError(t, err)
		require.True(t, has, "snapshot lost a deleted key")
		snapshot.Release()

		snapshot, err = engine.Snapshot()
		require.NoError(t, err)
		has, err = snapshot.Has(key)
		require.NoError(t, err)
		require.False(t, has, "deleted key still present")
		snapshot.Release()
	})

	t.Run("TransactionIterator", func(t *testing.T) {
		keys := map[string]string{
			"B-163/bob":   "2",
			"K-163/alice": "1",
			"K-163/carol": "3",
			"K-1630/odd":  "4",
			"K-233/dave":  "5",
		}
		for _, test := range []struct {
			name      string
			kvs       map[string]string
			ranges    *Range
			expectkvs [][2]string
		}{{
			name:      "empty range",
			kvs:       keys,
			ranges:    &Range{Start: []byte("A"), Limit: []byte("B")},
			expectkvs: nil,
		}, {
			name:   "curve prefix",
			kvs:    keys,
			ranges: BytesPrefix([]byte("K-163/")),
			expectkvs: [][2]string{
				{"K-163/alice", "1"},
				{"K-163/carol", "3"},
			},
		}, {
			name:   "explicit bounds",
			kvs:    keys,
			ranges: &Range{Start: []byte("B-163/bob"), Limit: []byte("K-163/b")},
			expectkvs: [][2]string{
				{"B-163/bob", "2"},
				{"K-163/alice", "1"},
			},
		}, {
			name:      "start equals limit",
			kvs:       keys,
			ranges:    &Range{Start: []byte("K-233/dave"), Limit: []byte("K-233/dave")},
			expectkvs: nil,
		}, {
			name:   "prefix ending in 0xff",
			kvs:    map[string]string{"a\xff1": "x", "a\xff\xff": "y", "b": "z"},
			ranges: BytesPrefix([]byte("a\xff")),
			expectkvs: [][2]string{
				{"a\xff1", "x"},
				{"a\xff\xff", "y"},
			},
		}} {
			t.Run(test.name, func(t *testing.T) {
				engine := new()
				defer engine.Close()

				tx, err := engine.Transaction()
				require.NoErrorf(t, err, "failed to create transaction")

				for k, v := range test.kvs {
					err = tx.Put([]byte(k), []byte(v))
					require.NoErrorf(t, err, "failed to put data into transaction")
				}
				err = tx.Commit()
				require.NoErrorf(t, err, "failed to commit transaction")

				snapshot, err := engine.Snapshot()
				require.NoErrorf(t, err, "failed to create snapshot")

				iter := snapshot.NewIterator(test.ranges)
				var idx int
				for iter.Next() {
					if idx >= len(test.expectkvs) {
						require.FailNowf(t, "unexpected key-value pair",
							"key: %s, value: %s", iter.Key(), iter.Value())
					}

					require.Equalf(t, []byte(test.expectkvs[idx][0]), iter.Key(), "key mismatch")
					require.Equalf(t, []byte(test.expectkvs[idx][1]), iter.Value(), "value mismatch")
					idx++
				}
				require.Equalf(t, len(test.expectkvs), idx, "key-value pair count mismatch")
				require.NoError(t, iter.Error())

				iter.Release()
				snapshot.Release()
			})
		}
	})

	t.Run("DbClose", func(t *testing.T) {
		engine := new()

		transaction, err := engine.Transaction()
		require.NoErrorf(t, err, "failed to create transaction")

		transaction.Discard()
		transaction.Discard()
		err = transaction.Commit()
		require.Errorf(t, err, "expected to get error when committing discarded transaction")

		snapshot, err := engine.Snapshot()
		require.NoErrorf(t, err, "failed to create snapshot")

		iterator := snapshot.NewIterator(&Range{})
		require.NoErrorf(t, iterator.Error(), "failed to create iterator")
		iterator.Release()
		iterator.Release()

		snapshot.Release()
		snapshot.Release()
		_, err = snapshot.Get([]byte("K-163/alice"))
		require.Errorf(t, err, "expected to get error when getting value from released snapshot")

		err = engine.Close()
		require.NoErrorf(t, err, "failed to close engine")

		err = engine.Close()
		require.Errorf(t, err, "expected to get error when closing closed engine")

		_, err = engine.Transaction()
		require.Errorf(t, err, "expected to get error when creating transaction from closed engine")

		_, err = engine.Snapshot()
		require.Errorf(t, err, "expected to get error when creating snapshot from closed engine")
	})
}
