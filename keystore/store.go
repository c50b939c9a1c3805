// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keystore

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/gf2ec"
	"github.com/btcsuite/gf2ec/keystore/engine"
	"github.com/btcsuite/gf2ec/keystore/engine/leveldb"
	"github.com/btcsuite/gf2ec/keystore/engine/pebbledb"
)

const (
	// DBTypeLevelDB selects the goleveldb backend.
	DBTypeLevelDB = "leveldb"

	// DBTypePebble selects the pebble backend.
	DBTypePebble = "pebble"

	// recordVersion is the first byte of every stored record.
	recordVersion = 1

	// checksumSize is the number of double SHA-256 bytes appended to every
	// record.
	checksumSize = 4

	// nameSep separates the curve name from the key name in database keys.
	nameSep = "/"
)

var (
	// ErrKeyNotFound is returned when no key is stored under a name.
	ErrKeyNotFound = errors.New("keystore: key not found")

	// ErrKeyExists is returned when storing a key under a name in use.
	ErrKeyExists = errors.New("keystore: key already exists")

	// ErrInvalidName is returned for empty names or names containing the
	// separator.
	ErrInvalidName = errors.New("keystore: invalid key name")

	// ErrCorruptRecord is returned when a stored record fails its
	// consistency checks.
	ErrCorruptRecord = errors.New("keystore: corrupt key record")

	// ErrUnknownDBType is returned by Open for unsupported backends.
	ErrUnknownDBType = errors.New("keystore: unknown database type")
)

// SupportedDBTypes returns the backends Open accepts.
func SupportedDBTypes() []string {
	return []string{DBTypeLevelDB, DBTypePebble}
}

// Entry describes one stored key pair.
type Entry struct {
	Curve  *gf2ec.CurveParams
	Name   string
	PubKey []byte
}

// Store persists named private keys of any curve in an engine.  A Store is
// safe for concurrent use.  Writers are serialized so the existence check of
// Put and Delete holds until their commit; the backends lock their directory,
// so a store cannot be shared between processes.
type Store struct {
	mtx sync.Mutex
	db  engine.Engine
}

// New returns a store backed by db.
func New(db engine.Engine) *Store {
	return &Store{db: db}
}

// Open opens or creates the store of the given backend type in the directory
// path.
func Open(dbType, path string) (*Store, error) {
	if err := os.MkdirAll(path, 0700); err != nil {
		return nil, err
	}

	var (
		db  engine.Engine
		err error
	)
	switch dbType {
	case DBTypeLevelDB:
		db, err = leveldb.NewDB(path, false)
	case DBTypePebble:
		db, err = pebbledb.NewDB(path, false, 0, 0)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDBType, dbType)
	}
	if err != nil {
		return nil, err
	}
	log.Debugf("Opened %s key store at %s", dbType, path)
	return New(db), nil
}

// Close closes the underlying engine.
func (s *Store) Close() error {
	return s.db.Close()
}

// dbKey returns the database key of the named key on params.
func dbKey(params *gf2ec.CurveParams, name string) ([]byte, error) {
	if name == "" || strings.Contains(name, nameSep) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return []byte(params.Name + nameSep + name), nil
}

// encodeRecord serializes a key pair as
//
//	version || private scalar || public key || checksum
func encodeRecord(key *gf2ec.PrivateKey) []byte {
	priv := key.Serialize()
	pub := key.PubKey().Serialize()

	rec := make([]byte, 0, 1+len(priv)+len(pub)+checksumSize)
	rec = append(rec, recordVersion)
	rec = append(rec, priv...)
	rec = append(rec, pub...)
	return append(rec, checksum(rec)...)
}

// checksum returns the first checksumSize bytes of the double SHA-256 of b.
func checksum(b []byte) []byte {
	return chainhash.DoubleHashB(b)[:checksumSize]
}

// decodeRecord splits a record into its private and public parts after
// checking its size, version and checksum.
func decodeRecord(params *gf2ec.CurveParams, rec []byte) ([]byte, []byte, error) {
	size := params.KeySize()
	want := 1 + size + params.PubKeySize() + checksumSize
	if len(rec) != want {
		return nil, nil, fmt.Errorf("%w: %d bytes, want %d",
			ErrCorruptRecord, len(rec), want)
	}
	if rec[0] != recordVersion {
		return nil, nil, fmt.Errorf("%w: unknown version %d",
			ErrCorruptRecord, rec[0])
	}
	body := rec[:len(rec)-checksumSize]
	if !bytes.Equal(checksum(body), rec[len(body):]) {
		return nil, nil, fmt.Errorf("%w: checksum mismatch",
			ErrCorruptRecord)
	}
	return body[1 : 1+size], body[1+size:], nil
}

// Put stores key under name.  It returns ErrKeyExists when the name is
// already used on the curve of the key.
func (s *Store) Put(name string, key *gf2ec.PrivateKey) error {
	params := key.Curve().Params()
	k, err := dbKey(params, name)
	if err != nil {
		return err
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	snapshot, err := s.db.Snapshot()
	if err != nil {
		return err
	}
	exists, err := snapshot.Has(k)
	snapshot.Release()
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrKeyExists, k)
	}

	tx, err := s.db.Transaction()
	if err != nil {
		return err
	}
	defer tx.Discard()
	if err := tx.Put(k, encodeRecord(key)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	log.Debugf("Stored key %s", k)
	return nil
}

// Get loads the key stored under name on the curve c.  The stored public
// key must match the one derived from the stored scalar.
func (s *Store) Get(c *gf2ec.Curve, name string) (*gf2ec.PrivateKey, error) {
	params := c.Params()
	k, err := dbKey(params, name)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.db.Snapshot()
	if err != nil {
		return nil, err
	}
	defer snapshot.Release()

	exists, err := snapshot.Has(k)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, k)
	}
	rec, err := snapshot.Get(k)
	if err != nil {
		return nil, err
	}

	priv, pub, err := decodeRecord(params, rec)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", k, err)
	}
	key, err := c.NewPrivateKey(priv)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptRecord, k, err)
	}
	if !bytes.Equal(key.PubKey().Serialize(), pub) {
		key.Zero()
		return nil, fmt.Errorf("%w: %s: public key mismatch",
			ErrCorruptRecord, k)
	}
	return key, nil
}

// Delete removes the key stored under name on params.  It returns
// ErrKeyNotFound when there is none.
func (s *Store) Delete(params *gf2ec.CurveParams, name string) error {
	k, err := dbKey(params, name)
	if err != nil {
		return err
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	snapshot, err := s.db.Snapshot()
	if err != nil {
		return err
	}
	exists, err := snapshot.Has(k)
	snapshot.Release()
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrKeyNotFound, k)
	}

	tx, err := s.db.Transaction()
	if err != nil {
		return err
	}
	defer tx.Discard()
	if err := tx.Delete(k); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	log.Debugf("Deleted key %s", k)
	return nil
}

// List returns the stored keys of params in name order, or of every curve
// when params is nil.  Records of unknown curves are skipped.
func (s *Store) List(params *gf2ec.CurveParams) ([]Entry, error) {
	r := &engine.Range{}
	if params != nil {
		r = engine.BytesPrefix([]byte(params.Name + nameSep))
	}

	snapshot, err := s.db.Snapshot()
	if err != nil {
		return nil, err
	}
	defer snapshot.Release()

	iter := snapshot.NewIterator(r)
	defer iter.Release()

	var entries []Entry
	for iter.Next() {
		k := string(iter.Key())
		curveName, name, ok := strings.Cut(k, nameSep)
		if !ok {
			log.Warnf("Skipping malformed key %q", k)
			continue
		}
		p, err := gf2ec.ByName(curveName)
		if err != nil {
			log.Warnf("Skipping key %q: %v", k, err)
			continue
		}
		_, pub, err := decodeRecord(p, iter.Value())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}
		entries = append(entries, Entry{
			Curve:  p,
			Name:   name,
			PubKey: append([]byte(nil), pub...),
		})
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}
	return entries, nil
}
