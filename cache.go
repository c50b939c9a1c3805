// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gf2ec

import (
	"github.com/decred/dcrd/lru"
)

const (
	// defaultPubKeyCacheSize is the default number of validated peer keys
	// remembered by a PubKeyCache.
	defaultPubKeyCacheSize = 256
)

// PubKeyCache remembers serialized peer public keys that already passed the
// on-curve check so that repeated key agreements with the same peer skip it.
// The cache is safe for concurrent use.
type PubKeyCache struct {
	cache lru.Cache
}

// NewPubKeyCache returns a new PubKeyCache holding up to size keys.  A size
// of zero selects the default size.
func NewPubKeyCache(size uint) *PubKeyCache {
	if size == 0 {
		size = defaultPubKeyCacheSize
	}
	return &PubKeyCache{
		cache: lru.NewCache(size),
	}
}

// cacheKey returns the cache entry for a serialized key on the passed curve.
func cacheKey(params *CurveParams, pubKey []byte) string {
	return params.Name + "/" + string(pubKey)
}

// Contains reports whether the serialized public key was validated on the
// passed curve.
func (pc *PubKeyCache) Contains(params *CurveParams, pubKey []byte) bool {
	return pc.cache.Contains(cacheKey(params, pubKey))
}

// Add records the serialized public key as validated on the passed curve.
func (pc *PubKeyCache) Add(params *CurveParams, pubKey []byte) {
	pc.cache.Add(cacheKey(params, pubKey))
}

// Delete forgets the serialized public key.
func (pc *PubKeyCache) Delete(params *CurveParams, pubKey []byte) {
	pc.cache.Delete(cacheKey(params, pubKey))
}

// SharedSecretCached behaves like GenerateSharedSecret for a serialized peer
// key.  The peer key is only validated the first time it is seen; afterwards
// the validation result is taken from cache.
func (c *Curve) SharedSecretCached(cache *PubKeyCache, priv *PrivateKey,
	peerKey []byte) ([]byte, error) {

	if priv.curve.params != c.params {
		return nil, makeError(ErrCurveMismatch, "private key belongs to "+
			priv.curve.params.Name)
	}

	peer, err := c.parsePoint(peerKey)
	if err != nil {
		return nil, err
	}

	if cache.Contains(c.params, peerKey) {
		log.Tracef("Peer key for %s found in cache", c.params.Name)
	} else {
		if err := c.ValidatePoint(&peer); err != nil {
			return nil, err
		}
		cache.Add(c.params, peerKey)
		log.Debugf("Cached validated peer key for %s", c.params.Name)
	}

	shared, err := c.sharedPoint(&priv.d, &peer)
	if err != nil {
		return nil, err
	}
	return c.layout.Bytes(&shared.X), nil
}
