// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package ecdsa provides ECDSA signatures over the NIST binary curves of the
gf2ec package.

Signatures are pairs (r, s) serialized as r || s, each value taking KeySize
bytes of the curve in the word-array byte order of gf2ec.  Digests and nonces
are KeySize byte buffers supplied by the caller; the digest is truncated below
the bit length of the base point order before use.

Sign and Verify implement the scheme of SEC 1 section 4.1 with the scalar
arithmetic carried out modulo the order of the base point.  SignLegacy and
VerifyLegacy reproduce an older field arithmetic scheme for interoperability
only; VerifyLegacy accepts signatures without looking at the digest.
*/
package ecdsa
