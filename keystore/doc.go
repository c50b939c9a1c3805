// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package keystore persists named private keys of the binary curves.

Keys are stored under "<curve name>/<key name>" so the same name may be used
on several curves.  Each record holds the private scalar and the public key in
their fixed-size serialized forms behind a version byte and is protected by a
four byte double SHA-256 checksum.  Loading a key re-derives the public key
and refuses records whose stored public key does not match.

Storage is delegated to an engine.Engine; goleveldb and pebble backends are
available and selected by Open.
*/
package keystore
