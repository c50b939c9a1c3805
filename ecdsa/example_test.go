// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa_test

import (
	"fmt"

	"github.com/btcsuite/gf2ec"
	"github.com/btcsuite/gf2ec/ecdsa"
	"golang.org/x/crypto/sha3"
)

// This example demonstrates signing a message with a K-283 private key that
// is first generated, then verifying the signature with the public key after
// a round trip through its serialized form.
func Example_signMessage() {
	curve := gf2ec.NewCurve(gf2ec.K283)
	privKey, err := curve.GeneratePrivateKey(nil)
	if err != nil {
		fmt.Println(err)
		return
	}

	// Hash the message to exactly the key size.
	digest := make([]byte, gf2ec.K283.KeySize())
	sha3.ShakeSum256(digest, []byte("test message"))

	signature, err := ecdsa.SignWithEntropy(privKey, digest, nil)
	if err != nil {
		fmt.Println(err)
		return
	}

	pubKey, err := curve.ParsePubKey(privKey.PubKey().Serialize())
	if err != nil {
		fmt.Println(err)
		return
	}
	sig, err := ecdsa.ParseSignature(gf2ec.K283, signature.Serialize())
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("Signature length: %d\n", len(signature.Serialize()))
	fmt.Printf("Signature Verified? %v\n", sig.Verify(digest, pubKey))

	// Output:
	// Signature length: 72
	// Signature Verified? true
}
