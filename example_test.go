// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gf2ec_test

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/gf2ec"
)

// This example demonstrates a Diffie-Hellman exchange on K-163 using the
// byte-level entry points with private keys that are parsed from raw bytes.
func Example_deriveSharedSecret() {
	alicePriv, err := hex.DecodeString("0102030405060708090a0b0c0d0e0f10" +
		"1112131415161718")
	if err != nil {
		fmt.Println(err)
		return
	}
	bobPriv, err := hex.DecodeString("202122232425262728292a2b2c2d2e2f" +
		"3031323334353637")
	if err != nil {
		fmt.Println(err)
		return
	}

	alicePub, err := gf2ec.DerivePublicKey(gf2ec.K163, alicePriv)
	if err != nil {
		fmt.Println(err)
		return
	}
	bobPub, err := gf2ec.DerivePublicKey(gf2ec.K163, bobPriv)
	if err != nil {
		fmt.Println(err)
		return
	}

	aliceShared, err := gf2ec.DeriveSharedSecret(gf2ec.K163, alicePriv, bobPub)
	if err != nil {
		fmt.Println(err)
		return
	}
	bobShared, err := gf2ec.DeriveSharedSecret(gf2ec.K163, bobPriv, alicePub)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("Shared X: %x\n", aliceShared[:gf2ec.K163.KeySize()])
	fmt.Println("Secrets match?", bytes.Equal(aliceShared, bobShared))

	// Output:
	// Shared X: ab385a054975432d0512854e6f5da16fda050dd304000000
	// Secrets match? true
}

// This example demonstrates encrypting a message to a public key that is
// first parsed from raw bytes, then decrypting it with the private key.
func Example_encryptMessage() {
	curve := gf2ec.NewCurve(gf2ec.B233)
	privKey, err := curve.GeneratePrivateKey(nil)
	if err != nil {
		fmt.Println(err)
		return
	}

	pubKey, err := curve.ParsePubKey(privKey.PubKey().Serialize())
	if err != nil {
		fmt.Println(err)
		return
	}

	ciphertext, err := gf2ec.Encrypt(pubKey, []byte("test message"))
	if err != nil {
		fmt.Println(err)
		return
	}

	plaintext, err := gf2ec.Decrypt(privKey, ciphertext)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(string(plaintext))

	// Output:
	// test message
}
