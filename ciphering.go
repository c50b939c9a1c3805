// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gf2ec

import (
	"bytes"
	"crypto/cipher"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

// cipherInfoPrefix is the HKDF info prefix used to derive message keys.  The
// curve name is appended to it.
const cipherInfoPrefix = "gf2ec encrypt "

// Encrypt encrypts msg for the target public key.  A fresh ephemeral key pair
// is generated on the curve of pubKey, and the X coordinate of the shared
// point is expanded with HKDF-SHA256 into a ChaCha20-Poly1305 key.
//
// The result is laid out as:
//
//	ephemeral public key || nonce (12 bytes) || ciphertext || tag (16 bytes)
//
// The ephemeral public key is authenticated as additional data.
func Encrypt(pubKey *PublicKey, msg []byte) ([]byte, error) {
	return encrypt(defaultRand, pubKey, msg)
}

// encrypt is Encrypt with an explicit entropy source.
func encrypt(entropy io.Reader, pubKey *PublicKey, msg []byte) ([]byte, error) {
	c := pubKey.curve
	ephemeral, err := c.GeneratePrivateKey(entropy)
	if err != nil {
		return nil, fmt.Errorf("failed to generate private key: %w", err)
	}
	defer ephemeral.Zero()

	aead, err := messageCipher(ephemeral, pubKey)
	if err != nil {
		return nil, err
	}

	var ct bytes.Buffer
	ephemeralPub := ephemeral.PubKey().Serialize()
	ct.Write(ephemeralPub)

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(entropy, nonce); err != nil {
		return nil, fmt.Errorf("failed to read nonce: %w", err)
	}
	ct.Write(nonce)
	ct.Write(aead.Seal(nil, nonce, msg, ephemeralPub))

	log.Tracef("Encrypted %d bytes for %s public key", len(msg),
		c.params.Name)

	return ct.Bytes(), nil
}

// Decrypt decrypts a message produced by Encrypt with the receiver private
// key.
func Decrypt(privKey *PrivateKey, msg []byte) ([]byte, error) {
	c := privKey.curve
	pubLen := c.params.PubKeySize()
	minLen := pubLen + chacha20poly1305.NonceSize + chacha20poly1305.Overhead
	if len(msg) < minLen {
		str := fmt.Sprintf("ciphertext of %d bytes is shorter than the "+
			"minimum of %d", len(msg), minLen)
		return nil, makeError(ErrCiphertextTooShort, str)
	}

	ephemeralPub := msg[:pubLen]
	pubKey, err := c.ParsePubKey(ephemeralPub)
	if err != nil {
		return nil, err
	}

	aead, err := messageCipher(privKey, pubKey)
	if err != nil {
		return nil, err
	}

	nonce := msg[pubLen : pubLen+chacha20poly1305.NonceSize]
	sealed := msg[pubLen+chacha20poly1305.NonceSize:]
	plaintext, err := aead.Open(nil, nonce, sealed, ephemeralPub)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt message: %w", err)
	}
	return plaintext, nil
}

// messageCipher derives the AEAD shared by privKey and pubKey.
func messageCipher(privKey *PrivateKey, pubKey *PublicKey) (cipher.AEAD, error) {
	secret, err := GenerateSharedSecret(privKey, pubKey)
	if err != nil {
		return nil, err
	}

	info := []byte(cipherInfoPrefix + privKey.curve.params.Name)
	prk := hkdf.Extract(sha256.New, secret, nil)
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(hkdf.Expand(sha256.New, prk, info), key); err != nil {
		return nil, err
	}
	return chacha20poly1305.New(key)
}
