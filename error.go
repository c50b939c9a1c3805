// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gf2ec

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrWeakPrivateKey indicates a private key whose degree is below half
	// the curve degree.
	ErrWeakPrivateKey = ErrorKind("ErrWeakPrivateKey")

	// ErrInvalidPeerPublicKey indicates a peer public key that is the point
	// at infinity or does not lie on the curve.
	ErrInvalidPeerPublicKey = ErrorKind("ErrInvalidPeerPublicKey")

	// ErrZeroNonce indicates a signing nonce of zero.
	ErrZeroNonce = ErrorKind("ErrZeroNonce")

	// ErrDegenerateSignature indicates a nonce that produced r = 0 or
	// s = 0.  The caller should retry with a fresh nonce.
	ErrDegenerateSignature = ErrorKind("ErrDegenerateSignature")

	// ErrInvalidSignatureEncoding indicates a signature with a zero
	// component or a component that is not below the group order.
	ErrInvalidSignatureEncoding = ErrorKind("ErrInvalidSignatureEncoding")

	// ErrBadInputSize indicates a byte buffer whose length does not match
	// the curve.
	ErrBadInputSize = ErrorKind("ErrBadInputSize")

	// ErrUnknownCurve indicates a curve name that does not match any
	// supported curve.
	ErrUnknownCurve = ErrorKind("ErrUnknownCurve")

	// ErrPointNotOnCurve indicates a parsed point that does not satisfy the
	// curve equation.  It refines ErrInvalidPeerPublicKey: errors of this
	// kind match both.
	ErrPointNotOnCurve = ErrorKind("ErrPointNotOnCurve")

	// ErrCurveMismatch indicates keys that belong to different curves.
	ErrCurveMismatch = ErrorKind("ErrCurveMismatch")

	// ErrCiphertextTooShort indicates a ciphertext that can not even hold
	// the ephemeral public key, nonce and tag.
	ErrCiphertextTooShort = ErrorKind("ErrCiphertextTooShort")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to key agreement, signatures or their
// encodings.  It has full support for errors.Is and errors.As, so the caller
// can ascertain the specific reason for the error by checking the underlying
// error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}

// MakeError creates an Error given a set of arguments.  It is exported for
// the packages that build on the curve engine.
func MakeError(kind ErrorKind, desc string) Error {
	return makeError(kind, desc)
}
