// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto protects secrets the client keeps at rest.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/sealer_mock.go -package=mock

// Sealer encrypts short secrets (the bearer token) before they are written
// to local storage.
//
// Sealed values are self-describing: Open recognises values written by Seal
// and passes any other value through unchanged, so that a store created
// before a key was configured stays readable.
type Sealer interface {
	// Seal encrypts plaintext and returns a printable blob.
	Seal(plaintext string) (string, error)

	// Open reverses Seal. It fails when the blob was sealed under another
	// secret or has been tampered with.
	Open(sealed string) (string, error)
}
