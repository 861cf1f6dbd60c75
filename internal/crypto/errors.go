package crypto

import "errors"

var (
	ErrCiphertextTooShort = errors.New("ciphertext too short")
	ErrDecryptionFailed   = errors.New("decryption failed")
	ErrSealKeyRequired    = errors.New("value is sealed but no seal key is configured")
)
