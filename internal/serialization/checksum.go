package serialization

import (
	"crypto/sha256"
)

// ComputeChecksum computes SHA-256 checksum of data.
func ComputeChecksum(data []byte) [ChecksumSize]byte {
	return sha256.Sum256(data)
}

// ValidateChecksum verifies the SHA-256 trailer of an encoded tensor and
// returns the body it covers. Returns ErrChecksumMismatch if they don't
// match.
func ValidateChecksum(data []byte) ([]byte, error) {
	if len(data) < prefixSize+ChecksumSize {
		return nil, &ValidationError{Err: ErrTruncated, Element: -1, Details: "shorter than the fixed header and checksum"}
	}
	body := data[:len(data)-ChecksumSize]
	var stored [ChecksumSize]byte
	copy(stored[:], data[len(body):])
	if ComputeChecksum(body) != stored {
		return nil, ErrChecksumMismatch
	}
	return body, nil
}
