package fingerprint

import (
	"crypto/sha1" // #nosec G401 - selectable digest, not used for security
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/blake3"

	"github.com/dupescout/dupescout/internal/constants"
)

// NewHasher creates a hasher for the configured digest algorithm. The
// default is xxhash: duplicate detection needs speed and collision
// resistance over adversarial inputs is not a concern here.
func NewHasher(algorithm string) (hash.Hash, error) {
	switch algorithm {
	case constants.HashAlgorithmXXHash, "": // Default to xxhash if empty
		return xxhash.New(), nil
	case constants.HashAlgorithmSHA256:
		return sha256.New(), nil
	case constants.HashAlgorithmSHA512:
		return sha512.New(), nil
	case constants.HashAlgorithmSHA1:
		// #nosec G401
		return sha1.New(), nil
	case constants.HashAlgorithmBLAKE3:
		return blake3.New(), nil
	default:
		return nil, fmt.Errorf("unsupported hash algorithm: %s", algorithm)
	}
}
