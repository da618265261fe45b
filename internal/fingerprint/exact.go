package fingerprint

import (
	"fmt"
	"io"
	"os"

	"github.com/dupescout/dupescout/internal/constants"
	"github.com/dupescout/dupescout/internal/scanerr"
)

// ExactFile streams the file through the configured digest in fixed-size
// chunks, so arbitrarily large files use bounded memory. The digest of an
// empty file is the algorithm's empty-input digest, which makes all
// zero-byte files mutual duplicates.
func ExactFile(path, algorithm string) (Fingerprint, error) {
	hasher, err := NewHasher(algorithm)
	if err != nil {
		return Fingerprint{}, err
	}

	file, err := os.Open(path)
	if err != nil {
		return Fingerprint{}, &scanerr.ReadError{Path: path, Err: err}
	}
	defer file.Close()

	buffer := make([]byte, constants.ReadChunkSize)
	for {
		bytesRead, err := file.Read(buffer)
		if bytesRead > 0 {
			hasher.Write(buffer[:bytesRead])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return Fingerprint{}, &scanerr.ReadError{Path: path, Err: err}
		}
	}

	return Fingerprint{Key: fmt.Sprintf("%x", hasher.Sum(nil))}, nil
}
