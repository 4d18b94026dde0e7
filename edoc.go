// Package edoc is a password-based file and folder encoder pairing a
// substitution-permutation block cipher with a dictionary compressor
// and a self-describing archive format.
package edoc

import (
	"github.com/edoclabs/edoc/coding"
	"github.com/edoclabs/edoc/crypto"
)

const Version = "1.0.0"

var (
	// Encrypt defines an Encrypter instance.
	Encrypt = crypto.NewEncrypter()
	// Decrypt defines a Decrypter instance.
	Decrypt = crypto.NewDecrypter()

	// Compress defines an Encoder instance.
	Compress = coding.NewEncoder()
	// Decompress defines a Decoder instance.
	Decompress = coding.NewDecoder()
)
