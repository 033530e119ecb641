package cryptography
import (
	"golang.org/x/crypto/chacha20poly1305"
)

const (
	SymKeySize = 32
	TagSize = 16
	NonceSize = chacha20poly1305.NonceSize

	// salt prepended to sealed payloads; travels with the box
	SaltSize = 16
)
