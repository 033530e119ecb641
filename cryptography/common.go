package cryptography
import (
	"fmt"
	"runtime"
	"strings"
	"crypto/rand"
	"encoding/base64"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

// chacha20poly1305 encryption+authentication, nonce prepended
func Encrypt( data, key []byte ) ([]byte, error) {

	if key == nil || len(key) != SymKeySize {
		return nil, fmt.Errorf("Invalid key")
	}
	aead, err := chacha20poly1305.New( key )
	if err != nil {
		return nil, err
	}
	nonce := make( []byte, NonceSize )
	if _, err := rand.Read( nonce ); err != nil {
		return nil, err
	}
	return append( nonce, aead.Seal( nil, nonce, data, nil )... ), nil
}

func Decrypt( data, key []byte ) ([]byte, error) {

	if key == nil || len(key) != SymKeySize {
		return nil, fmt.Errorf("Invalid key")
	}
	if len(data) < NonceSize + TagSize {
		return nil, fmt.Errorf("Invalid length of data")
	}
	aead, err := chacha20poly1305.New( key )
	if err != nil {
		return nil, err
	}
	nonce := data[:NonceSize]
	return aead.Open( nil, nonce, data[NonceSize:], nil )
}

// generate a random amount of bytes
func GenRandom( size uint ) ([]byte, error) {
	if size == 0 {
		return nil, fmt.Errorf("Invalid size of random data")
	}
	data := make( []byte, size )
	if _, err := rand.Read( data ); err != nil {
		return nil, err
	}
	return data, nil
}

// derive encryption key from password.
// the draft RFC recommends time=3, and memory=32*1024 (32 MB) is a
// sensible number.
func DeriveKey( password, saltBytes []byte ) []byte {
	threads := uint8( runtime.NumCPU() )
	return argon2.IDKey( password, saltBytes, 3, 32 * 1024, threads, SymKeySize )
}

// format: <base64-encoded-salt>:<password>
func SplitWithSalt( password string ) ([]byte, []byte, error) {
	parts := strings.Split( password, ":" )
	if len(parts) < 2 {
		return nil, nil, fmt.Errorf("no salt supplied")
	} else if len(parts) > 2 {
		// consider the first ':' is a delimeter
		parts[1] = strings.Join( parts[1:], ":" )
	}
	saltBytes, err := base64.StdEncoding.DecodeString( parts[0] )
	if err != nil {
		return nil, nil, err
	}
	return []byte( parts[1] ), saltBytes, nil
}

// SealPayload encrypts data under a password with a fresh salt.
// Layout: salt || nonce || ciphertext+tag. Everything the other side
// needs besides the password travels inside the box.
func SealPayload( data, password []byte ) ([]byte, error) {
	salt, err := GenRandom( SaltSize )
	if err != nil {
		return nil, err
	}
	ct, err := Encrypt( data, DeriveKey( password, salt ) )
	if err != nil {
		return nil, err
	}
	return append( salt, ct... ), nil
}

// OpenPayload is the inverse of SealPayload.
func OpenPayload( box, password []byte ) ([]byte, error) {
	if len(box) < SaltSize + NonceSize + TagSize {
		return nil, fmt.Errorf("Invalid length of sealed payload")
	}
	salt := box[:SaltSize]
	return Decrypt( box[SaltSize:], DeriveKey( password, salt ) )
}
