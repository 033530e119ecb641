package stegano
import (
	"errors"
)

const (
	// decoded extension lengths above this are treated as garbage.
	// a real suffix like ".tar.gz" is a few bytes; 64 leaves plenty
	// of room while stopping a hostile length field from driving
	// allocations.
	MaxExtensionLen = 64
)

var (
	ErrShortHeader = errors.New("carrier is shorter than the bitmap header")
	ErrInsufficientCapacity = errors.New("carrier has no room for the framed stream")
	ErrSignatureMismatch = errors.New("decoded signature does not match the expected one")
	ErrExtensionTooLong = errors.New("decoded extension length is implausible")
	ErrPayloadTooLarge = errors.New("decoded payload length exceeds the carrier")
)
