package stegano
import (
	"os"
	"fmt"
)

/*
 * a carrier is an ordered byte stream: a fixed 54 byte bitmap header
 * which we relay without interpreting a single field of it, followed
 * by raster bytes. every framed bit costs exactly one raster byte.
 * the image itself is never decoded or re-encoded, which is what
 * makes the embedding lossless for the parts we do not touch.
 */

const (
	HeaderSize = 54	// opaque bitmap header, relayed verbatim
)

type Carrier struct {
	File	*os.File
	Size	int64
}

func OpenCarrier( filename string ) (*Carrier, error) {
	f, err := os.Open( filename )
	if err != nil {
		return nil, fmt.Errorf("open carrier %s: %w", filename, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat carrier %s: %w", filename, err)
	}
	if info.Size() < HeaderSize {
		f.Close()
		return nil, ErrShortHeader
	}
	return &Carrier{ f, info.Size() }, nil
}

// UsableBytes returns how many carrier bytes follow the header.
func (c *Carrier) UsableBytes() uint64 {
	return uint64( c.Size - HeaderSize )
}

func (c *Carrier) Close() error {
	return c.File.Close()
}
