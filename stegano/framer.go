package stegano
import (
	"io"
	"fmt"
	"bufio"
)

/*
 * the framer drives the fixed field order of the embedded stream:
 *
 *	signature, extension length, extension text,
 *	payload length, payload bytes
 *
 * fields are written and read strictly in this order. any failure is
 * terminal: there are no backward transitions, no retries and no
 * rollback. the stream is self-describing, both length fields travel
 * inside it; only the signature length is known a priori by both
 * sides.
 */

type Encoder struct {
	src	*bufio.Reader	// carrier bytes
	dst	*bufio.Writer	// stego output
	window	[Uint32Window]byte
}

func NewEncoder( src io.Reader, dst io.Writer ) *Encoder {
	return &Encoder{
		src: bufio.NewReader( src ),
		dst: bufio.NewWriter( dst ),
	}
}

// RelayHeader copies the opaque bitmap header verbatim.
func (e *Encoder) RelayHeader() error {
	header := make( []byte, HeaderSize )
	if _, err := io.ReadFull( e.src, header ); err != nil {
		return ErrShortHeader
	}
	if _, err := e.dst.Write( header ); err != nil {
		return fmt.Errorf("header relay: %w", err)
	}
	return nil
}

// carryByte moves one payload byte into the next ByteWindow carrier bytes.
func (e *Encoder) carryByte( b byte ) error {
	window := e.window[:ByteWindow]
	if _, err := io.ReadFull( e.src, window ); err != nil {
		return fmt.Errorf("read carrier window: %w", err)
	}
	PackByte( b, window )
	if _, err := e.dst.Write( window ); err != nil {
		return fmt.Errorf("write carrier window: %w", err)
	}
	return nil
}

func (e *Encoder) EncodeString( field, s string ) error {
	for i := 0; i < len(s); i++ {
		if err := e.carryByte( s[i] ); err != nil {
			return fmt.Errorf("%s: %w", field, err)
		}
	}
	return nil
}

func (e *Encoder) EncodeUint32( field string, value uint32 ) error {
	window := e.window[:Uint32Window]
	if _, err := io.ReadFull( e.src, window ); err != nil {
		return fmt.Errorf("%s: read carrier window: %w", field, err)
	}
	PackUint32( value, window )
	if _, err := e.dst.Write( window ); err != nil {
		return fmt.Errorf("%s: write carrier window: %w", field, err)
	}
	return nil
}

func (e *Encoder) EncodeBytes( field string, data []byte ) error {
	for _, b := range data {
		if err := e.carryByte( b ); err != nil {
			return fmt.Errorf("%s: %w", field, err)
		}
	}
	return nil
}

// RelayRemaining copies every carrier byte left after the framed
// stream, unchanged, and flushes the output. The stego file ends up
// exactly as long as the carrier.
func (e *Encoder) RelayRemaining() error {
	if _, err := io.Copy( e.dst, e.src ); err != nil {
		return fmt.Errorf("tail relay: %w", err)
	}
	return e.dst.Flush()
}

type Decoder struct {
	src		*bufio.Reader
	window		[Uint32Window]byte
	remaining	int64	// carrier bytes still available for framed fields
}

// NewDecoder wraps a stego stream of carrierSize total bytes. The size
// bounds how large a declared payload can possibly be.
func NewDecoder( src io.Reader, carrierSize int64 ) *Decoder {
	return &Decoder{
		src: bufio.NewReader( src ),
		remaining: carrierSize - HeaderSize,
	}
}

// SkipHeader advances past the opaque bitmap header.
func (d *Decoder) SkipHeader() error {
	if _, err := io.CopyN( io.Discard, d.src, HeaderSize ); err != nil {
		return ErrShortHeader
	}
	return nil
}

func (d *Decoder) revealByte() (byte, error) {
	window := d.window[:ByteWindow]
	if _, err := io.ReadFull( d.src, window ); err != nil {
		return 0, fmt.Errorf("read carrier window: %w", err)
	}
	d.remaining -= ByteWindow
	return UnpackByte( window ), nil
}

func (d *Decoder) DecodeString( field string, length int ) (string, error) {
	raw := make( []byte, length )
	for i := 0; i < length; i++ {
		b, err := d.revealByte()
		if err != nil {
			return "", fmt.Errorf("%s: %w", field, err)
		}
		raw[i] = b
	}
	return string(raw), nil
}

func (d *Decoder) DecodeUint32( field string ) (uint32, error) {
	window := d.window[:Uint32Window]
	if _, err := io.ReadFull( d.src, window ); err != nil {
		return 0, fmt.Errorf("%s: read carrier window: %w", field, err)
	}
	d.remaining -= Uint32Window
	return UnpackUint32( window ), nil
}

func (d *Decoder) DecodeBytes( field string, length uint32 ) ([]byte, error) {
	data := make( []byte, length )
	for i := range data {
		b, err := d.revealByte()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", field, err)
		}
		data[i] = b
	}
	return data, nil
}

// Remaining reports how many carrier bytes are still available for
// framed fields. Used to reject payload lengths a hostile file
// declares but cannot possibly hold.
func (d *Decoder) Remaining() int64 {
	return d.remaining
}
