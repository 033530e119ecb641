package stegano

/*
 * bit-level packing. one bit of the value goes into the least
 * significant bit of one carrier byte, most significant bit first.
 * only bit 0 of a carrier byte is ever touched, which keeps the
 * distortion of the image within one intensity level per channel.
 *
 * the bit order is a convention shared by PackByte/UnpackByte and
 * PackUint32/UnpackUint32. the format carries no checksum, so an
 * encoder and decoder disagreeing on the order produce garbage
 * without any error being signalled.
 */

const (
	ByteWindow = 8		// carrier bytes holding one payload byte
	Uint32Window = 32	// carrier bytes holding one 32-bit field
)

// PackByte spreads value over the first ByteWindow bytes of window.
func PackByte( value byte, window []byte ) {
	for i := 0; i < ByteWindow; i++ {
		bit := (value >> (7 - i)) & 1
		window[i] = (window[i] & 0xfe) | bit
	}
}

// UnpackByte is the inverse of PackByte.
func UnpackByte( window []byte ) byte {
	value := byte(0)
	for i := 0; i < ByteWindow; i++ {
		value = (value << 1) | (window[i] & 1)
	}
	return value
}

// PackUint32 spreads value over the first Uint32Window bytes of window,
// bit 31 first.
func PackUint32( value uint32, window []byte ) {
	for i := 0; i < Uint32Window; i++ {
		bit := byte( (value >> (31 - i)) & 1 )
		window[i] = (window[i] & 0xfe) | bit
	}
}

// UnpackUint32 is the inverse of PackUint32.
func UnpackUint32( window []byte ) uint32 {
	value := uint32(0)
	for i := 0; i < Uint32Window; i++ {
		value = (value << 1) | uint32(window[i] & 1)
	}
	return value
}
