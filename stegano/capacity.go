package stegano

const (
	SizeFieldBytes = 4	// the u32 length fields for extension and payload
)

/*
 * capacity is checked once, up front, from sizes that are computed
 * exactly once. nothing is written before this check passes, and no
 * size is recomputed mid-stream.
 */

// RequiredBytes returns the number of carrier bytes the framed stream
// occupies: every framed byte costs ByteWindow carrier bytes.
func RequiredBytes( signatureLen, extensionLen, payloadLen uint64 ) uint64 {
	framed := signatureLen + SizeFieldBytes + extensionLen + SizeFieldBytes + payloadLen
	return framed * ByteWindow
}

// CheckCapacity reports whether usable carrier bytes (the bytes after
// the header) can hold the whole framed stream. The boundary is
// inclusive: an exact fit succeeds.
func CheckCapacity( usable, signatureLen, extensionLen, payloadLen uint64 ) bool {
	return usable >= RequiredBytes( signatureLen, extensionLen, payloadLen )
}
