package stegano
import (
	"os"
	"fmt"

	"pixveil/util"
	"pixveil/cryptography"
)

const (
	DefaultStegoName = "stego_img.bmp"
	DefaultOutputBase = "output"
)

/*
 * file-level drivers. each run owns its own file handles and decoded
 * values, nothing is shared between runs, so independent operations
 * on distinct files can happen in parallel without coordination.
 */

type EncodeRequest struct {
	CarrierName	string
	SecretName	string
	StegoName	string	// defaults to DefaultStegoName
	Signature	string
	Password	[]byte	// optional, seals the payload before framing
}

type DecodeRequest struct {
	StegoName	string
	OutputBase	string	// defaults to DefaultOutputBase
	Signature	string	// expected; never taken from the file
	Password	[]byte
}

// Encode hides the secret file in the carrier image and writes the
// result to req.StegoName. The output is header + framed stream +
// untouched remainder of the carrier, byte count preserved.
func Encode( req *EncodeRequest ) error {
	stegoName := req.StegoName
	if stegoName == "" {
		stegoName = DefaultStegoName
	}

	carrier, err := OpenCarrier( req.CarrierName )
	if err != nil {
		return err
	}
	defer carrier.Close()

	payload, err := os.ReadFile( req.SecretName )
	if err != nil {
		return fmt.Errorf("open secret %s: %w", req.SecretName, err)
	}
	if req.Password != nil {
		payload, err = cryptography.SealPayload( payload, req.Password )
		if err != nil {
			return err
		}
	}

	// the extension travels with its leading dot, like ".txt"
	extension := util.ExtractExtension( req.SecretName )
	if len(extension) > MaxExtensionLen {
		return ErrExtensionTooLong
	}

	// all sizes are known now; nothing below recomputes them
	if CheckCapacity( carrier.UsableBytes(),
		uint64(len(req.Signature)),
		uint64(len(extension)),
		uint64(len(payload)) ) == false {
		return ErrInsufficientCapacity
	}

	out, err := os.Create( stegoName )
	if err != nil {
		return fmt.Errorf("create stego %s: %w", stegoName, err)
	}
	defer out.Close()

	enc := NewEncoder( carrier.File, out )
	if err := enc.RelayHeader(); err != nil {
		return err
	}
	if err := enc.EncodeString( "signature", req.Signature ); err != nil {
		return err
	}
	if err := enc.EncodeUint32( "extension length", uint32(len(extension)) ); err != nil {
		return err
	}
	if err := enc.EncodeString( "extension", extension ); err != nil {
		return err
	}
	if err := enc.EncodeUint32( "payload length", uint32(len(payload)) ); err != nil {
		return err
	}
	if err := enc.EncodeBytes( "payload", payload ); err != nil {
		return err
	}
	if err := enc.RelayRemaining(); err != nil {
		return err
	}
	return out.Sync()
}

// Decode recovers the embedded payload from a stego image and writes
// it to OutputBase with its extension replaced by the embedded one.
// It returns the name of the file written.
func Decode( req *DecodeRequest ) (string, error) {
	base := req.OutputBase
	if base == "" {
		base = DefaultOutputBase
	}

	carrier, err := OpenCarrier( req.StegoName )
	if err != nil {
		return "", err
	}
	defer carrier.Close()

	dec := NewDecoder( carrier.File, carrier.Size )
	if err := dec.SkipHeader(); err != nil {
		return "", err
	}

	// the signature is verified before any further field is read.
	// it is the only integrity check the format has.
	signature, err := dec.DecodeString( "signature", len(req.Signature) )
	if err != nil {
		return "", err
	}
	if signature != req.Signature {
		return "", ErrSignatureMismatch
	}

	extLen, err := dec.DecodeUint32( "extension length" )
	if err != nil {
		return "", err
	}
	if extLen > MaxExtensionLen {
		return "", ErrExtensionTooLong
	}
	extension, err := dec.DecodeString( "extension", int(extLen) )
	if err != nil {
		return "", err
	}

	payloadLen, err := dec.DecodeUint32( "payload length" )
	if err != nil {
		return "", err
	}
	if int64(payloadLen) * ByteWindow > dec.Remaining() {
		return "", ErrPayloadTooLarge
	}
	payload, err := dec.DecodeBytes( "payload", payloadLen )
	if err != nil {
		return "", err
	}

	if req.Password != nil {
		payload, err = cryptography.OpenPayload( payload, req.Password )
		if err != nil {
			return "", err
		}
	}

	outName := util.ReplaceExtension( base, extension )
	if err := os.WriteFile( outName, payload, 0600 ); err != nil {
		return "", fmt.Errorf("write output %s: %w", outName, err)
	}
	return outName, nil
}

// Fits reports whether the named secret would fit in the named
// carrier, without writing anything.
func Fits( carrierName, secretName, signature string ) (usable, required uint64, ok bool, err error) {
	carrier, err := OpenCarrier( carrierName )
	if err != nil {
		return 0, 0, false, err
	}
	defer carrier.Close()

	info, err := os.Stat( secretName )
	if err != nil {
		return 0, 0, false, fmt.Errorf("open secret %s: %w", secretName, err)
	}

	extension := util.ExtractExtension( secretName )
	usable = carrier.UsableBytes()
	required = RequiredBytes( uint64(len(signature)),
		uint64(len(extension)), uint64(info.Size()) )
	return usable, required, usable >= required, nil
}
