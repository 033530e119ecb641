package cryptography
import (
	"bytes"
	"testing"
)

func TestEncryption( t *testing.T ) {
	// generate encryption key
	key, err := GenRandom( SymKeySize )
	if err != nil {
		t.Errorf("Failed to generate encryption key: %s", err.Error())
	}
	// test data
	origData := [][]byte{
		nil,
		[]byte{},
		[]byte("Hello world!"),
		bytes.Repeat( []byte{0x00}, 4096 ),
	}
	// just run test for each type of possible data...
	for _, orig := range origData {
		ct, err := Encrypt( orig, key )
		if err != nil {
			t.Errorf("Failed to encrypt: %s", err.Error())
		}
		pt, err := Decrypt( ct, key )
		if err != nil {
			t.Errorf("Failed to decrypt: %s", err.Error())
		}
		if len(orig) != len(pt) {
			t.Errorf("[CRITICAL] Encryption changed data length: %d != %d", len(orig), len(pt))
		}
		if bytes.Equal( pt, orig ) == false && len(orig) != 0 {
			t.Errorf("[CRITICAL] Encryption changed data: %v != %v", orig, pt)
		}
	}

	// a wrong key must not open anything
	wrongKey, _ := GenRandom( SymKeySize )
	ct, _ := Encrypt( []byte("secret"), key )
	if _, err := Decrypt( ct, wrongKey ); err == nil {
		t.Errorf("Decryption with a wrong key succeeded")
	}
}

func TestDeriveKey( t *testing.T ) {
	salt, err := GenRandom( SaltSize )
	if err != nil {
		t.Errorf("Failed to generate salt: %s", err.Error())
	}
	key := DeriveKey( []byte("password"), salt )
	if len(key) != SymKeySize {
		t.Errorf("Invalid size of output key: %d", len(key))
	}
	// same inputs, same key; different salt, different key
	if bytes.Equal( key, DeriveKey( []byte("password"), salt ) ) == false {
		t.Errorf("Key derivation is not deterministic")
	}
	salt2, _ := GenRandom( SaltSize )
	if bytes.Equal( key, DeriveKey( []byte("password"), salt2 ) ) {
		t.Errorf("Different salts produced the same key")
	}
}

func TestSealPayload( t *testing.T ) {
	password := []byte("correct horse battery staple")
	data := [][]byte{
		[]byte{},
		[]byte("hi"),
		bytes.Repeat( []byte("A"), 10000 ),
	}
	for _, d := range data {
		box, err := SealPayload( d, password )
		if err != nil {
			t.Errorf("Failed to seal payload: %s", err.Error())
		}
		if len(box) != len(d) + SaltSize + NonceSize + TagSize {
			t.Errorf("Unexpected box size: %d for %d bytes of data", len(box), len(d))
		}
		pt, err := OpenPayload( box, password )
		if err != nil {
			t.Errorf("Failed to open payload: %s", err.Error())
		}
		if bytes.Equal( pt, d ) == false && len(d) != 0 {
			t.Errorf("[CRITICAL] Sealing changed data: %v != %v", d, pt)
		}

		if _, err := OpenPayload( box, []byte("wrong password") ); err == nil {
			t.Errorf("Opening with a wrong password succeeded")
		}
	}
}

func TestSplitWithSalt( t *testing.T ) {
	pass, salt, err := SplitWithSalt( "c2FsdA==:password" )
	if err != nil {
		t.Errorf("Failed to split password with salt: %s", err.Error())
	}
	if string(pass) != "password" || string(salt) != "salt" {
		t.Errorf("Invalid split: %s / %s", pass, salt)
	}
	// a ':' inside the password belongs to the password
	pass, _, err = SplitWithSalt( "c2FsdA==:pass:word" )
	if err != nil || string(pass) != "pass:word" {
		t.Errorf("Invalid split of password with delimeter: %s", pass)
	}
	if _, _, err = SplitWithSalt( "no-salt-here" ); err == nil {
		t.Errorf("Split without salt succeeded")
	}
}
