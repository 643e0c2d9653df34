package crypto

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"
)

func TestPrivateKeyFromBytes_KnownAddress(t *testing.T) {
	// Private key 1 maps to the generator point G.
	raw := make([]byte, PrivateKeySize)
	raw[31] = 1

	key, err := PrivateKeyFromBytes(raw)
	if err != nil {
		t.Fatalf("PrivateKeyFromBytes() error: %v", err)
	}

	if got := key.Address().Hex(); got != "0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf" {
		t.Errorf("Address() = %s, want 0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf", got)
	}

	wantX := "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	pub := key.PublicKeyUncompressed()
	if len(pub) != 65 || pub[0] != 0x04 {
		t.Fatalf("PublicKeyUncompressed() = %x, want 65 bytes with 0x04 prefix", pub)
	}
	if hex.EncodeToString(pub[1:33]) != wantX {
		t.Errorf("pubkey X = %x, want %s", pub[1:33], wantX)
	}
}

func TestPrivateKeyFromBytes_Roundtrip(t *testing.T) {
	raw, _ := hex.DecodeString("1ab42cc412b618bdea3a599e3c9bae199ebf030895b039e9db1e30dafb12b727")
	key, err := PrivateKeyFromBytes(raw)
	if err != nil {
		t.Fatalf("PrivateKeyFromBytes() error: %v", err)
	}
	if !bytes.Equal(key.Serialize(), raw) {
		t.Errorf("Serialize() = %x, want %x", key.Serialize(), raw)
	}
	if got := key.Address().Hex(); got != "0x9858EfFD232B4033E47d90003D41EC34EcaEda94" {
		t.Errorf("Address() = %s", got)
	}
}

func TestPrivateKeyFromBytes_Invalid(t *testing.T) {
	order, _ := hex.DecodeString("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"too short", make([]byte, 31)},
		{"too long", make([]byte, 33)},
		{"zero scalar", make([]byte, 32)},
		{"curve order", order},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := PrivateKeyFromBytes(tt.data); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestAddressFromPubKey_AcceptsRawXY(t *testing.T) {
	raw := make([]byte, PrivateKeySize)
	raw[31] = 1
	key, _ := PrivateKeyFromBytes(raw)

	full := key.PublicKeyUncompressed()
	a1 := AddressFromPubKey(full)
	a2 := AddressFromPubKey(full[1:])
	if a1 != a2 {
		t.Errorf("AddressFromPubKey with and without 0x04 differ: %s vs %s", a1, a2)
	}
	if !strings.EqualFold(a1.Hex(), "0x7e5f4552091a69125d5dfcb7b8c2659029395bdf") {
		t.Errorf("AddressFromPubKey() = %s", a1.Hex())
	}
}

func TestPrivateKey_Zero(t *testing.T) {
	raw := make([]byte, PrivateKeySize)
	raw[31] = 7
	key, _ := PrivateKeyFromBytes(raw)
	key.Zero()
	if !bytes.Equal(key.Serialize(), make([]byte, PrivateKeySize)) {
		t.Error("Zero() should clear the scalar")
	}
}
