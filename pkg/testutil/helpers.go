package testutil

import (
	"crypto/ed25519"
	"encoding/hex"
	"testing"
)

// Ed25519TestVector is a keypair (and optionally a message/signature) from
// RFC 8032 section 7.1.
type Ed25519TestVector struct {
	Name       string
	PrivateKey string // 32 byte seed
	PublicKey  string
	Message    string
	Signature  string
}

// RFC8032Test1 is TEST 1 of RFC 8032 section 7.1 (empty message).
var RFC8032Test1 = Ed25519TestVector{
	Name:       "rfc8032-test-1",
	PrivateKey: "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60",
	PublicKey:  "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a",
	Message:    "",
	Signature: "e5564300c360ac729086e2cc806e828a84877f1eb8e5d974d873e065" +
		"224901555fb8821590a33bacc61e39701cf9b46bd25bf5f0595bbe24655141438e7a100b",
}

// TestKeyPair returns the RFC 8032 TEST 1 keypair as hex strings.
func TestKeyPair() (privateKeyHex string, publicKeyHex string) {
	return RFC8032Test1.PrivateKey, RFC8032Test1.PublicKey
}

// PublicKeyBytes decodes a hex public key, failing the test on error.
func PublicKeyBytes(t *testing.T, publicKeyHex string) ed25519.PublicKey {
	t.Helper()
	b, err := hex.DecodeString(publicKeyHex)
	if err != nil {
		t.Fatalf("Failed to decode public key: %v", err)
	}
	if len(b) != ed25519.PublicKeySize {
		t.Fatalf("Unexpected public key length %d", len(b))
	}
	return ed25519.PublicKey(b)
}

// VerifyHexSignature checks a hex signature over payload with publicKeyHex.
func VerifyHexSignature(t *testing.T, publicKeyHex string, payload []byte, signatureHex string) bool {
	t.Helper()
	sig, err := hex.DecodeString(signatureHex)
	if err != nil {
		t.Fatalf("Failed to decode signature: %v", err)
	}
	return ed25519.Verify(PublicKeyBytes(t, publicKeyHex), payload, sig)
}
