package withdrawal

import (
	"crypto/ed25519"

	"github.com/Layr-Labs/l2-withdrawal-signer/pkg/util"
	"github.com/pkg/errors"
)

// Sign produces a hex encoded Ed25519 signature of payload using the 32 byte
// seed in privateKeyHex. Ed25519 is deterministic, so the same payload and key
// always give the same signature.
func Sign(payload []byte, privateKeyHex string) (string, error) {
	seed, err := util.HexToBytes(privateKeyHex)
	if err != nil {
		return "", errors.Wrapf(ErrInvalidKeyEncoding, "private key: %v", err)
	}
	defer util.Wipe(seed)

	if len(seed) != ed25519.SeedSize {
		return "", errors.Wrapf(ErrSigningFailed, "private key must be %d bytes, got %d", ed25519.SeedSize, len(seed))
	}

	key := ed25519.NewKeyFromSeed(seed)
	defer util.Wipe(key)

	sig := ed25519.Sign(key, payload)
	if len(sig) != ed25519.SignatureSize {
		return "", errors.Wrapf(ErrSigningFailed, "unexpected signature length %d", len(sig))
	}
	return util.BytesToHex(sig), nil
}
