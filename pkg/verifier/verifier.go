// Package verifier mirrors the L2 service's signature check so that a signed
// withdrawal can be debugged locally. It is never on the signing path.
package verifier

import (
	"crypto/ed25519"
	"fmt"

	"github.com/Layr-Labs/l2-withdrawal-signer/pkg/config"
	"github.com/Layr-Labs/l2-withdrawal-signer/pkg/types"
	"github.com/Layr-Labs/l2-withdrawal-signer/pkg/util"
	"github.com/Layr-Labs/l2-withdrawal-signer/pkg/withdrawal"
	"github.com/pkg/errors"
)

var (
	ErrMessageMismatch  = errors.New("canonical message mismatch")
	ErrInvalidSignature = errors.New("invalid signature")
)

// Verify rebuilds the canonical message from the logical request fields and
// the result's timestamp/nonce, checks it against result.Message, then
// verifies the signature over the chain-prefixed payload.
func Verify(chainID config.ChainIdentifier, result *types.SignatureResult, req *types.WithdrawalRequest) error {
	if result == nil || req == nil {
		return fmt.Errorf("result and request are required")
	}

	expected := withdrawal.BuildCanonicalMessage(req.Amount, req.FromAddress, result.Timestamp, result.Nonce)
	if expected != result.Message {
		return errors.Wrapf(ErrMessageMismatch, "expected %s, got %s", expected, result.Message)
	}

	pub, err := util.HexToBytes(result.PublicKey)
	if err != nil {
		return errors.Wrapf(withdrawal.ErrInvalidKeyEncoding, "public key: %v", err)
	}
	if len(pub) != ed25519.PublicKeySize {
		return errors.Wrapf(ErrInvalidSignature, "public key must be %d bytes, got %d", ed25519.PublicKeySize, len(pub))
	}

	sig, err := util.HexToBytes(result.Signature)
	if err != nil {
		return errors.Wrapf(ErrInvalidSignature, "signature: %v", err)
	}
	if len(sig) != ed25519.SignatureSize {
		return errors.Wrapf(ErrInvalidSignature, "signature must be %d bytes, got %d", ed25519.SignatureSize, len(sig))
	}

	payload := withdrawal.DomainSeparate(chainID, expected)
	if !ed25519.Verify(ed25519.PublicKey(pub), payload, sig) {
		return errors.Wrapf(ErrInvalidSignature, "verification failed for chain %s", chainID)
	}
	return nil
}
