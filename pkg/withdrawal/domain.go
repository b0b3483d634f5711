package withdrawal

import "github.com/Layr-Labs/l2-withdrawal-signer/pkg/config"

// DomainSeparate returns [chainID] || message. Every signable payload is
// scoped to a chain so a signature cannot be replayed on another deployment.
func DomainSeparate(chainID config.ChainIdentifier, message string) []byte {
	payload := make([]byte, len(message)+1)
	payload[0] = chainID.Byte()
	copy(payload[1:], message)
	return payload
}
