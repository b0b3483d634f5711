package config

import (
	"fmt"
	"strings"

	"k8s.io/apimachinery/pkg/util/validation/field"
)

// Environment variable names for the withdrawal signer
const (
	EnvChainID    = "WITHDRAWAL_CHAIN_ID"
	EnvNetwork    = "WITHDRAWAL_NETWORK"
	EnvPrivateKey = "WITHDRAWAL_PRIVATE_KEY"
	EnvPublicKey  = "WITHDRAWAL_PUBLIC_KEY"
	EnvNonceMode  = "WITHDRAWAL_NONCE_MODE"
	EnvDebug      = "WITHDRAWAL_DEBUG"
)

// ChainIdentifier is the single byte prepended to every signable payload.
// The verifier must be deployed with the same value.
type ChainIdentifier uint8

func (c ChainIdentifier) Byte() byte {
	return byte(c)
}

func (c ChainIdentifier) String() string {
	return fmt.Sprintf("%d", uint8(c))
}

const DefaultChainIdentifier ChainIdentifier = 2

type NetworkName string

const (
	NetworkName_Mainnet NetworkName = "mainnet"
	NetworkName_Testnet NetworkName = "testnet"
	NetworkName_Devnet  NetworkName = "devnet"
)

// All networks share the current deployment's identifier until the verifier
// is rolled out with distinct values.
var NetworkToChainIdentifier = map[NetworkName]ChainIdentifier{
	NetworkName_Mainnet: DefaultChainIdentifier,
	NetworkName_Testnet: DefaultChainIdentifier,
	NetworkName_Devnet:  DefaultChainIdentifier,
}

// GetChainIdentifierForNetwork returns the chain identifier configured for a named network
func GetChainIdentifierForNetwork(network NetworkName) (ChainIdentifier, error) {
	id, ok := NetworkToChainIdentifier[network]
	if !ok {
		return 0, fmt.Errorf("unsupported network: %s", network)
	}
	return id, nil
}

// GetSupportedNetworksString returns supported network names for CLI help
func GetSupportedNetworksString() string {
	return fmt.Sprintf("%s, %s, %s", NetworkName_Mainnet, NetworkName_Testnet, NetworkName_Devnet)
}

type NonceMode string

const (
	NonceMode_Millis    NonceMode = "millis"
	NonceMode_Monotonic NonceMode = "monotonic"
)

// SignerConfig is the process-wide configuration of the withdrawal signer
type SignerConfig struct {
	ChainID   ChainIdentifier `json:"chain_id" yaml:"chainId"`
	NonceMode NonceMode       `json:"nonce_mode" yaml:"nonceMode"`
	Debug     bool            `json:"debug" yaml:"debug"`
}

// NewDefaultSignerConfig returns the configuration of the current deployment
func NewDefaultSignerConfig() *SignerConfig {
	return &SignerConfig{
		ChainID:   DefaultChainIdentifier,
		NonceMode: NonceMode_Millis,
	}
}

func (c *SignerConfig) Validate() error {
	var allErrors field.ErrorList
	switch c.NonceMode {
	case NonceMode_Millis, NonceMode_Monotonic:
	case "":
		c.NonceMode = NonceMode_Millis
	default:
		allErrors = append(allErrors, field.NotSupported(
			field.NewPath("nonceMode"),
			c.NonceMode,
			[]string{string(NonceMode_Millis), string(NonceMode_Monotonic)},
		))
	}
	if len(allErrors) > 0 {
		return allErrors.ToAggregate()
	}
	return nil
}

// ParseChainIdentifier converts a numeric flag/env value into a ChainIdentifier
func ParseChainIdentifier(value uint64) (ChainIdentifier, error) {
	if value > 255 {
		return 0, fmt.Errorf("chain identifier must fit in one byte (0-255), got %d", value)
	}
	return ChainIdentifier(value), nil
}

// KeyConfig carries the hex encoded Ed25519 keypair borrowed for a signing call
type KeyConfig struct {
	PrivateKey string `json:"-" yaml:"privateKey"`
	PublicKey  string `json:"publicKey" yaml:"publicKey"`
}

func (kc *KeyConfig) Validate() error {
	var allErrors field.ErrorList
	if kc.PrivateKey == "" {
		allErrors = append(allErrors, field.Required(field.NewPath("privateKey"), "privateKey is required"))
	} else if n := len(strings.TrimPrefix(kc.PrivateKey, "0x")); n != 64 {
		// never echo the value itself
		allErrors = append(allErrors, field.Invalid(field.NewPath("privateKey"), "<redacted>",
			fmt.Sprintf("must be 32 bytes (64 hex chars), got %d chars", n)))
	}
	if kc.PublicKey == "" {
		allErrors = append(allErrors, field.Required(field.NewPath("publicKey"), "publicKey is required"))
	}
	if len(allErrors) > 0 {
		return allErrors.ToAggregate()
	}
	return nil
}
