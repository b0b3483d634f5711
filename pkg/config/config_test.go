package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignerConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      *SignerConfig
		expectedErr string
		wantMode    NonceMode
	}{
		{
			name:     "default config",
			config:   NewDefaultSignerConfig(),
			wantMode: NonceMode_Millis,
		},
		{
			name:     "empty nonce mode defaults to millis",
			config:   &SignerConfig{ChainID: 7},
			wantMode: NonceMode_Millis,
		},
		{
			name:     "monotonic nonce mode",
			config:   &SignerConfig{ChainID: 2, NonceMode: NonceMode_Monotonic},
			wantMode: NonceMode_Monotonic,
		},
		{
			name:        "unknown nonce mode",
			config:      &SignerConfig{ChainID: 2, NonceMode: "random"},
			expectedErr: "nonceMode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectedErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMode, tt.config.NonceMode)
		})
	}
}

func TestDefaultChainIdentifier(t *testing.T) {
	assert.Equal(t, byte(2), DefaultChainIdentifier.Byte())
	assert.Equal(t, DefaultChainIdentifier, NewDefaultSignerConfig().ChainID)
	assert.Equal(t, "2", DefaultChainIdentifier.String())
}

func TestParseChainIdentifier(t *testing.T) {
	id, err := ParseChainIdentifier(2)
	require.NoError(t, err)
	assert.Equal(t, ChainIdentifier(2), id)

	id, err = ParseChainIdentifier(255)
	require.NoError(t, err)
	assert.Equal(t, ChainIdentifier(255), id)

	_, err = ParseChainIdentifier(256)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "one byte")
}

func TestGetChainIdentifierForNetwork(t *testing.T) {
	for _, network := range []NetworkName{NetworkName_Mainnet, NetworkName_Testnet, NetworkName_Devnet} {
		id, err := GetChainIdentifierForNetwork(network)
		require.NoError(t, err)
		assert.Equal(t, DefaultChainIdentifier, id)
	}

	_, err := GetChainIdentifierForNetwork("unknown")
	require.Error(t, err)
}

func TestKeyConfig_Validate(t *testing.T) {
	validPriv := strings.Repeat("ab", 32)

	t.Run("valid keys", func(t *testing.T) {
		kc := &KeyConfig{PrivateKey: validPriv, PublicKey: strings.Repeat("cd", 32)}
		require.NoError(t, kc.Validate())
	})

	t.Run("0x prefixed private key", func(t *testing.T) {
		kc := &KeyConfig{PrivateKey: "0x" + validPriv, PublicKey: "00"}
		require.NoError(t, kc.Validate())
	})

	t.Run("missing keys are aggregated", func(t *testing.T) {
		err := (&KeyConfig{}).Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "privateKey")
		assert.Contains(t, err.Error(), "publicKey")
	})

	t.Run("short private key is not echoed", func(t *testing.T) {
		err := (&KeyConfig{PrivateKey: "deadbeef", PublicKey: "00"}).Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "64 hex chars")
		assert.NotContains(t, err.Error(), "deadbeef")
	})
}
