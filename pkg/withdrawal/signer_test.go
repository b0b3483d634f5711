package withdrawal

import (
	"regexp"
	"strings"
	"testing"

	"github.com/Layr-Labs/l2-withdrawal-signer/pkg/config"
	"github.com/Layr-Labs/l2-withdrawal-signer/pkg/testutil"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lowerHex128 = regexp.MustCompile(`^[0-9a-f]{128}$`)

func Test_Sign(t *testing.T) {
	priv, pub := testutil.TestKeyPair()

	t.Run("Should reproduce the RFC 8032 test vector", func(t *testing.T) {
		sig, err := Sign([]byte{}, testutil.RFC8032Test1.PrivateKey)
		require.NoError(t, err)
		assert.Equal(t, testutil.RFC8032Test1.Signature, sig)
	})

	t.Run("Should be deterministic", func(t *testing.T) {
		payload := DomainSeparate(config.DefaultChainIdentifier, BuildCanonicalMessage(3, "L1_TEST", 1700000000, "1700000000000"))

		first, err := Sign(payload, priv)
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			again, err := Sign(payload, priv)
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	})

	t.Run("Should produce 128 lowercase hex chars that verify", func(t *testing.T) {
		payload := DomainSeparate(config.DefaultChainIdentifier, BuildCanonicalMessage(2.5, "L1_ABC", 1700000000, "1700000000000"))
		sig, err := Sign(payload, priv)
		require.NoError(t, err)
		assert.Regexp(t, lowerHex128, sig)
		assert.True(t, testutil.VerifyHexSignature(t, pub, payload, sig))
	})

	t.Run("Should accept uppercase and 0x prefixed keys", func(t *testing.T) {
		payload := []byte("payload")
		want, err := Sign(payload, priv)
		require.NoError(t, err)

		got, err := Sign(payload, "0x"+strings.ToUpper(priv))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("Should reject malformed hex", func(t *testing.T) {
		for _, bad := range []string{priv[:63], "zz" + priv[2:], "not hex"} {
			sig, err := Sign([]byte("payload"), bad)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidKeyEncoding), err.Error())
			assert.Empty(t, sig)
		}
	})

	t.Run("Should reject wrong length keys as signing failures", func(t *testing.T) {
		for _, bad := range []string{"", priv[:62], priv + priv} {
			sig, err := Sign([]byte("payload"), bad)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrSigningFailed), err.Error())
			assert.False(t, errors.Is(err, ErrInvalidKeyEncoding))
			assert.Empty(t, sig)
		}
	})

	t.Run("Should not leak key material in errors", func(t *testing.T) {
		_, err := Sign([]byte("payload"), priv[:62])
		require.Error(t, err)
		assert.NotContains(t, err.Error(), priv[:62])
	})
}

func Benchmark_Sign(b *testing.B) {
	priv, _ := testutil.TestKeyPair()
	payload := DomainSeparate(config.DefaultChainIdentifier, BuildCanonicalMessage(3, "L1_TEST", 1700000000, "1700000000000"))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Sign(payload, priv); err != nil {
			b.Fatalf("Failed to sign: %v", err)
		}
	}
}
