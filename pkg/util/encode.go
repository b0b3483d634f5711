package util

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// HexToBytes decodes an even-length hex string two characters at a time.
// An optional 0x prefix is accepted. Odd length or non-hex characters are
// rejected rather than decoded into partial bytes.
func HexToBytes(s string) ([]byte, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if trimmed == "" {
		return []byte{}, nil
	}
	b, err := hexutil.Decode("0x" + trimmed)
	if err != nil {
		return nil, fmt.Errorf("failed to decode hex string of length %d: %w", len(trimmed), err)
	}
	return b, nil
}

// BytesToHex renders each byte as two lowercase hex digits, without prefix.
func BytesToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// Wipe overwrites b with zeros.
func Wipe(b []byte) {
	if len(b) == 0 {
		return
	}
	zero := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zero)
}
