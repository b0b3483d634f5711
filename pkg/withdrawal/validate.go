package withdrawal

import (
	"math"
	"strings"

	"github.com/Layr-Labs/l2-withdrawal-signer/pkg/util"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ValidateAmount rejects values that cannot be rendered as a JSON number.
// Zero and negative amounts pass; the L2 service decides on those.
func ValidateAmount(amount float64) error {
	if math.IsNaN(amount) {
		return errors.Wrap(ErrInvalidAmount, "amount is NaN")
	}
	if math.IsInf(amount, 0) {
		return errors.Wrapf(ErrInvalidAmount, "amount is %v", amount)
	}
	return nil
}

// ValidateKeyHex checks that a key is well-formed hex without keeping the
// decoded bytes around.
func ValidateKeyHex(keyHex string) error {
	b, err := util.HexToBytes(keyHex)
	if err != nil {
		return errors.Wrap(ErrInvalidKeyEncoding, err.Error())
	}
	util.Wipe(b)
	return nil
}

// ParseAmount parses a user supplied decimal string, e.g. a CLI flag.
func ParseAmount(s string) (float64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidAmount, "failed to parse %q: %v", s, err)
	}
	f, _ := d.Float64()
	if err := ValidateAmount(f); err != nil {
		return 0, err
	}
	return f, nil
}
