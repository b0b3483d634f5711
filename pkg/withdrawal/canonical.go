package withdrawal

import (
	"math"
	"strconv"
	"strings"
)

const ActionWithdrawRequest = "WITHDRAW_REQUEST"

// BuildCanonicalMessage renders the withdrawal as compact JSON with keys in
// alphabetical order at every level:
//
//	{"action":"WITHDRAW_REQUEST","nonce":"<nonce>","payload":{"amount":<amount>,"from_address":"<from>"},"timestamp":<ts>}
//
// The verifier rebuilds this exact string, so fromAddress and nonce are
// copied verbatim and amount always renders as a float literal.
func BuildCanonicalMessage(amount float64, fromAddress string, timestamp int64, nonce string) string {
	var sb strings.Builder
	sb.Grow(len(fromAddress) + len(nonce) + 128)

	sb.WriteString(`{"action":"`)
	sb.WriteString(ActionWithdrawRequest)
	sb.WriteString(`","nonce":"`)
	sb.WriteString(nonce)
	sb.WriteString(`","payload":{"amount":`)
	sb.WriteString(FormatAmount(amount))
	sb.WriteString(`,"from_address":"`)
	sb.WriteString(fromAddress)
	sb.WriteString(`"},"timestamp":`)
	sb.WriteString(strconv.FormatInt(timestamp, 10))
	sb.WriteString(`}`)

	return sb.String()
}

// FormatAmount renders integral values with exactly one trailing ".0" and
// everything else in shortest round-trip positional form. The verifier's
// parser must always see a float literal.
func FormatAmount(amount float64) string {
	if amount == 0 {
		// drop the sign of -0
		amount = 0
	}
	if amount == math.Trunc(amount) {
		return strconv.FormatFloat(amount, 'f', 1, 64)
	}
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
