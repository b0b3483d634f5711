package types

// WithdrawalRequest is the caller-supplied part of a withdrawal.
type WithdrawalRequest struct {
	Amount      float64 `json:"amount"`
	FromAddress string  `json:"fromAddress"`
}

// SignatureResult is handed to the transport layer that submits the
// withdrawal to the L2 service.
type SignatureResult struct {
	Signature string `json:"signature"` // 128 lowercase hex chars
	Message   string `json:"message"`   // canonical message that was signed (without chain prefix)
	PublicKey string `json:"publicKey"` // echoed as supplied, never derived
	Timestamp int64  `json:"timestamp"` // seconds since epoch
	Nonce     string `json:"nonce"`
}
