package withdrawal

import "github.com/pkg/errors"

// Error kinds surfaced to callers. Match with errors.Is; the wrapped message
// carries the detail.
var (
	ErrInvalidKeyEncoding = errors.New("invalid key encoding")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrSigningFailed      = errors.New("signing failed")
)
