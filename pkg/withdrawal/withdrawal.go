// Package withdrawal builds and signs withdrawal requests for the L2 service.
//
// The pipeline is linear: canonical message -> chain-id domain separation ->
// Ed25519 signature -> SignatureResult. Nothing is sent over the network and
// no key material outlives a call.
package withdrawal

import (
	"fmt"
	"time"

	"github.com/Layr-Labs/l2-withdrawal-signer/pkg/config"
	"github.com/Layr-Labs/l2-withdrawal-signer/pkg/nonce"
	"github.com/Layr-Labs/l2-withdrawal-signer/pkg/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Signer struct {
	config *config.SignerConfig
	logger *zap.Logger
	nonces nonce.Source
	now    func() time.Time
}

type Option func(*Signer)

// WithClock overrides the wall clock used for timestamps and nonces
func WithClock(now func() time.Time) Option {
	return func(s *Signer) {
		s.now = now
	}
}

// WithNonceSource overrides the nonce source selected by the config
func WithNonceSource(src nonce.Source) Option {
	return func(s *Signer) {
		s.nonces = src
	}
}

func NewSigner(cfg *config.SignerConfig, logger *zap.Logger, opts ...Option) (*Signer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid signer config: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Signer{
		config: cfg,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.nonces == nil {
		src, err := nonce.FromMode(cfg.NonceMode)
		if err != nil {
			return nil, err
		}
		s.nonces = src
	}
	return s, nil
}

// ChainID returns the identifier prepended to every payload this signer signs
func (s *Signer) ChainID() config.ChainIdentifier {
	return s.config.ChainID
}

// SignWithdrawal reads the clock once, derives the timestamp (seconds,
// truncated) and the nonce from it, and signs the request.
func (s *Signer) SignWithdrawal(amount float64, fromAddress, privateKeyHex, publicKeyHex string) (*types.SignatureResult, error) {
	now := s.now()
	timestamp := now.UnixMilli() / 1000
	n := s.nonces.Next(now)

	req := &types.WithdrawalRequest{
		Amount:      amount,
		FromAddress: fromAddress,
	}
	return s.SignWithdrawalAt(req, timestamp, n, privateKeyHex, publicKeyHex)
}

// SignWithdrawalAt runs the pipeline with a caller-fixed timestamp and nonce.
func (s *Signer) SignWithdrawalAt(
	req *types.WithdrawalRequest,
	timestamp int64,
	requestNonce string,
	privateKeyHex string,
	publicKeyHex string,
) (*types.SignatureResult, error) {
	if req == nil {
		return nil, fmt.Errorf("withdrawal request cannot be nil")
	}
	if err := ValidateAmount(req.Amount); err != nil {
		return nil, err
	}
	if err := ValidateKeyHex(privateKeyHex); err != nil {
		return nil, fmt.Errorf("private key: %w", err)
	}
	if err := ValidateKeyHex(publicKeyHex); err != nil {
		return nil, fmt.Errorf("public key: %w", err)
	}

	requestId := uuid.New().String()
	message := BuildCanonicalMessage(req.Amount, req.FromAddress, timestamp, requestNonce)
	payload := DomainSeparate(s.config.ChainID, message)

	s.logger.Debug("Built withdrawal payload",
		zap.String("requestId", requestId),
		zap.String("message", message),
		zap.Uint8("chainId", uint8(s.config.ChainID)),
		zap.Int("payloadLen", len(payload)),
	)

	signature, err := Sign(payload, privateKeyHex)
	if err != nil {
		s.logger.Error("Failed to sign withdrawal request",
			zap.String("requestId", requestId),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Debug("Signed withdrawal request",
		zap.String("requestId", requestId),
		zap.String("fromAddress", req.FromAddress),
		zap.String("nonce", requestNonce),
		zap.Int64("timestamp", timestamp),
		zap.String("publicKey", publicKeyHex),
	)

	return &types.SignatureResult{
		Signature: signature,
		Message:   message,
		PublicKey: publicKeyHex,
		Timestamp: timestamp,
		Nonce:     requestNonce,
	}, nil
}

// SignWithdrawal signs with the current deployment's defaults: chain
// identifier 2 and wall-clock millisecond nonces.
func SignWithdrawal(amount float64, fromAddress, privateKeyHex, publicKeyHex string) (*types.SignatureResult, error) {
	s, err := NewSigner(config.NewDefaultSignerConfig(), nil)
	if err != nil {
		return nil, err
	}
	return s.SignWithdrawal(amount, fromAddress, privateKeyHex, publicKeyHex)
}
