package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/Layr-Labs/l2-withdrawal-signer/pkg/config"
	"github.com/Layr-Labs/l2-withdrawal-signer/pkg/logger"
	"github.com/Layr-Labs/l2-withdrawal-signer/pkg/types"
	"github.com/Layr-Labs/l2-withdrawal-signer/pkg/util"
	"github.com/Layr-Labs/l2-withdrawal-signer/pkg/verifier"
	"github.com/Layr-Labs/l2-withdrawal-signer/pkg/withdrawal"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "withdrawal-signer",
		Usage: "Sign L2 withdrawal requests with Ed25519",
		Description: `Builds the canonical withdrawal message, prefixes it with the chain identifier
and signs it. The JSON result is printed to stdout for the HTTP client that
submits it to the L2 service; nothing is sent from here.`,
		Version: "1.0.0",
		Flags: []cli.Flag{
			&cli.Uint64Flag{
				Name:    "chain-id",
				Usage:   "Chain identifier byte prepended to every payload",
				Value:   uint64(config.DefaultChainIdentifier),
				EnvVars: []string{config.EnvChainID},
			},
			&cli.StringFlag{
				Name:    "network",
				Usage:   fmt.Sprintf("Named network (%s); overrides --chain-id", config.GetSupportedNetworksString()),
				EnvVars: []string{config.EnvNetwork},
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "Enable debug logging (stderr)",
				EnvVars: []string{config.EnvDebug},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "sign",
				Usage: "Sign a withdrawal request",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "amount",
						Usage:    "Token amount, e.g. 3 or 2.5",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "from-address",
						Usage:    "Source account identifier",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "private-key",
						Usage:   "Hex encoded 32 byte Ed25519 private key",
						EnvVars: []string{config.EnvPrivateKey},
					},
					&cli.StringFlag{
						Name:    "public-key",
						Usage:   "Hex encoded Ed25519 public key (echoed into the result)",
						EnvVars: []string{config.EnvPublicKey},
					},
					&cli.StringFlag{
						Name:    "nonce-mode",
						Usage:   "Nonce source: millis or monotonic",
						Value:   string(config.NonceMode_Millis),
						EnvVars: []string{config.EnvNonceMode},
					},
				},
				Action: signCommand,
			},
			{
				Name:  "message",
				Usage: "Print the canonical message and domain separated payload",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "amount",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "from-address",
						Required: true,
					},
					&cli.Int64Flag{
						Name:     "timestamp",
						Usage:    "Seconds since epoch",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "nonce",
						Required: true,
					},
				},
				Action: messageCommand,
			},
			{
				Name:  "verify",
				Usage: "Check a signing result the way the L2 verifier does",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "amount",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "from-address",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "result",
						Usage:    "Signing result JSON, or path to a file containing it",
						Required: true,
					},
				},
				Action: verifyCommand,
			},
		},
	}
}

func chainIDFromContext(c *cli.Context) (config.ChainIdentifier, error) {
	if network := c.String("network"); network != "" {
		return config.GetChainIdentifierForNetwork(config.NetworkName(network))
	}
	return config.ParseChainIdentifier(c.Uint64("chain-id"))
}

func signCommand(c *cli.Context) error {
	l, err := logger.NewLogger(&logger.LoggerConfig{Debug: c.Bool("debug")})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = l.Sync() }()

	chainID, err := chainIDFromContext(c)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	cfg := &config.SignerConfig{
		ChainID:   chainID,
		NonceMode: config.NonceMode(c.String("nonce-mode")),
		Debug:     c.Bool("debug"),
	}
	keys := &config.KeyConfig{
		PrivateKey: c.String("private-key"),
		PublicKey:  c.String("public-key"),
	}
	if err := keys.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	amount, err := withdrawal.ParseAmount(c.String("amount"))
	if err != nil {
		return err
	}

	signer, err := withdrawal.NewSigner(cfg, l)
	if err != nil {
		return fmt.Errorf("failed to create signer: %w", err)
	}

	result, err := signer.SignWithdrawal(amount, c.String("from-address"), keys.PrivateKey, keys.PublicKey)
	if err != nil {
		return fmt.Errorf("failed to sign withdrawal: %w", err)
	}

	l.Info("Signed withdrawal request",
		zap.String("fromAddress", c.String("from-address")),
		zap.String("nonce", result.Nonce),
		zap.Uint8("chainId", uint8(chainID)),
	)
	return writeJSON(c, result)
}

func messageCommand(c *cli.Context) error {
	chainID, err := chainIDFromContext(c)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	amount, err := withdrawal.ParseAmount(c.String("amount"))
	if err != nil {
		return err
	}

	message := withdrawal.BuildCanonicalMessage(amount, c.String("from-address"), c.Int64("timestamp"), c.String("nonce"))
	payload := withdrawal.DomainSeparate(chainID, message)

	return writeJSON(c, map[string]string{
		"message": message,
		"payload": util.BytesToHex(payload),
	})
}

func verifyCommand(c *cli.Context) error {
	chainID, err := chainIDFromContext(c)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	amount, err := withdrawal.ParseAmount(c.String("amount"))
	if err != nil {
		return err
	}

	raw := []byte(c.String("result"))
	if _, statErr := os.Stat(c.String("result")); statErr == nil {
		raw, err = os.ReadFile(c.String("result"))
		if err != nil {
			return fmt.Errorf("failed to read result file: %w", err)
		}
	}

	var result types.SignatureResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return fmt.Errorf("failed to decode result: %w", err)
	}

	req := &types.WithdrawalRequest{Amount: amount, FromAddress: c.String("from-address")}
	if err := verifier.Verify(chainID, &result, req); err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}
	_, _ = fmt.Fprintln(c.App.Writer, "OK")
	return nil
}

func writeJSON(c *cli.Context, v interface{}) error {
	enc := json.NewEncoder(c.App.Writer)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
