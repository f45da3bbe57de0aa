// Command rsademo generates a textbook RSA key pair, encrypts a random number
// below the modulus and checks that decryption recovers it.
//
// Settings come from RSADEMO_* environment variables, optionally seeded from a
// dotenv file:
//
//	RSADEMO_BITS=64 go run ./cmd/rsademo
//	go run ./cmd/rsademo -env demo.env
package main

import (
	"context"
	"crypto/rand"
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/hsiuhsiu/rsademo-go/internal/envconfig"
	"github.com/hsiuhsiu/rsademo-go/pkg/rsademo"
	"github.com/hsiuhsiu/rsademo-go/pkg/rsademo/logging"
)

func main() {
	envFile := flag.String("env", ".env", "optional dotenv file")
	flag.Parse()

	settings, err := envconfig.NewLoader(*envFile).Load()
	if err != nil {
		slog.Error("load settings", "err", err)
		os.Exit(2)
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: settings.LogLevel})
	logger := logging.New(slog.New(handler))

	if err := run(context.Background(), settings, logger); err != nil {
		logger.Error(context.Background(), "demo failed", "err", err)
		os.Exit(1)
	}
}

var errMismatch = errors.New("decrypted value does not match plaintext")

func run(ctx context.Context, settings *envconfig.Settings, logger logging.Logger) error {
	cfg := settings.KeyGenConfig()
	cfg.Logger = logger

	logger.Info(ctx, "generating keys", "bits", settings.Bits)
	kp, err := rsademo.NewKeyGenerator(cfg).Generate(ctx, settings.Bits)
	if err != nil {
		return err
	}
	pub := kp.Public()
	logger.Info(ctx, "public key", "e", pub.E().String(), "n", pub.N().String(), "private", kp.Private())

	plaintext, err := rand.Int(rand.Reader, pub.N())
	if err != nil {
		return err
	}
	ciphertext, err := rsademo.EncryptNumber(plaintext, pub)
	if err != nil {
		return err
	}
	logger.Info(ctx, "encrypted", "ciphertext", ciphertext.String())

	decrypted, err := rsademo.DecryptNumber(ciphertext, kp)
	if err != nil {
		return err
	}
	if decrypted.Cmp(plaintext) != 0 {
		logger.Warn(ctx, "round trip failed", "plaintext", plaintext.String(), "decrypted", decrypted.String())
		return errMismatch
	}

	logger.Info(ctx, "round trip ok", "plaintext", plaintext.String(), "plaintext_bits", plaintext.BitLen(), "modulus_bits", pub.N().BitLen())
	return nil
}
