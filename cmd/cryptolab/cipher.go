package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/joestump/cryptolab/internal/cipher"
	"github.com/joestump/cryptolab/internal/config"
	"github.com/joestump/cryptolab/internal/db"
	"github.com/joestump/cryptolab/internal/history"
	"github.com/joestump/cryptolab/internal/logging"
	"github.com/joestump/cryptolab/internal/store"
)

// cliVisitor owns operations recorded from the command line.
const cliVisitor = "cli"

func newEncryptCmd() *cobra.Command {
	return newTextCipherCmd("encrypt", "Encrypt text with a registered cipher", cipher.TextCipher.Encrypt)
}

func newDecryptCmd() *cobra.Command {
	return newTextCipherCmd("decrypt", "Decrypt text with a registered cipher", cipher.TextCipher.Decrypt)
}

func newTextCipherCmd(action, short string, fn func(cipher.TextCipher, string, string) (string, error)) *cobra.Command {
	var (
		algorithm string
		key       string
		record    bool
	)
	cmd := &cobra.Command{
		Use:   action + " [text]",
		Short: short,
		Long: fmt.Sprintf("%s text with one of: %s.\nThe text is read from stdin when no argument is given.",
			strings.ToUpper(action[:1])+action[1:], strings.Join(cipher.Names(), ", ")),
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := cipher.Lookup(algorithm)
			if err != nil {
				return err
			}
			text, err := inputText(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			start := time.Now()
			out, runErr := fn(c, text, key)
			if record {
				op := store.Operation{
					VisitorID:  cliVisitor,
					Algorithm:  c.Name(),
					Action:     action,
					InputLen:   len(text),
					OutputLen:  len(out),
					DurationUS: time.Since(start).Microseconds(),
				}
				if runErr != nil {
					op.Status = store.StatusError
					op.Error = runErr.Error()
				}
				if err := recordOperation(cmd.Context(), op); err != nil {
					return err
				}
			}
			if runErr != nil {
				return runErr
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "cipher name")
	cmd.Flags().StringVarP(&key, "key", "k", "", "cipher key")
	cmd.Flags().BoolVar(&record, "record", false, "record the operation in the history table; fails if it cannot be stored")
	_ = cmd.MarkFlagRequired("algorithm")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

// inputText joins the positional args, or reads stdin when there are none.
// A single trailing newline from stdin is dropped.
func inputText(stdin io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	text := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}

func recordOperation(ctx context.Context, op store.Operation) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
	if err != nil {
		return err
	}
	defer func() { _ = database.Close() }()
	if err := db.Migrate(database, cfg.DB.Driver); err != nil {
		return err
	}

	return saveOperation(ctx, store.NewOperationStore(database), log, op)
}

// saveOperation writes op and reports a failed insert to the caller, unlike
// the HTTP recorders which only log it.
func saveOperation(ctx context.Context, w history.Writer, log *zap.Logger, op store.Operation) error {
	saved, err := w.Record(ctx, op)
	if err != nil {
		return fmt.Errorf("record operation: %w", err)
	}
	log.Debug("operation recorded",
		zap.String("id", saved.ID),
		zap.String("algorithm", saved.Algorithm),
		zap.String("action", saved.Action))
	return nil
}

func newKeygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "keygen rsa|ecc",
		Short:     "Print a toy key pair as JSON",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"rsa", "ecc"},
		RunE: func(cmd *cobra.Command, args []string) error {
			rng, err := newRand()
			if err != nil {
				return err
			}
			var key any
			switch args[0] {
			case "rsa":
				key = cipher.GenerateRSAKey(rng)
			case "ecc":
				key = cipher.GenerateECCKey(rng)
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(key)
		},
	}
}
