// Package cli implements the fince command line client.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/SscSPs/fince/internal/adapters/ai/gemini"
	"github.com/SscSPs/fince/internal/adapters/database"
	"github.com/SscSPs/fince/internal/apperrors"
	portssvc "github.com/SscSPs/fince/internal/core/ports/services"
	"github.com/SscSPs/fince/internal/core/services"
	"github.com/SscSPs/fince/internal/middleware"
	"github.com/SscSPs/fince/internal/platform/config"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&balanceCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")
	c.Register(&groupsCmd{}, "reports")
	c.Register(&adviceCmd{}, "reports")

	c.Register(&addCmd{}, "transactions")
	c.Register(&extractCmd{}, "transactions")
	c.Register(&removeCmd{}, "transactions")

	c.Register(&goalCmd{}, "goals")

	c.Register(&obligationCmd{}, "obligations")
	c.Register(&payCmd{}, "obligations")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerID = flag.String("ledger", "default", "Ledger to operate on")

var stdout io.Writer = os.Stdout

// session is an opened ledger plus what is needed to display it.
type session struct {
	ctx      context.Context
	ledger   portssvc.LedgerSvcFacade
	currency string
	close    func()
}

// openSession is replaced in tests.
var openSession = openConfiguredSession

// openConfiguredSession opens the ledger selected by -ledger on the configured storage backend.
func openConfiguredSession(ctx context.Context) (*session, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	ctx = middleware.WithLogger(ctx, logger)

	repos, err := database.NewRepositoryProvider(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	generator, err := gemini.NewClientGenerator(ctx, cfg.GeminiAPIKey)
	if err != nil {
		_ = repos.Close(ctx)
		return nil, err
	}

	registry := services.NewLedgerRegistry(
		repos.SnapshotRepo,
		gemini.NewExtractor(generator, cfg.ExtractionModel),
		gemini.NewAdvisor(generator, cfg.AdviceModel),
		services.WithUndatedGroupLabel(cfg.UndatedGroupLabel),
		services.WithDefaultLanguage(cfg.DefaultLanguage),
	)
	ledger, err := registry.Open(ctx, *ledgerID)
	if err != nil {
		_ = repos.Close(ctx)
		return nil, err
	}

	return &session{
		ctx:      ctx,
		ledger:   ledger,
		currency: cfg.Currency,
		close: func() {
			registry.Close(ledger.LedgerID())
			if err := repos.Close(ctx); err != nil {
				logger.Error("Error closing storage", slog.String("error", err.Error()))
			}
		},
	}, nil
}

// withSession opens the ledger, runs fn and reports its error.
func withSession(ctx context.Context, fn func(s *session) error) subcommands.ExitStatus {
	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error opening ledger:", err)
		return subcommands.ExitFailure
	}
	defer s.close()

	if err := fn(s); err != nil {
		fmt.Fprintln(os.Stderr, describe(err))
		if errors.Is(err, errUsage) {
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

var errUsage = errors.New("usage")

func usageError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errUsage, fmt.Sprintf(format, args...))
}

// describe turns service errors into a message for the terminal.
func describe(err error) string {
	var insufficient *apperrors.InsufficientFundsError
	switch {
	case errors.As(err, &insufficient):
		return fmt.Sprintf("Not enough funds: missing %s", insufficient.Shortfall.String())
	case errors.Is(err, apperrors.ErrNotFound):
		return "Not found: " + err.Error()
	default:
		return "Error: " + err.Error()
	}
}
