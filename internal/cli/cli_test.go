package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/fince/internal/adapters/database/memory"
	"github.com/SscSPs/fince/internal/core/domain"
	"github.com/SscSPs/fince/internal/core/services"
	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubExtractor struct {
	drafts []domain.TransactionDraft
}

func (s stubExtractor) Extract(context.Context, string, domain.Language) []domain.TransactionDraft {
	return s.drafts
}

type stubAdvisor struct{}

func (stubAdvisor) Advise(_ context.Context, req domain.AdviceRequest) string {
	return fmt.Sprintf("%s in %s with %d transactions", req.Topic, req.Language, len(req.Recent))
}

// setupCLI points the commands at an in-memory ledger and captures their output.
// The registry is shared across runs so state persists between commands.
func setupCLI(t *testing.T, drafts ...domain.TransactionDraft) *bytes.Buffer {
	t.Helper()
	n := 0
	registry := services.NewLedgerRegistry(
		memory.NewSnapshotRepository(),
		stubExtractor{drafts: drafts},
		stubAdvisor{},
		services.WithClock(func() time.Time { return time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC) }),
		services.WithIDGenerator(func() string { n++; return fmt.Sprintf("id%d", n) }),
		services.WithDefaultLanguage("en"),
	)

	out := &bytes.Buffer{}
	prevOpen, prevOut := openSession, stdout
	openSession = func(ctx context.Context) (*session, error) {
		ledger, err := registry.Open(ctx, "test")
		if err != nil {
			return nil, err
		}
		return &session{ctx: ctx, ledger: ledger, currency: "USD", close: func() {}}, nil
	}
	stdout = out
	t.Cleanup(func() { openSession, stdout = prevOpen, prevOut })
	return out
}

func run(t *testing.T, args ...string) subcommands.ExitStatus {
	t.Helper()
	fs := flag.NewFlagSet("fince", flag.ContinueOnError)
	commander := subcommands.NewCommander(fs, "fince")
	Register(commander)
	require.NoError(t, fs.Parse(args))
	return commander.Execute(context.Background())
}

func TestBalanceAndAdd(t *testing.T) {
	out := setupCLI(t)

	require.Equal(t, subcommands.ExitSuccess, run(t, "balance", "-set", "1000"))
	require.Equal(t, subcommands.ExitSuccess, run(t, "add", "-label", "Groceries", "-category", "food", "-amount", "-20"))
	assert.Contains(t, out.String(), "-$20.00")
	assert.Contains(t, out.String(), "5/3/2024")

	out.Reset()
	require.Equal(t, subcommands.ExitSuccess, run(t, "balance"))
	assert.Contains(t, out.String(), "$1,000.00")
	assert.Contains(t, out.String(), "$980.00")
}

func TestAdd_InvalidAmountFails(t *testing.T) {
	out := setupCLI(t)

	assert.Equal(t, subcommands.ExitFailure, run(t, "add", "-label", "Coffee", "-amount", "abc"))
	require.Equal(t, subcommands.ExitSuccess, run(t, "history"))
	assert.NotContains(t, out.String(), "Coffee")
}

func TestAdd_MissingFlags(t *testing.T) {
	setupCLI(t)

	assert.Equal(t, subcommands.ExitUsageError, run(t, "add", "-label", "Coffee"))
}

func TestGoalLifecycle(t *testing.T) {
	out := setupCLI(t)

	require.Equal(t, subcommands.ExitSuccess, run(t, "add", "-label", "Salary", "-amount", "100"))
	require.Equal(t, subcommands.ExitSuccess, run(t, "goal", "add", "Bike", "250"))
	assert.Contains(t, out.String(), "40%")

	// id1 is the salary transaction, id2 the goal
	assert.Equal(t, subcommands.ExitFailure, run(t, "goal", "complete", "id2"))

	require.Equal(t, subcommands.ExitSuccess, run(t, "add", "-label", "Bonus", "-amount", "150"))
	out.Reset()
	require.Equal(t, subcommands.ExitSuccess, run(t, "goal", "complete", "id2"))
	assert.Contains(t, out.String(), "Goal reached: Bike")
	assert.Contains(t, out.String(), "completed")

	require.Equal(t, subcommands.ExitSuccess, run(t, "goal", "revert", "id2"))
	out.Reset()
	require.Equal(t, subcommands.ExitSuccess, run(t, "balance"))
	assert.Contains(t, out.String(), "$250.00")
	assert.Contains(t, out.String(), "open")
}

func TestGoal_UnknownAction(t *testing.T) {
	setupCLI(t)

	assert.Equal(t, subcommands.ExitUsageError, run(t, "goal", "explode", "x"))
	assert.Equal(t, subcommands.ExitUsageError, run(t, "goal", "add", "Bike", "lots"))
}

func TestObligationAndPay(t *testing.T) {
	out := setupCLI(t)

	require.Equal(t, subcommands.ExitSuccess, run(t, "balance", "-set", "100"))
	require.Equal(t, subcommands.ExitSuccess, run(t, "obligation", "add", "Netflix", "12.99"))
	assert.Contains(t, out.String(), "$12.99")

	out.Reset()
	require.Equal(t, subcommands.ExitSuccess, run(t, "pay", "id1"))
	assert.Contains(t, out.String(), "Payment: Netflix")
	assert.Contains(t, out.String(), "-$12.99")

	assert.Equal(t, subcommands.ExitFailure, run(t, "pay", "missing"))
	assert.Equal(t, subcommands.ExitFailure, run(t, "obligation", "cost", "id1", "0"))

	out.Reset()
	require.Equal(t, subcommands.ExitSuccess, run(t, "balance"))
	assert.Contains(t, out.String(), "$87.01")
}

func TestExtractAndGroups(t *testing.T) {
	out := setupCLI(t,
		domain.TransactionDraft{Label: "Lunch", Category: "food", Amount: json.Number("-12")},
		domain.TransactionDraft{Label: "Refund", Category: "other", Amount: json.Number("30")},
	)

	require.Equal(t, subcommands.ExitSuccess, run(t, "extract", "lunch", "and", "a", "refund"))
	assert.Contains(t, out.String(), "Lunch")
	assert.Contains(t, out.String(), "+$30.00")

	out.Reset()
	require.Equal(t, subcommands.ExitSuccess, run(t, "groups"))
	assert.Contains(t, out.String(), "== 5/3/2024 ==")

	assert.Equal(t, subcommands.ExitUsageError, run(t, "extract"))
}

func TestExtract_NothingFound(t *testing.T) {
	out := setupCLI(t)

	require.Equal(t, subcommands.ExitSuccess, run(t, "extract", "hello"))
	assert.Contains(t, out.String(), "No transactions found.")
}

func TestAdvice(t *testing.T) {
	out := setupCLI(t)

	require.Equal(t, subcommands.ExitSuccess, run(t, "advice", "-lang", "de", "saving", "money"))
	assert.Contains(t, out.String(), "saving money in de with 0 transactions")
}

func TestRemoveTransaction(t *testing.T) {
	out := setupCLI(t)

	require.Equal(t, subcommands.ExitSuccess, run(t, "add", "-label", "Typo", "-amount", "5"))
	require.Equal(t, subcommands.ExitSuccess, run(t, "rm", "id1", "unknown"))
	out.Reset()
	require.Equal(t, subcommands.ExitSuccess, run(t, "history"))
	assert.NotContains(t, out.String(), "Typo")
}
