package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/SscSPs/fince/internal/core/domain"
	"github.com/SscSPs/fince/internal/utils"
	"github.com/google/subcommands"
	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
)

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	return table
}

func renderTransactions(w io.Writer, currency string, transactions []domain.Transaction) {
	table := newTable(w, "ID", "Date", "Label", "Category", "Amount")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT,
	})
	for _, t := range transactions {
		table.Append([]string{t.TransactionID, t.OccurredOn.Label(), t.Label, t.Category, utils.FormatSignedMoney(t.Amount, currency)})
	}
	table.Render()
}

type balanceCmd struct {
	set string
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "show balances, goals and obligations" }
func (*balanceCmd) Usage() string {
	return `fince balance [-set <amount>]

  Shows the initial and current balance, the savings goals with their progress
  and the recurring obligations. With -set, replaces the initial balance first.
`
}

func (p *balanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.set, "set", "", "New initial balance.")
}

func (p *balanceCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withSession(ctx, func(s *session) error {
		if p.set != "" {
			amount, err := decimal.NewFromString(strings.TrimSpace(p.set))
			if err != nil {
				return usageError("invalid amount %q", p.set)
			}
			if err := s.ledger.SetInitialBalance(s.ctx, amount); err != nil {
				return err
			}
		}

		summary := s.ledger.Summary(s.ctx)
		table := newTable(stdout, "", "Amount")
		table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
		table.Append([]string{"Initial balance", utils.FormatMoney(summary.InitialBalance, s.currency)})
		table.Append([]string{"Current balance", utils.FormatMoney(summary.CurrentBalance, s.currency)})
		table.Append([]string{"Obligations", utils.FormatMoney(summary.ObligationCost, s.currency)})
		table.Render()

		if len(summary.Goals) > 0 {
			fmt.Fprintln(stdout)
			renderGoals(stdout, s.currency, summary.Goals)
		}
		if len(summary.Obligations) > 0 {
			fmt.Fprintln(stdout)
			renderObligations(stdout, s.currency, summary.Obligations)
		}
		return nil
	})
}

type historyCmd struct{}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "show the running balance" }
func (*historyCmd) Usage() string {
	return `fince history

  Shows the balance after each transaction, ordered by date and starting
  from the initial balance.
`
}
func (*historyCmd) SetFlags(*flag.FlagSet) {}

func (*historyCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withSession(ctx, func(s *session) error {
		table := newTable(stdout, "Date", "Label", "Balance")
		table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
		for _, p := range s.ledger.History(s.ctx) {
			table.Append([]string{p.OccurredOn.Label(), p.Label, utils.FormatMoney(p.Balance, s.currency)})
		}
		table.Render()
		return nil
	})
}

type groupsCmd struct{}

func (*groupsCmd) Name() string     { return "groups" }
func (*groupsCmd) Synopsis() string { return "list transactions grouped by date" }
func (*groupsCmd) Usage() string {
	return `fince groups

  Lists transactions grouped by date, newest first. Transactions without a
  date are listed last.
`
}
func (*groupsCmd) SetFlags(*flag.FlagSet) {}

func (*groupsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withSession(ctx, func(s *session) error {
		for i, g := range s.ledger.GroupByDate(s.ctx) {
			if i > 0 {
				fmt.Fprintln(stdout)
			}
			fmt.Fprintf(stdout, "== %s ==\n", g.Label)
			renderTransactions(stdout, s.currency, g.Transactions)
		}
		return nil
	})
}

type adviceCmd struct {
	language string
}

func (*adviceCmd) Name() string     { return "advice" }
func (*adviceCmd) Synopsis() string { return "ask for financial advice on a topic" }
func (*adviceCmd) Usage() string {
	return `fince advice [-lang <code>] <topic...>

  Asks the advisor about the topic, using the current balance and the most
  recent transactions.
`
}

func (p *adviceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.language, "lang", "", "Answer language (es, en, de, zh). Defaults to DEFAULT_LANGUAGE.")
}

func (p *adviceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topic := strings.TrimSpace(strings.Join(f.Args(), " "))
	if topic == "" {
		fmt.Fprintln(stdout, p.Usage())
		return subcommands.ExitUsageError
	}
	return withSession(ctx, func(s *session) error {
		fmt.Fprintln(stdout, s.ledger.Advice(s.ctx, topic, p.language))
		return nil
	})
}
