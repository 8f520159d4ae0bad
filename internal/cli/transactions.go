package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"strings"

	"github.com/SscSPs/fince/internal/core/domain"
	"github.com/google/subcommands"
)

type addCmd struct {
	label    string
	category string
	amount   string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a transaction" }
func (*addCmd) Usage() string {
	return `fince add -label <label> -amount <amount> [-category <category>]

  Adds a transaction dated today. Use a negative amount for an expense.
`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.label, "label", "", "Transaction label.")
	f.StringVar(&p.category, "category", "", "Transaction category.")
	f.StringVar(&p.amount, "amount", "", "Signed amount, negative for expenses.")
}

func (p *addCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if strings.TrimSpace(p.label) == "" || strings.TrimSpace(p.amount) == "" {
		fmt.Fprintln(stdout, p.Usage())
		return subcommands.ExitUsageError
	}
	return withSession(ctx, func(s *session) error {
		added, err := s.ledger.AddDrafts(s.ctx, []domain.TransactionDraft{{
			Label:    p.label,
			Category: p.category,
			Amount:   json.Number(strings.TrimSpace(p.amount)),
		}})
		if err != nil {
			return err
		}
		renderTransactions(stdout, s.currency, added)
		return nil
	})
}

type extractCmd struct {
	language string
}

func (*extractCmd) Name() string     { return "extract" }
func (*extractCmd) Synopsis() string { return "add transactions described in free text" }
func (*extractCmd) Usage() string {
	return `fince extract [-lang <code>] <text...>

  Sends the text to the extraction model and adds every transaction it finds.
  Nothing is added when the model is unavailable or its reply cannot be read.
`
}

func (p *extractCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.language, "lang", "", "Language of the text (es, en, de, zh). Defaults to DEFAULT_LANGUAGE.")
}

func (p *extractCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	text := strings.TrimSpace(strings.Join(f.Args(), " "))
	if text == "" {
		fmt.Fprintln(stdout, p.Usage())
		return subcommands.ExitUsageError
	}
	return withSession(ctx, func(s *session) error {
		added, err := s.ledger.ExtractAndAdd(s.ctx, text, p.language)
		if err != nil {
			return err
		}
		if len(added) == 0 {
			fmt.Fprintln(stdout, "No transactions found.")
			return nil
		}
		renderTransactions(stdout, s.currency, added)
		return nil
	})
}

type removeCmd struct{}

func (*removeCmd) Name() string     { return "rm" }
func (*removeCmd) Synopsis() string { return "remove transactions by id" }
func (*removeCmd) Usage() string {
	return `fince rm <transaction-id...>

  Removes the transactions. Unknown ids are ignored. Removing the transaction
  of a completed goal reopens the goal.
`
}
func (*removeCmd) SetFlags(*flag.FlagSet) {}

func (p *removeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(stdout, p.Usage())
		return subcommands.ExitUsageError
	}
	return withSession(ctx, func(s *session) error {
		for _, id := range f.Args() {
			if err := s.ledger.RemoveTransaction(s.ctx, id); err != nil {
				return err
			}
		}
		return nil
	})
}
