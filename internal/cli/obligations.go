package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/SscSPs/fince/internal/core/domain"
	"github.com/SscSPs/fince/internal/utils"
	"github.com/google/subcommands"
	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
)

func renderObligations(w io.Writer, currency string, obligations []domain.Obligation) {
	table := newTable(w, "ID", "Obligation", "Cost")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
	for _, o := range obligations {
		table.Append([]string{o.ObligationID, o.Name, utils.FormatMoney(o.Cost, currency)})
	}
	table.Render()
}

type obligationCmd struct{}

func (*obligationCmd) Name() string     { return "obligation" }
func (*obligationCmd) Synopsis() string { return "manage recurring obligations" }
func (*obligationCmd) Usage() string {
	return `fince obligation list
fince obligation add <name> <cost>
fince obligation cost <obligation-id> <cost>
fince obligation rename <obligation-id> <name>
fince obligation rm <obligation-id>

  Costs are positive amounts; paying an obligation records them as expenses.
`
}
func (*obligationCmd) SetFlags(*flag.FlagSet) {}

func (p *obligationCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) == 0 {
		args = []string{"list"}
	}
	want := map[string]int{"list": 1, "add": 3, "cost": 3, "rename": 3, "rm": 2}
	if n, ok := want[args[0]]; !ok || len(args) != n {
		fmt.Fprintln(stdout, p.Usage())
		return subcommands.ExitUsageError
	}

	return withSession(ctx, func(s *session) error {
		switch args[0] {
		case "add", "cost":
			cost, err := decimal.NewFromString(args[2])
			if err != nil {
				return usageError("invalid cost %q", args[2])
			}
			if args[0] == "add" {
				_, err = s.ledger.CreateObligation(s.ctx, args[1], cost)
			} else {
				_, err = s.ledger.UpdateObligation(s.ctx, args[1], nil, &cost)
			}
			if err != nil {
				return err
			}
		case "rename":
			if _, err := s.ledger.UpdateObligation(s.ctx, args[1], &args[2], nil); err != nil {
				return err
			}
		case "rm":
			if err := s.ledger.RemoveObligation(s.ctx, args[1]); err != nil {
				return err
			}
		}
		renderObligations(stdout, s.currency, s.ledger.Summary(s.ctx).Obligations)
		return nil
	})
}

type payCmd struct{}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "record a payment of recurring obligations" }
func (*payCmd) Usage() string {
	return `fince pay <obligation-id...>

  Records one payment of each obligation as an expense dated today.
`
}
func (*payCmd) SetFlags(*flag.FlagSet) {}

func (p *payCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(stdout, p.Usage())
		return subcommands.ExitUsageError
	}
	return withSession(ctx, func(s *session) error {
		var paid []domain.Transaction
		for _, id := range f.Args() {
			txn, err := s.ledger.PayObligation(s.ctx, id)
			if err != nil {
				return err
			}
			paid = append(paid, *txn)
		}
		renderTransactions(stdout, s.currency, paid)
		return nil
	})
}
