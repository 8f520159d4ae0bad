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

func renderGoals(w io.Writer, currency string, goals []domain.GoalStatus) {
	table := newTable(w, "ID", "Goal", "Target", "Progress", "Status")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT,
	})
	for _, g := range goals {
		status := "open"
		if g.Completed {
			status = "completed"
		}
		table.Append([]string{g.GoalID, g.Name, utils.FormatMoney(g.Target, currency), utils.FormatPercent(g.Progress), status})
	}
	table.Render()
}

type goalCmd struct{}

func (*goalCmd) Name() string     { return "goal" }
func (*goalCmd) Synopsis() string { return "manage savings goals" }
func (*goalCmd) Usage() string {
	return `fince goal list
fince goal add <name> <target>
fince goal complete <goal-id>
fince goal revert <goal-id>
fince goal rm <goal-id>

  Completing a goal records an expense of its target and requires the
  current balance to cover it. Reverting removes that expense.
`
}
func (*goalCmd) SetFlags(*flag.FlagSet) {}

func (p *goalCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) == 0 {
		args = []string{"list"}
	}
	want := map[string]int{"list": 1, "add": 3, "complete": 2, "revert": 2, "rm": 2}
	if n, ok := want[args[0]]; !ok || len(args) != n {
		fmt.Fprintln(stdout, p.Usage())
		return subcommands.ExitUsageError
	}

	return withSession(ctx, func(s *session) error {
		switch args[0] {
		case "add":
			target, err := decimal.NewFromString(args[2])
			if err != nil {
				return usageError("invalid target %q", args[2])
			}
			if _, err := s.ledger.CreateGoal(s.ctx, args[1], target); err != nil {
				return err
			}
		case "complete":
			_, txn, err := s.ledger.CompleteGoal(s.ctx, args[1])
			if err != nil {
				return err
			}
			renderTransactions(stdout, s.currency, []domain.Transaction{*txn})
			fmt.Fprintln(stdout)
		case "revert":
			if _, err := s.ledger.RevertGoal(s.ctx, args[1]); err != nil {
				return err
			}
		case "rm":
			if err := s.ledger.DeleteGoal(s.ctx, args[1]); err != nil {
				return err
			}
		}
		renderGoals(stdout, s.currency, s.ledger.Summary(s.ctx).Goals)
		return nil
	})
}
