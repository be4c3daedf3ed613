package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/glowbooks/glow/internal/cli"
	"github.com/glowbooks/glow/internal/engine"
	"github.com/glowbooks/glow/internal/model"
)

func forecastCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Forecast pro-labore withdrawals for a month",
		Long: `Suggest pro-labore withdrawal dates and amounts for the month, based on the
revenue earned so far, the configured payout cadence, and what has already
been withdrawn this month.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			month, err := monthFromFlags(cmd)
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			revenues, err := store.ListRevenues(ctx)
			if err != nil {
				return err
			}
			withdrawals, err := store.ListWithdrawals(ctx)
			if err != nil {
				return err
			}
			settings, err := store.GetProLaboreSettings(ctx)
			if err != nil {
				return err
			}
			distribution, err := store.GetDistributionConfig(ctx)
			if err != nil {
				return err
			}

			monthRevenues := engine.RevenuesOfType(engine.FilterMonth(revenues, month), model.TypeProfessional)

			// The depletion ceiling is a monthly constraint: only this
			// month's withdrawals count against it.
			monthWithdrawals := make([]model.Withdrawal, 0, len(withdrawals))
			for _, w := range withdrawals {
				if month.Contains(model.DateOf(w.Date)) {
					monthWithdrawals = append(monthWithdrawals, w)
				}
			}

			suggestions := engine.ForecastProLabore(
				month,
				settings.Frequency,
				monthRevenues,
				monthWithdrawals,
				distribution.Effective().ProLabore,
				settings.Mode,
				settings.FixedValue,
				settings.StartDate,
			)

			if len(suggestions) == 0 {
				fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("Nothing to suggest for %s.", month)))
				return nil
			}

			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Pro-labore forecast for %s (%s)", month, settings.Frequency)))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\n",
				cli.HeaderStyle.Render("Date"),
				cli.HeaderStyle.Render("Suggested amount"))
			for _, s := range suggestions {
				fmt.Fprintf(w, "%s\t%s\n", s.Date, money(s.Amount))
			}
			return nil
		},
	}

	addMonthFlag(cmd)
	return cmd
}
