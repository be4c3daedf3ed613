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

func distributionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "distribution",
		Short: "Split the month's revenue into budget buckets",
		Long: `Apply the smart distribution to the month's studio revenue: fixed costs,
variable costs, profit reserve, investments and pro-labore. The profit
bucket is the balance available for a PROFIT withdrawal.`,
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
			config, err := store.GetDistributionConfig(ctx)
			if err != nil {
				return err
			}

			monthRevenues := engine.RevenuesOfType(engine.FilterMonth(revenues, month), model.TypeProfessional)
			total := engine.SumRevenues(monthRevenues)
			allocations := engine.Distribute(total, config)

			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Smart distribution for %s (revenue %s)", month, money(total))))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("Bucket"),
				cli.HeaderStyle.Render("Percent"),
				cli.HeaderStyle.Render("Amount"),
				cli.HeaderStyle.Render("Covers"))

			for _, bucket := range engine.BucketOrder {
				a := allocations[bucket]
				fmt.Fprintf(w, "%s\t%s%%\t%s\t%s\n",
					a.Label, a.Percent, money(a.Amount), cli.SubtleStyle.Render(a.Items))
			}

			_ = w.Flush()
			profit := allocations[engine.BucketProfit]
			fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("Profit reserve available for withdrawal: %s", money(profit.Amount))))
			return nil
		},
	}

	addMonthFlag(cmd)
	return cmd
}
