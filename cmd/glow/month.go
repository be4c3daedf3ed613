package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/glowbooks/glow/internal/cli"
	"github.com/glowbooks/glow/internal/engine"
	"github.com/glowbooks/glow/internal/model"
)

func monthCmd() *cobra.Command {
	var byCategory bool

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Show the month's studio summary",
		Long:  `Display the month's studio revenue, expenses, net profit, margin and health status.`,
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

			transactions, err := store.ListTransactions(ctx)
			if err != nil {
				return err
			}
			revenues, err := store.ListRevenues(ctx)
			if err != nil {
				return err
			}

			lines := engine.ExpandMonth(transactions, month)
			monthRevenues := engine.FilterMonth(revenues, month)
			summary := engine.SummarizeMonth(lines, monthRevenues)

			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Studio summary for %s", month)))
			fmt.Printf("Revenue:  %s\n", money(summary.Revenue))
			fmt.Printf("Expenses: %s\n", money(summary.Expense))
			fmt.Printf("Net:      %s\n", cli.BoldStyle.Render(money(summary.Net)))
			fmt.Printf("Margin:   %s%%\n", summary.Margin.StringFixed(1))
			fmt.Printf("Health:   %s\n", healthStyle(summary.Health).Render(summary.Health.Label))

			if byCategory {
				fmt.Println()
				fmt.Println(cli.TitleStyle.Render("By sub-category"))
				printSubCategoryTotals(engine.GroupBySubCategory(lines))
			}
			return nil
		},
	}

	addMonthFlag(cmd)
	cmd.Flags().BoolVar(&byCategory, "by-category", false, "also show totals per sub-category")

	return cmd
}

func healthStyle(h engine.HealthStatus) lipgloss.Style {
	switch h.Tier {
	case engine.HealthExcellent, engine.HealthHealthy:
		return cli.SuccessStyle
	case engine.HealthCaution:
		return cli.WarningStyle
	case engine.HealthLoss, engine.HealthCritical:
		return cli.ErrorStyle
	default:
		return cli.SubtleStyle
	}
}

func printSubCategoryTotals(totals map[model.SubCategory]decimal.Decimal) {
	tags := make([]model.SubCategory, 0, len(totals))
	for tag := range totals {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() { _ = w.Flush() }()
	for _, tag := range tags {
		fmt.Fprintf(w, "%s\t%s\n", tag, money(totals[tag]))
	}
}
