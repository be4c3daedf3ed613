package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/glowbooks/glow/internal/cli"
	"github.com/glowbooks/glow/internal/model"
)

func withdrawalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdrawals",
		Short: "Manage pro-labore and profit withdrawals",
		Long: `Record, list and reverse withdrawals. Recording a withdrawal also books a
studio expense and a personal revenue for the same amount; reversing it
removes all three records.`,
	}

	cmd.AddCommand(addWithdrawalCmd())
	cmd.AddCommand(listWithdrawalsCmd())
	cmd.AddCommand(deleteWithdrawalCmd())

	return cmd
}

func addWithdrawalCmd() *cobra.Command {
	var (
		amount      string
		kind        string
		description string
		date        string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a withdrawal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			parsedAmount, err := parseAmount(amount)
			if err != nil {
				return err
			}
			when := time.Now()
			if date != "" {
				parsed, err := model.ParseDate(date)
				if err != nil {
					return err
				}
				when = time.Date(parsed.Year, parsed.Month, parsed.Day, 0, 0, 0, 0, time.UTC)
			}

			w := &model.Withdrawal{
				ID:          uuid.NewString(),
				Amount:      parsedAmount,
				Date:        when,
				Kind:        model.WithdrawalKind(strings.ToUpper(kind)),
				Description: description,
			}
			if err := w.Validate(); err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.RecordWithdrawal(ctx, w); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Recorded %s withdrawal of %s", w.Kind, money(w.Amount))))
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "amount to withdraw")
	cmd.Flags().StringVar(&kind, "kind", "PRO_LABORE", "PRO_LABORE or PROFIT")
	cmd.Flags().StringVar(&description, "desc", "", "optional description")
	cmd.Flags().StringVar(&date, "date", "", "date YYYY-MM-DD (default: now)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func listWithdrawalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all withdrawals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			withdrawals, err := store.ListWithdrawals(ctx)
			if err != nil {
				return err
			}
			if len(withdrawals) == 0 {
				fmt.Println(cli.InfoStyle.Render("No withdrawals recorded."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("Date"),
				cli.HeaderStyle.Render("Kind"),
				cli.HeaderStyle.Render("Amount"),
				cli.HeaderStyle.Render("Description"),
				cli.HeaderStyle.Render("ID"))

			for _, wd := range withdrawals {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					wd.Date.Format("2006-01-02"), wd.Kind, money(wd.Amount),
					wd.DefaultDescription(), cli.SubtleStyle.Render(wd.ID))
			}
			return nil
		},
	}
}

func deleteWithdrawalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Reverse a withdrawal",
		Long:  `Reverse a withdrawal, removing it together with its paired expense and revenue records.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteWithdrawal(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println(cli.SuccessStyle.Render("Withdrawal reversed."))
			return nil
		},
	}
}
