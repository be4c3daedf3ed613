package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/glowbooks/glow/internal/cli"
	"github.com/glowbooks/glow/internal/engine"
	"github.com/glowbooks/glow/internal/model"
)

func revenuesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "revenues",
		Short: "Manage revenue entries",
	}

	cmd.AddCommand(addRevenueCmd())
	cmd.AddCommand(listRevenuesCmd())
	cmd.AddCommand(deleteRevenueCmd())

	return cmd
}

func addRevenueCmd() *cobra.Command {
	var (
		description string
		amount      string
		date        string
		method      string
		revType     string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a revenue entry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			parsedAmount, err := parseAmount(amount)
			if err != nil {
				return err
			}
			parsedDate := model.Today()
			if date != "" {
				if parsedDate, err = model.ParseDate(date); err != nil {
					return err
				}
			}

			rev := &model.Revenue{
				ID:          uuid.NewString(),
				Description: description,
				Amount:      parsedAmount,
				Date:        parsedDate,
				Method:      model.PaymentMethod(strings.ToUpper(method)),
				Type:        model.ExpenseType(strings.ToUpper(revType)),
			}
			if err := rev.Validate(); err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.SaveRevenue(ctx, rev); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Recorded revenue %s (%s)", rev.ID, money(rev.Amount))))
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "desc", "", "what the money came from")
	cmd.Flags().StringVar(&amount, "amount", "", "amount received")
	cmd.Flags().StringVar(&date, "date", "", "date YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&method, "method", "PIX", "payment method (PIX, CARD, CASH)")
	cmd.Flags().StringVar(&revType, "type", "PROFESSIONAL", "PROFESSIONAL or PERSONAL")
	_ = cmd.MarkFlagRequired("desc")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func listRevenuesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a month's revenue entries",
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

			monthRevenues := engine.FilterMonth(revenues, month)
			if len(monthRevenues) == 0 {
				fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("No revenue in %s.", month)))
				return nil
			}

			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Revenue for %s", month)))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("Date"),
				cli.HeaderStyle.Render("Description"),
				cli.HeaderStyle.Render("Amount"),
				cli.HeaderStyle.Render("Method"),
				cli.HeaderStyle.Render("ID"))

			for _, r := range monthRevenues {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					r.Date, r.Description, money(r.Amount), r.Method,
					cli.SubtleStyle.Render(r.ID))
			}

			_ = w.Flush()
			total := engine.SumRevenues(monthRevenues)
			fmt.Println(cli.BoldStyle.Render(fmt.Sprintf("Total: %s", money(total))))
			return nil
		},
	}

	addMonthFlag(cmd)
	return cmd
}

func deleteRevenueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a revenue entry",
		Long:  `Delete a revenue entry. Deleting the personal side of a withdrawal pair also reverses the withdrawal and its mirrored expense.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteRevenue(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println(cli.SuccessStyle.Render("Revenue deleted."))
			return nil
		},
	}
}
