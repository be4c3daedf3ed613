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

func expensesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expenses",
		Short: "Manage expense transactions",
		Long:  `Record, list and delete expense transactions. Listing shows the month's expense lines with installments expanded.`,
	}

	cmd.AddCommand(addExpenseCmd())
	cmd.AddCommand(listExpensesCmd())
	cmd.AddCommand(deleteExpenseCmd())

	return cmd
}

func addExpenseCmd() *cobra.Command {
	var (
		description  string
		amount       string
		date         string
		expenseType  string
		category     string
		subCategory  string
		channel      string
		customName   string
		installments int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an expense transaction",
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

			txn := &model.Transaction{
				ID:            uuid.NewString(),
				Description:   description,
				Amount:        parsedAmount,
				Date:          parsedDate,
				Type:          model.ExpenseType(strings.ToUpper(expenseType)),
				Category:      model.Category(strings.ToUpper(category)),
				SubCategory:   model.SubCategory(strings.ToUpper(subCategory)),
				Channel:       model.Channel(strings.ToUpper(channel)),
				CustomChannel: customName,
				Installments:  installments,
			}
			if err := txn.Validate(); err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.SaveTransaction(ctx, txn); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Recorded expense %s (%s)", txn.ID, money(txn.Amount))))
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "desc", "", "what the money was spent on")
	cmd.Flags().StringVar(&amount, "amount", "", "amount (full monthly amount for FIXED, total for VARIABLE)")
	cmd.Flags().StringVar(&date, "date", "", "purchase date YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&expenseType, "type", "PROFESSIONAL", "PROFESSIONAL or PERSONAL")
	cmd.Flags().StringVar(&category, "category", "VARIABLE", "FIXED or VARIABLE")
	cmd.Flags().StringVar(&subCategory, "sub", "OTHER", "sub-category tag")
	cmd.Flags().StringVar(&channel, "channel", "CASH", "payment channel (NUBANK, BRADESCO, CASH, OTHER)")
	cmd.Flags().StringVar(&customName, "channel-name", "", "channel name when --channel=OTHER")
	cmd.Flags().IntVar(&installments, "installments", 1, "number of monthly installments")
	_ = cmd.MarkFlagRequired("desc")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func listExpensesCmd() *cobra.Command {
	var typeFilter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a month's expense lines",
		Long:  `Display the month's expense lines with installment purchases expanded into their per-month slices.`,
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

			lines := engine.ExpandMonth(transactions, month)
			if typeFilter != "" {
				filtered := lines[:0:0]
				for _, l := range lines {
					if l.Type == model.ExpenseType(strings.ToUpper(typeFilter)) {
						filtered = append(filtered, l)
					}
				}
				lines = filtered
			}

			if len(lines) == 0 {
				fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("No expenses in %s.", month)))
				return nil
			}

			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Expenses for %s", month)))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("Date"),
				cli.HeaderStyle.Render("Description"),
				cli.HeaderStyle.Render("Amount"),
				cli.HeaderStyle.Render("Installment"),
				cli.HeaderStyle.Render("Tag"),
				cli.HeaderStyle.Render("ID"))

			for _, l := range lines {
				installment := "-"
				if l.TotalInstallments > 1 {
					installment = fmt.Sprintf("%d/%d", l.CurrentInstallment, l.TotalInstallments)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					l.Date, l.Description, money(l.Amount), installment,
					l.SubCategory, cli.SubtleStyle.Render(l.TransactionID))
			}
			return nil
		},
	}

	addMonthFlag(cmd)
	cmd.Flags().StringVar(&typeFilter, "type", "", "filter by PROFESSIONAL or PERSONAL")

	return cmd
}

func deleteExpenseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an expense transaction",
		Long:  `Delete an expense transaction. Deleting the expense side of a withdrawal pair also reverses the withdrawal and its mirrored revenue.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteTransaction(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println(cli.SuccessStyle.Render("Expense deleted."))
			return nil
		},
	}
}
