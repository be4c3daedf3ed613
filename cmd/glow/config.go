package main

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/glowbooks/glow/internal/cli"
	"github.com/glowbooks/glow/internal/model"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "View and change payout and distribution settings",
	}

	cmd.AddCommand(showConfigCmd())
	cmd.AddCommand(setConfigCmd())

	return cmd
}

func showConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			settings, err := store.GetProLaboreSettings(ctx)
			if err != nil {
				return err
			}
			distribution, err := store.GetDistributionConfig(ctx)
			if err != nil {
				return err
			}

			fmt.Println(cli.TitleStyle.Render("Pro-labore"))
			fmt.Printf("Frequency:    %s\n", settings.Frequency)
			fmt.Printf("Mode:         %s\n", settings.Mode)
			if settings.Mode == model.ModeFixed {
				fmt.Printf("Fixed value:  %s\n", money(settings.FixedValue))
			}
			if !settings.StartDate.IsZero() {
				fmt.Printf("Start date:   %s\n", settings.StartDate)
			}
			fmt.Printf("Profit cycle: every %d month(s)\n", settings.Cycle)

			fmt.Println()
			fmt.Println(cli.TitleStyle.Render("Distribution"))
			source := "defaults"
			if distribution.IsCustom {
				source = "custom"
			}
			effective := distribution.Effective()
			fmt.Printf("Percentages (%s): fixed %s, variable %s, profit %s, investment %s, pro-labore %s\n",
				source, effective.Fixed, effective.Variable, effective.Profit,
				effective.Investment, effective.ProLabore)
			return nil
		},
	}
}

func setConfigCmd() *cobra.Command {
	var (
		frequency   string
		mode        string
		fixedValue  string
		startDate   string
		profitCycle int

		distCustom     bool
		distFixed      string
		distVariable   string
		distProfit     string
		distInvestment string
		distProLabore  string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change payout or distribution settings",
		Long: `Change any of the payout settings or the distribution percentages. The five
distribution percentages are independent; they are not forced to sum to 100.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			settings, err := store.GetProLaboreSettings(ctx)
			if err != nil {
				return err
			}
			distribution, err := store.GetDistributionConfig(ctx)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("frequency") {
				settings.Frequency = model.Frequency(strings.ToUpper(frequency))
			}
			if cmd.Flags().Changed("mode") {
				settings.Mode = model.PayoutMode(strings.ToUpper(mode))
			}
			if cmd.Flags().Changed("fixed-value") {
				if settings.FixedValue, err = parseAmount(fixedValue); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("start-date") {
				if settings.StartDate, err = model.ParseDate(startDate); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("profit-cycle") {
				settings.Cycle = model.ProfitCycle(profitCycle)
			}

			if cmd.Flags().Changed("custom") {
				distribution.IsCustom = distCustom
			}
			for _, p := range []struct {
				flag string
				raw  string
				dst  *decimal.Decimal
			}{
				{"dist-fixed", distFixed, &distribution.Fixed},
				{"dist-variable", distVariable, &distribution.Variable},
				{"dist-profit", distProfit, &distribution.Profit},
				{"dist-investment", distInvestment, &distribution.Investment},
				{"dist-pro-labore", distProLabore, &distribution.ProLabore},
			} {
				if cmd.Flags().Changed(p.flag) {
					if *p.dst, err = parseAmount(p.raw); err != nil {
						return err
					}
				}
			}

			if err := store.SaveProLaboreSettings(ctx, settings); err != nil {
				return err
			}
			if err := store.SaveDistributionConfig(ctx, distribution); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render("Settings updated."))
			return nil
		},
	}

	cmd.Flags().StringVar(&frequency, "frequency", "", "payout cadence (DAILY, WEEKLY, 15_DAYS, 20_DAYS, MONTHLY)")
	cmd.Flags().StringVar(&mode, "mode", "", "payout mode (PERCENT or FIXED)")
	cmd.Flags().StringVar(&fixedValue, "fixed-value", "", "monthly pro-labore value in FIXED mode")
	cmd.Flags().StringVar(&startDate, "start-date", "", "earliest payout date YYYY-MM-DD")
	cmd.Flags().IntVar(&profitCycle, "profit-cycle", 0, "months between profit distributions (1, 3, 6, 12)")
	cmd.Flags().BoolVar(&distCustom, "custom", false, "use the custom distribution percentages")
	cmd.Flags().StringVar(&distFixed, "dist-fixed", "", "fixed-costs percentage")
	cmd.Flags().StringVar(&distVariable, "dist-variable", "", "variable-costs percentage")
	cmd.Flags().StringVar(&distProfit, "dist-profit", "", "profit-reserve percentage")
	cmd.Flags().StringVar(&distInvestment, "dist-investment", "", "investment percentage")
	cmd.Flags().StringVar(&distProLabore, "dist-pro-labore", "", "pro-labore percentage")

	return cmd
}
