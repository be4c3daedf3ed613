package storage

import (
	"context"
	"fmt"

	"github.com/glowbooks/glow/internal/model"
)

// GetDistributionConfig loads the stored distribution percentages.
func (s *SQLiteStorage) GetDistributionConfig(ctx context.Context) (model.DistributionConfig, error) {
	if err := validateContext(ctx); err != nil {
		return model.DistributionConfig{}, err
	}

	var (
		cfg      model.DistributionConfig
		isCustom int
		fixed    string
		variable string
		profit   string
		invest   string
		labore   string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT dist_is_custom, dist_fixed, dist_variable, dist_profit,
		       dist_investment, dist_pro_labore
		FROM settings WHERE id = 1`).
		Scan(&isCustom, &fixed, &variable, &profit, &invest, &labore)
	if err != nil {
		return model.DistributionConfig{}, fmt.Errorf("failed to load distribution config: %w", err)
	}

	cfg.IsCustom = isCustom != 0
	if cfg.Fixed, err = parseStoredAmount(fixed); err != nil {
		return model.DistributionConfig{}, err
	}
	if cfg.Variable, err = parseStoredAmount(variable); err != nil {
		return model.DistributionConfig{}, err
	}
	if cfg.Profit, err = parseStoredAmount(profit); err != nil {
		return model.DistributionConfig{}, err
	}
	if cfg.Investment, err = parseStoredAmount(invest); err != nil {
		return model.DistributionConfig{}, err
	}
	if cfg.ProLabore, err = parseStoredAmount(labore); err != nil {
		return model.DistributionConfig{}, err
	}
	return cfg, nil
}

// SaveDistributionConfig stores the distribution percentages.
func (s *SQLiteStorage) SaveDistributionConfig(ctx context.Context, config model.DistributionConfig) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := config.Validate(); err != nil {
		return err
	}

	isCustom := 0
	if config.IsCustom {
		isCustom = 1
	}
	_, err := s.db.ExecContext(ctx, `
		UPDATE settings SET
			dist_is_custom = ?, dist_fixed = ?, dist_variable = ?,
			dist_profit = ?, dist_investment = ?, dist_pro_labore = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = 1`,
		isCustom, config.Fixed.String(), config.Variable.String(),
		config.Profit.String(), config.Investment.String(), config.ProLabore.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to save distribution config: %w", err)
	}
	return nil
}

// GetProLaboreSettings loads the stored payout configuration.
func (s *SQLiteStorage) GetProLaboreSettings(ctx context.Context) (model.ProLaboreSettings, error) {
	if err := validateContext(ctx); err != nil {
		return model.ProLaboreSettings{}, err
	}

	var (
		settings   model.ProLaboreSettings
		fixedValue string
		startDate  string
		cycle      int
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT frequency, payout_mode, fixed_value, start_date, profit_cycle
		FROM settings WHERE id = 1`).
		Scan(&settings.Frequency, &settings.Mode, &fixedValue, &startDate, &cycle)
	if err != nil {
		return model.ProLaboreSettings{}, fmt.Errorf("failed to load pro-labore settings: %w", err)
	}

	if settings.FixedValue, err = parseStoredAmount(fixedValue); err != nil {
		return model.ProLaboreSettings{}, err
	}
	if startDate != "" {
		if settings.StartDate, err = model.ParseDate(startDate); err != nil {
			return model.ProLaboreSettings{}, err
		}
	}
	settings.Cycle = model.ProfitCycle(cycle)
	return settings, nil
}

// SaveProLaboreSettings stores the payout configuration.
func (s *SQLiteStorage) SaveProLaboreSettings(ctx context.Context, settings model.ProLaboreSettings) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	startDate := ""
	if !settings.StartDate.IsZero() {
		startDate = settings.StartDate.String()
	}
	_, err := s.db.ExecContext(ctx, `
		UPDATE settings SET
			frequency = ?, payout_mode = ?, fixed_value = ?,
			start_date = ?, profit_cycle = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = 1`,
		string(settings.Frequency), string(settings.Mode),
		settings.FixedValue.String(), startDate, int(settings.Cycle),
	)
	if err != nil {
		return fmt.Errorf("failed to save pro-labore settings: %w", err)
	}
	return nil
}
