// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/glowbooks/glow/internal/model"
)

// Storage defines the contract for the persistence layer. The computation
// engine never touches storage; commands load records through this interface
// and hand the in-memory collections to the engine.
//
// Recording a withdrawal creates its paired expense and revenue atomically,
// and deleting any one of the three removes the other two in the same
// transaction.
type Storage interface {
	// Transaction operations
	SaveTransaction(ctx context.Context, txn *model.Transaction) error
	GetTransaction(ctx context.Context, id string) (*model.Transaction, error)
	ListTransactions(ctx context.Context) ([]model.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error

	// Revenue operations
	SaveRevenue(ctx context.Context, rev *model.Revenue) error
	GetRevenue(ctx context.Context, id string) (*model.Revenue, error)
	ListRevenues(ctx context.Context) ([]model.Revenue, error)
	DeleteRevenue(ctx context.Context, id string) error

	// Withdrawal operations
	RecordWithdrawal(ctx context.Context, w *model.Withdrawal) error
	GetWithdrawal(ctx context.Context, id string) (*model.Withdrawal, error)
	ListWithdrawals(ctx context.Context) ([]model.Withdrawal, error)
	DeleteWithdrawal(ctx context.Context, id string) error

	// Settings operations
	GetDistributionConfig(ctx context.Context) (model.DistributionConfig, error)
	SaveDistributionConfig(ctx context.Context, config model.DistributionConfig) error
	GetProLaboreSettings(ctx context.Context) (model.ProLaboreSettings, error)
	SaveProLaboreSettings(ctx context.Context, settings model.ProLaboreSettings) error

	// Snapshot restore replaces the entire persisted state in one transaction.
	RestoreSnapshot(ctx context.Context, snap *model.Snapshot) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}
