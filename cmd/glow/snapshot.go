package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glowbooks/glow/internal/cli"
	"github.com/glowbooks/glow/internal/snapshot"
)

func snapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Back up or restore all data as a JSON file",
	}

	cmd.AddCommand(exportSnapshotCmd())
	cmd.AddCommand(importSnapshotCmd())

	return cmd
}

func exportSnapshotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write all records and settings to a JSON backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			snap, err := snapshot.Export(ctx, store)
			if err != nil {
				return err
			}
			if err := snapshot.WriteFile(args[0], snap); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf(
				"Exported %d transactions, %d revenues, %d withdrawals to %s",
				len(snap.Transactions), len(snap.Revenues), len(snap.Withdrawals), args[0])))
			return nil
		},
	}
}

func importSnapshotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all records and settings with a JSON backup",
		Long:  `Replace the entire database contents with the backup file's state. The replacement is atomic; a malformed backup leaves existing data untouched.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := snapshot.Import(ctx, store, args[0]); err != nil {
				return err
			}
			fmt.Println(cli.SuccessStyle.Render("Backup imported."))
			return nil
		},
	}
}
