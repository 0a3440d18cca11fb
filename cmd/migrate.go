package cmd

import (
	"context"
	"log"

	"github.com/frahmantamala/hrm/internal/store"
	"github.com/spf13/cobra"
)

var (
	migrateCmd = &cobra.Command{
		RunE:  runMigration,
		Use:   "migrate",
		Short: "create any missing table and seed the default rules",
	}
	migrateRollback bool
)

func init() {
	migrateCmd.Flags().BoolVarP(&migrateRollback, "rollback", "r", false, "to rollback the latest version of sql migration")
}

func runMigration(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	// bootstrap already brings the schema up to date.
	_, db, logger, err := bootstrap(ctx)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if migrateRollback {
		if err := store.RollbackSchema(ctx, db, logger); err != nil {
			log.Fatalf("rollback: %v", err)
		}
		return nil
	}

	logger.Info("schema is up to date")
	return nil
}
