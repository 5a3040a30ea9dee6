package manage

import (
	"fmt"

	"github.com/spf13/cobra"

	dbadapter "taskmanager/internal/adapter/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Args:  cobra.NoArgs,
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(db)

	applied, err := dbadapter.Migrate(cmd.Context(), db)
	if err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(applied) == 0 {
		fmt.Fprintln(out, "No migrations to apply.")
		return nil
	}
	for _, name := range applied {
		fmt.Fprintf(out, "Applied %s\n", name)
	}
	return nil
}
