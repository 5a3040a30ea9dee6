package manage

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskmanager/internal/fixtures"
)

var loadDataCmd = &cobra.Command{
	Use:   "loaddata <fixtures.yaml>",
	Short: "Load users, statuses, labels and tasks from a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE:  runLoadData,
}

func init() {
	rootCmd.AddCommand(loadDataCmd)
}

func runLoadData(cmd *cobra.Command, args []string) error {
	file, err := fixtures.ParseFile(args[0])
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(db)

	s := newServices(db)
	summary, err := fixtures.NewLoader(s.users, s.statuses, s.labels, s.tasks).Load(cmd.Context(), file)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", args[0], err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d users, %d statuses, %d labels, %d tasks\n",
		summary.Users, summary.Statuses, summary.Labels, summary.Tasks)
	return nil
}
