// Package manage holds the administration commands of the manage binary.
package manage

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	dbadapter "taskmanager/internal/adapter/db"
	"taskmanager/internal/app/service"
	"taskmanager/internal/config"
	"taskmanager/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "manage",
	Short: "Task manager administration commands",
	Long: `manage prepares and seeds the task manager database.

The database is taken from the same environment as the server
(DB_DRIVER, MYSQL_*, SQLITE_PATH) unless --sqlite is given.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogger,
}

var (
	sqlitePath string
	// hashCost is lowered by tests.
	hashCost = bcrypt.DefaultCost
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&sqlitePath, "sqlite", "", "use the SQLite database at this path")
}

func setupLogger(cmd *cobra.Command, args []string) error {
	logger, err := logging.NewLogger(config.LoadConfig().LogFile)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	zap.ReplaceGlobals(logger)
	return nil
}

func openDB() (*sqlx.DB, error) {
	cfg := config.LoadConfig()
	if sqlitePath != "" {
		cfg.DbDriver = config.DriverSQLite
		cfg.SqlitePath = sqlitePath
	}

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", cfg.DbDriver, err)
	}
	return db, nil
}

type services struct {
	users    *service.UserService
	statuses *service.StatusService
	labels   *service.LabelService
	tasks    *service.TaskService
}

func newServices(db *sqlx.DB) services {
	userRepository := dbadapter.NewUserRepository(db)
	statusRepository := dbadapter.NewStatusRepository(db)
	labelRepository := dbadapter.NewLabelRepository(db)

	return services{
		users:    service.NewUserService(userRepository).WithHashCost(hashCost),
		statuses: service.NewStatusService(statusRepository),
		labels:   service.NewLabelService(labelRepository),
		tasks: service.NewTaskService(
			dbadapter.NewTaskRepository(db),
			statusRepository,
			userRepository,
			labelRepository,
		),
	}
}

func closeDB(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		zap.L().Warn("failed to close database connection", zap.Error(err))
	}
}
