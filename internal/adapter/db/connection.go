package db

import (
	"context"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"taskmanager/internal/config"
)

func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	switch conf.DbDriver {
	case config.DriverSQLite:
		return ConnectSQLite(conf.SqlitePath)
	case config.DriverMySQL, "":
		return connectMySQL(conf)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", conf.DbDriver)
	}
}

func connectMySQL(conf *config.Config) (*sqlx.DB, error) {
	params := conf.DbParams
	if params == "" {
		params = "parseTime=true"
	}

	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?%s",
		conf.DbUser,
		conf.DbPassword,
		conf.DbHost,
		conf.DbPort,
		conf.DbName,
		params,
	)

	db, err := sqlx.Connect(config.DriverMySQL, dsn)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// ConnectSQLite opens a SQLite database with foreign keys enforced. A single
// connection is kept so that ":memory:" databases stay shared across queries.
func ConnectSQLite(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect(config.DriverSQLite, path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.ExecContext(context.Background(), "PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	return db, nil
}
