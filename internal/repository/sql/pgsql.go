package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/iyhunko/treko-inventory/internal/config"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// StartDB opens the Postgres connection and applies pending migrations.
func StartDB(ctx context.Context, dbConf config.DB) (*sql.DB, error) {
	dbCon, err := startDBConnection(ctx, dbConf)
	if err != nil {
		slog.Error("failed to initialize DB connection", slog.Any("err", err))
		return nil, fmt.Errorf("failed to initialize DB connection: %w", err)
	}
	slog.Info("DB connection done")
	if err = RunMigrations(dbCon, dbConf.MigrationsPath); err != nil {
		slog.Error("failed to run migrations", slog.Any("err", err))
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	slog.Info("DB migration done", slog.String("path", dbConf.MigrationsPath))
	return dbCon, nil
}

func startDBConnection(ctx context.Context, conf config.DB) (*sql.DB, error) {
	dsnTmp := "host=%s user=%s password=%s dbname=%s port=%s sslmode=disable"
	dsn := fmt.Sprintf(dsnTmp, conf.Host, conf.User, conf.Password, conf.Name, conf.Port)
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// RunMigrations applies the migrations found in dir to db.
func RunMigrations(db *sql.DB, dir string) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://"+dir,
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
