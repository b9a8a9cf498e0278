package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

// MigratePostgres applies the migrations found at sourceURL (e.g. "file://migrations/postgres")
// through a database/sql handle borrowed from pool.
func MigratePostgres(pool *pgxpool.Pool, sourceURL string) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create postgres driver instance for migrations: %w", err)
	}
	return runMigrations(sourceURL, "postgres", driver)
}

// MigrateMySQL applies the migrations found at sourceURL (e.g. "file://migrations/mysql").
func MigrateMySQL(db *sql.DB, sourceURL string) error {
	driver, err := migratemysql.WithInstance(db, &migratemysql.Config{})
	if err != nil {
		return fmt.Errorf("could not create mysql driver instance for migrations: %w", err)
	}
	return runMigrations(sourceURL, "mysql", driver)
}

func runMigrations(sourceURL, dbName string, driver migratedb.Driver) error {
	m, err := migrate.NewWithDatabaseInstance(sourceURL, dbName, driver)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	upErr := m.Up()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", upErr)
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		log.Println("No new migrations to apply.")
	} else {
		log.Println("Database migrations applied successfully.")
	}
	return nil
}
