package integration

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

// TestDB holds the test database connection and the container backing it.
type TestDB struct {
	DB       *sql.DB
	Pool     *dockertest.Pool
	Resource *dockertest.Resource
}

// SetupTestDB starts PostgreSQL in a container and applies the migrations.
// The test is skipped in -short mode or when Docker is unreachable.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("docker unavailable: %s", err)
	}
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("docker unavailable: %s", err)
	}

	pool.MaxWait = 120 * time.Second

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16",
		Env: []string{
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_USER=testuser",
			"POSTGRES_DB=inventory",
			"listen_addresses='*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("Could not start resource: %s", err)
	}

	// orphaned containers die with the expiry
	if err := resource.Expire(120); err != nil {
		t.Fatalf("Could not set expiration: %s", err)
	}

	hostAndPort := resource.GetHostPort("5432/tcp")
	databaseURL := fmt.Sprintf("postgres://testuser:secret@%s/inventory?sslmode=disable", hostAndPort)

	log.Println("Connecting to database on url: ", databaseURL)

	var db *sql.DB
	if err = pool.Retry(func() error {
		var err error
		db, err = sql.Open("postgres", databaseURL)
		if err != nil {
			return err
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("Could not connect to docker: %s", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		t.Fatalf("Could not create migration driver: %s", err)
	}

	migrationsPath := "../migrations"
	if _, err := os.Stat(migrationsPath); os.IsNotExist(err) {
		t.Fatalf("Migrations directory not found: %s", migrationsPath)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+migrationsPath, "postgres", driver)
	if err != nil {
		t.Fatalf("Could not create migrate instance: %s", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		t.Fatalf("Could not run migrations: %s", err)
	}

	return &TestDB{
		DB:       db,
		Pool:     pool,
		Resource: resource,
	}
}

// Cleanup closes the database connection and purges the container.
func (tdb *TestDB) Cleanup(t *testing.T) {
	t.Helper()

	if tdb.DB != nil {
		if err := tdb.DB.Close(); err != nil {
			t.Errorf("Could not close database: %s", err)
		}
	}

	if tdb.Pool != nil && tdb.Resource != nil {
		if err := tdb.Pool.Purge(tdb.Resource); err != nil {
			t.Errorf("Could not purge resource: %s", err)
		}
	}
}

// TruncateTables empties every table and restarts the product id sequence.
func (tdb *TestDB) TruncateTables(t *testing.T) {
	t.Helper()

	ctx := context.Background()
	for _, table := range []string{"events", "products", "employees"} {
		_, err := tdb.DB.ExecContext(ctx, fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table))
		if err != nil {
			t.Fatalf("Could not truncate table %s: %s", table, err)
		}
	}
}

// countEvents returns how many outbox rows have the given status.
func (tdb *TestDB) countEvents(t *testing.T, status string) int {
	t.Helper()

	var n int
	err := tdb.DB.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM events WHERE status = $1", status).Scan(&n)
	if err != nil {
		t.Fatalf("Could not count events: %s", err)
	}
	return n
}
