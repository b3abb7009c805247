package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"gotolinks/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// These tests need a running Postgres. They are skipped unless DB_HOST is set,
// so the default test run stays self-contained on SQLite.

func pgConfig(t *testing.T, dbName string) *config.Config {
	t.Helper()
	host := os.Getenv("DB_HOST")
	if host == "" {
		t.Skip("set DB_HOST to run Postgres integration tests")
	}
	return &config.Config{
		DBHost:       host,
		DBPort:       getEnvOrDefault("DB_PORT", "5432"),
		DBUser:       getEnvOrDefault("DB_USER", "gotolinks_user"),
		DBPassword:   getEnvOrDefault("DB_PASSWORD", "gotolinks_password"),
		DBName:       dbName,
		DBSSLMode:    "disable",
		DBSchemaMode: SchemaModeSQL,
		Env:          "test",
	}
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func maintenanceDSN(cfg *config.Config, dbName string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, dbName)
}

func createEphemeralDB(t *testing.T) *config.Config {
	t.Helper()
	dbName := fmt.Sprintf("gotolinks_mig_%d", time.Now().UnixNano())
	cfg := pgConfig(t, dbName)

	sqlDB, err := sql.Open("pgx", maintenanceDSN(cfg, "postgres"))
	if err != nil {
		t.Fatalf("open maintenance db: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	if _, err := sqlDB.ExecContext(context.Background(), `CREATE DATABASE `+dbName); err != nil {
		t.Fatalf("create ephemeral db: %v", err)
	}

	t.Cleanup(func() {
		_, _ = sqlDB.ExecContext(context.Background(), `SELECT pg_terminate_backend(pid) FROM pg_stat_activity WHERE datname = $1`, dbName)
		_, _ = sqlDB.ExecContext(context.Background(), `DROP DATABASE IF EXISTS `+dbName)
	})

	return cfg
}

func TestMigrationsApplyFreshDB(t *testing.T) {
	cfg := createEphemeralDB(t)

	db, err := ConnectWithOptions(cfg, ConnectOptions{ApplySchema: false})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}

	ctx := context.Background()
	if err := RunMigrations(ctx, db); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	tables := []string{"users", "profiles", "profile_blocks", "stats"}
	for _, table := range tables {
		var exists bool
		if err := db.Raw(`SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_schema='public' AND table_name = ?)`, table).Scan(&exists).Error; err != nil {
			t.Fatalf("check table %s: %v", table, err)
		}
		if !exists {
			t.Fatalf("expected table %s to exist", table)
		}
	}

	var statsIdxExists bool
	if err := db.Raw(`SELECT EXISTS (SELECT 1 FROM pg_indexes WHERE tablename='stats' AND indexname='idx_stats_user_period')`).Scan(&statsIdxExists).Error; err != nil {
		t.Fatalf("check stats unique index: %v", err)
	}
	if !statsIdxExists {
		t.Fatal("expected idx_stats_user_period index")
	}
}

func TestMigrationsIdempotentAndStatus(t *testing.T) {
	cfg := createEphemeralDB(t)

	db, err := ConnectWithOptions(cfg, ConnectOptions{ApplySchema: false})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}

	ctx := context.Background()
	if err := RunMigrations(ctx, db); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := RunMigrations(ctx, db); err != nil {
		t.Fatalf("second run: %v", err)
	}

	status, err := GetSchemaStatus(ctx, db, cfg)
	if err != nil {
		t.Fatalf("schema status: %v", err)
	}
	if len(status.PendingMigrations) != 0 {
		t.Fatalf("expected no pending migrations, got %d", len(status.PendingMigrations))
	}
	if len(status.AppliedVersions) == 0 {
		t.Fatal("expected at least one applied migration")
	}
}

func TestMigrationRollback(t *testing.T) {
	cfg := createEphemeralDB(t)

	db, err := ConnectWithOptions(cfg, ConnectOptions{ApplySchema: false})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}

	ctx := context.Background()
	if err := RunMigrations(ctx, db); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	if err := RollbackMigration(ctx, db, 1); err != nil {
		t.Fatalf("rollback: %v", err)
	}

	var exists bool
	if err := db.Raw(`SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_schema='public' AND table_name = 'users')`).Scan(&exists).Error; err != nil {
		t.Fatalf("check users table: %v", err)
	}
	if exists {
		t.Fatal("expected users table to be dropped after rollback")
	}
}
