package main

import (
	"context"
	"fmt"
	"os"

	"github.com/attendly/attendance-backend-go/internal/config"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
)

var statements = []string{
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`,

	`CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name          TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL DEFAULT 'USER',
		pay_type      TEXT NOT NULL DEFAULT 'HOURLY',
		pay_rate      NUMERIC(14,2) NOT NULL DEFAULT 0,
		goal          NUMERIC(14,2) NOT NULL DEFAULT 0,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS attendances (
		id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id       UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		date          DATE NOT NULL,
		start_time    TEXT NOT NULL,
		end_time      TEXT NOT NULL,
		break_minutes INTEGER NOT NULL DEFAULT 0,
		report        TEXT NOT NULL DEFAULT '',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (user_id, date)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_attendances_user_date ON attendances (user_id, date)`,
	`CREATE INDEX IF NOT EXISTS idx_attendances_date ON attendances (date)`,
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()
	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			fmt.Println("Migration failed:", err)
			os.Exit(1)
		}
	}

	fmt.Println("Migration completed")
}
