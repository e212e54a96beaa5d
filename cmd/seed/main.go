package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/attendly/attendance-backend-go/internal/config"
	"github.com/attendly/attendance-backend-go/internal/domain/user"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/attendly/attendance-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

var errAlreadySeeded = errors.New("already seeded")

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

	email := getEnv("SEED_ADMIN_EMAIL", "admin@example.com")
	password := getEnv("SEED_ADMIN_PASSWORD", "changeme123")

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Println("Error hashing password:", err)
		os.Exit(1)
	}

	ctx := context.Background()
	repo := postgresql.NewUserRepository(db)

	var admin user.User
	err = postgresql.WithTransaction(ctx, db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		exists, err := repo.ExistsByEmail(txCtx, email)
		if err != nil {
			return fmt.Errorf("check admin account: %w", err)
		}
		if exists {
			return errAlreadySeeded
		}

		admin, err = repo.Create(txCtx, user.User{
			Name:         "Administrator",
			Email:        email,
			PasswordHash: string(hash),
			Role:         user.RoleAdmin,
			PayType:      "MONTHLY",
			PayRate:      decimal.Zero,
			Goal:         decimal.Zero,
		})
		return err
	})
	if errors.Is(err, errAlreadySeeded) {
		fmt.Println("Admin account already exists, nothing to do")
		return
	}
	if err != nil {
		fmt.Println("Error creating admin account:", err)
		os.Exit(1)
	}

	fmt.Printf("Admin account created: %s (%s)\n", admin.Email, admin.ID)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
