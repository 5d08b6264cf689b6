// Command seed provisions the owner account. With no flags it creates
// "Portfolio Owner" <admin@portfolio.com> with the development password;
// pass -password - to be prompted instead of putting the secret on the
// command line.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/Sadia492/portfolio-server/internal/flagx"
	"github.com/Sadia492/portfolio-server/internal/server/auth"
	"github.com/Sadia492/portfolio-server/internal/server/config"
	"github.com/Sadia492/portfolio-server/internal/server/models"
	"github.com/Sadia492/portfolio-server/internal/server/repositories/repomanager"
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("seed: %v", err)
	}
}

func run(ctx context.Context) error {
	cfg := config.LoadConfig()

	args := flagx.FilterArgs(os.Args[1:], []string{"-name", "-email", "-password"})

	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	name := fs.String("name", "Portfolio Owner", "owner display name")
	email := fs.String("email", "admin@portfolio.com", "owner email")
	password := fs.String("password", "admin123", "owner password ('-' to prompt)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *password == "-" {
		fmt.Print("Password: ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("reading password: %w", err)
		}
		*password = string(raw)
	}
	if *password == "" {
		return fmt.Errorf("password must not be empty")
	}

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("db open error: %w", err)
	}
	defer db.Close()

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	hash, err := auth.HashPassword(*password, cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	user, err := rm.Users(db).Upsert(ctx, &models.User{
		Name:         *name,
		Email:        *email,
		PasswordHash: hash,
		Role:         models.RoleOwner,
	})
	if err != nil {
		return fmt.Errorf("creating owner: %w", err)
	}

	log.Printf("owner account ready: %s (%s)", user.Email, user.ID)
	return nil
}
