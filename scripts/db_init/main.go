// db_init creates the SQLite database, applies all migrations and seeds
// the demo dataset so a fresh server starts with the same records the
// offline client shows.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	dbfs "github.com/garnizeh/skillswap/db"
	"github.com/garnizeh/skillswap/internal/auth"
	"github.com/garnizeh/skillswap/internal/config"
	"github.com/garnizeh/skillswap/internal/db"
	"github.com/garnizeh/skillswap/internal/repository/sqlite"
	"github.com/garnizeh/skillswap/internal/state"
)

func main() {
	var seed = flag.Bool("seed", false, "seed the demo dataset after migrating")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.LoadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	database, err := db.New(ctx, cfg.DatabasePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "DB init error: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := db.Migrate(ctx, database, dbfs.Migrations); err != nil {
		fmt.Fprintf(os.Stderr, "Migration runner error: %v\n", err)
		os.Exit(1)
	}

	if *seed {
		if err := seedDemo(ctx, sqlite.New(database)); err != nil {
			fmt.Fprintf(os.Stderr, "Seed error: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Println("Database initialized successfully.")
}

func seedDemo(ctx context.Context, repo *sqlite.SQLiteRepo) error {
	users, skills, sessions := state.Fixtures()

	for i := range skills {
		if err := repo.CreateSkill(ctx, &skills[i]); err != nil {
			return fmt.Errorf("skill %s: %w", skills[i].ID, err)
		}
	}
	for i := range users {
		// fixture passwords are plaintext; stored accounts get real hashes
		hash, err := auth.BcryptHash(users[i].Password)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", users[i].ID, err)
		}
		users[i].Password = hash
		if err := repo.CreateUser(ctx, &users[i]); err != nil {
			return fmt.Errorf("user %s: %w", users[i].ID, err)
		}
	}
	for i := range sessions {
		if err := repo.CreateSession(ctx, &sessions[i]); err != nil {
			return fmt.Errorf("session %s: %w", sessions[i].ID, err)
		}
	}
	return nil
}
