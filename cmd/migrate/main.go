// Command migrate applies, rolls back, or reports database schema
// migrations.
//
// Usage:
//
//	migrate up       apply all pending migrations
//	migrate down     roll back the most recent migration
//	migrate version  print the current schema version
package main

import (
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"finmate/internal/database"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: migrate <up|down|version>")
		os.Exit(1)
	}

	config, err := database.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load database configuration: %v\n", err)
		os.Exit(1)
	}

	pgURL := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.User, config.Password, config.Host, config.Port, config.DBName, config.SSLMode)

	mig, err := migrate.New("file://migrations", pgURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create migrate instance: %v\n", err)
		os.Exit(1)
	}
	defer mig.Close()

	switch os.Args[1] {
	case "up":
		if err := mig.Up(); err != nil && err != migrate.ErrNoChange {
			fmt.Fprintf(os.Stderr, "migration up failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("migrations applied")
	case "down":
		if err := mig.Steps(-1); err != nil {
			fmt.Fprintf(os.Stderr, "migration down failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("rolled back one migration")
	case "version":
		version, dirty, err := mig.Version()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to read version: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("version: %d dirty: %v\n", version, dirty)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", os.Args[1])
		os.Exit(1)
	}
}
