// Command import loads transactions from a CSV export into the database.
//
// The CSV must have the header: date,type,category,amount,description.
// Dates are YYYY-MM-DD and amounts are integer minor currency units.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"finmate/internal/database"
	"finmate/internal/importer"
	"finmate/internal/uuid"
)

var (
	filePath string
	userID   string
)

var rootCmd = &cobra.Command{
	Use:   "import",
	Short: "Import transactions from a CSV file",
	Long:  "Import transactions from a CSV export. Invalid rows are skipped and reported; valid rows are committed atomically.",
	RunE:  runImport,
}

func init() {
	rootCmd.Flags().StringVarP(&filePath, "file", "f", "", "path to the CSV file (required)")
	rootCmd.Flags().StringVarP(&userID, "user", "u", "", "ID of the user to import for (required)")
	_ = rootCmd.MarkFlagRequired("file")
	_ = rootCmd.MarkFlagRequired("user")
}

func runImport(cmd *cobra.Command, args []string) error {
	if !uuid.IsValid(userID) {
		return fmt.Errorf("invalid user ID %q", userID)
	}

	config, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("load database configuration: %w", err)
	}

	db, err := gorm.Open(postgres.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}

	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("open %s: %w", filePath, err)
	}
	defer f.Close()

	result, err := importer.New(db).Run(context.Background(), userID, f)
	if err != nil {
		return err
	}

	fmt.Printf("imported %d transactions\n", result.Imported)
	for _, skip := range result.Skipped {
		fmt.Printf("skipped line %d: %s\n", skip.Line, skip.Reason)
	}
	if len(result.Skipped) > 0 {
		fmt.Printf("%d rows skipped\n", len(result.Skipped))
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
