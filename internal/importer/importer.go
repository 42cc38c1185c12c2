// Package importer loads transaction history from CSV exports. Rows that
// fail validation are skipped and reported, never silently dropped.
package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"finmate/internal/analytics"
	"finmate/internal/models"
)

// expected CSV header, in order.
var header = []string{"date", "type", "category", "amount", "description"}

// RowError describes one skipped row.
type RowError struct {
	Line   int
	Reason string
}

// Result summarizes an import run.
type Result struct {
	Imported int
	Skipped  []RowError
}

// Importer reads CSV rows and persists them as transactions.
type Importer struct {
	db *gorm.DB
}

// New creates an importer writing to the given database.
func New(db *gorm.DB) *Importer {
	return &Importer{db: db}
}

// Run imports all rows from r for the given user. The whole import runs in
// one database transaction: valid rows all land or none do, while invalid
// rows are collected into the result.
func (im *Importer) Run(ctx context.Context, userID string, r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	first, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if err := checkHeader(first); err != nil {
		return nil, err
	}

	result := &Result{}
	var pending []models.Transaction

	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			result.Skipped = append(result.Skipped, RowError{Line: line, Reason: err.Error()})
			continue
		}

		tx, err := parseRow(userID, row)
		if err != nil {
			result.Skipped = append(result.Skipped, RowError{Line: line, Reason: err.Error()})
			continue
		}
		if err := analytics.Validate(tx); err != nil {
			result.Skipped = append(result.Skipped, RowError{Line: line, Reason: err.Error()})
			continue
		}
		pending = append(pending, tx)
	}

	if len(pending) > 0 {
		err := im.db.WithContext(ctx).Transaction(func(dbtx *gorm.DB) error {
			return dbtx.CreateInBatches(pending, 100).Error
		})
		if err != nil {
			return nil, fmt.Errorf("persist transactions: %w", err)
		}
	}

	result.Imported = len(pending)
	return result, nil
}

func checkHeader(got []string) error {
	if len(got) != len(header) {
		return fmt.Errorf("expected header %v, got %v", header, got)
	}
	for i, want := range header {
		if !strings.EqualFold(strings.TrimSpace(got[i]), want) {
			return fmt.Errorf("expected header %v, got %v", header, got)
		}
	}
	return nil
}

func parseRow(userID string, row []string) (models.Transaction, error) {
	if len(row) != len(header) {
		return models.Transaction{}, fmt.Errorf("expected %d fields, got %d", len(header), len(row))
	}

	date, err := time.Parse("2006-01-02", strings.TrimSpace(row[0]))
	if err != nil {
		return models.Transaction{}, fmt.Errorf("invalid date %q", row[0])
	}

	amount, err := strconv.ParseInt(strings.TrimSpace(row[3]), 10, 64)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("invalid amount %q", row[3])
	}
	if amount <= 0 {
		return models.Transaction{}, fmt.Errorf("amount must be positive, got %d", amount)
	}

	return models.Transaction{
		UserID:      userID,
		Type:        models.TransactionType(strings.TrimSpace(row[1])),
		Category:    models.Category(strings.TrimSpace(row[2])),
		Amount:      amount,
		Description: strings.TrimSpace(row[4]),
		Date:        date,
	}, nil
}
