// Package analytics computes spending aggregates, trend statistics, and
// budget evaluations from a user's transaction history. Every function is a
// pure function of its inputs: no I/O, no shared state, and freshly
// allocated outputs, so concurrent callers never need coordination.
package analytics

import (
	"fmt"

	apperrors "finmate/internal/errors"
	"finmate/internal/models"
)

// Validate reports whether a transaction record is usable for aggregation.
// A record is malformed when its date is unset, its type is neither income
// nor expense, or its amount is negative (direction is carried by the type,
// never by a negative amount). Aggregation functions fail fast on the first
// malformed record; callers that prefer to skip bad records can filter with
// Validate beforehand.
func Validate(record models.Transaction) error {
	if record.Date.IsZero() {
		return apperrors.WithMessage(apperrors.ErrMalformedRecord,
			fmt.Sprintf("transaction %s has no date", record.ID))
	}
	switch record.Type {
	case models.TransactionTypeIncome, models.TransactionTypeExpense:
	default:
		return apperrors.WithMessage(apperrors.ErrMalformedRecord,
			fmt.Sprintf("transaction %s has invalid type %q", record.ID, record.Type))
	}
	if record.Amount < 0 {
		return apperrors.WithMessage(apperrors.ErrMalformedRecord,
			fmt.Sprintf("transaction %s has negative amount %d", record.ID, record.Amount))
	}
	return nil
}

// Sanitize splits records into valid and malformed. The valid slice keeps
// the input order. Intended for callers following the skip-and-log policy,
// where one bad record should not blank the whole report.
func Sanitize(records []models.Transaction) (valid []models.Transaction, malformed []error) {
	valid = make([]models.Transaction, 0, len(records))
	for _, r := range records {
		if err := Validate(r); err != nil {
			malformed = append(malformed, err)
			continue
		}
		valid = append(valid, r)
	}
	return valid, malformed
}
