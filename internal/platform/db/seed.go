package db

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"gytax/internal/domain/ratetable"
)

// Seed stores each set as the document for its fiscal year unless a row
// for that year already exists. Edited rows are never overwritten.
func Seed(ctx context.Context, pool *Pool, sets ...ratetable.Set) (int, error) {
	inserted := 0
	for _, set := range sets {
		document, err := json.Marshal(set)
		if err != nil {
			return inserted, errors.Wrapf(err, "encode rate table %d", set.FiscalYear)
		}
		tag, err := pool.Exec(ctx, `
			INSERT INTO rate_tables (fiscal_year, name, document)
			VALUES ($1, $2, $3)
			ON CONFLICT (fiscal_year) DO NOTHING
		`, set.FiscalYear, set.Name, document)
		if err != nil {
			return inserted, errors.Wrapf(err, "seed rate table %d", set.FiscalYear)
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}
