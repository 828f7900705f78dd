package ratetable

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

type StoreAPI interface {
	ListActive(ctx context.Context) ([]Document, error)
}

// Document is one stored rate table row, still undecoded.
type Document struct {
	FiscalYear int
	Name       string
	Body       []byte
}

// Decode decodes and validates the row. See DecodeDocument.
func (d Document) Decode() (Set, error) {
	return DecodeDocument(d.FiscalYear, d.Name, d.Body)
}

// Store reads rate table documents kept in Postgres.
type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

// ListActive returns every active row in fiscal year order. Rows are not
// decoded here so one bad document cannot hide the others.
func (s *Store) ListActive(ctx context.Context) ([]Document, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT fiscal_year, name, document
    FROM rate_tables
    WHERE active
    ORDER BY fiscal_year
  `)
	if err != nil {
		return nil, errors.Wrap(err, "list rate tables")
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var doc Document
		if err := rows.Scan(&doc.FiscalYear, &doc.Name, &doc.Body); err != nil {
			return nil, errors.Wrap(err, "scan rate table")
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "list rate tables")
	}
	return docs, nil
}

// DecodeDocument decodes a JSON rate table document. The row's fiscal year
// and name win over whatever the document carries.
func DecodeDocument(year int, name string, document []byte) (Set, error) {
	var set Set
	if err := json.Unmarshal(document, &set); err != nil {
		return Set{}, errors.Wrapf(err, "decode rate table %d", year)
	}
	set.FiscalYear = year
	if name != "" {
		set.Name = name
	}
	if err := set.Validate(); err != nil {
		return Set{}, errors.Wrapf(err, "rate table %d", year)
	}
	return set, nil
}
