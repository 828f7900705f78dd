package ratetable

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreListActive(t *testing.T) {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	poolCfg, err := pgxpool.ParseConfig(dbURL)
	require.NoError(t, err)
	// The temp table below is only visible to the connection that made it.
	poolCfg.MaxConns = 1
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	require.NoError(t, err)
	defer pool.Close()

	_, err = pool.Exec(ctx, `CREATE TEMP TABLE rate_tables (
		fiscal_year INTEGER PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		document JSONB NOT NULL,
		active BOOLEAN NOT NULL DEFAULT TRUE
	)`)
	require.NoError(t, err)

	document, err := json.Marshal(Guyana2026())
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `INSERT INTO rate_tables (fiscal_year, name, document, active) VALUES
		(2026, 'Budget 2026', $1, TRUE),
		(2025, 'Budget 2025', $1, FALSE),
		(2027, 'Broken 2027', '{"vehicle": {"gasolineUnder4": []}}', TRUE)`, document)
	require.NoError(t, err)

	docs, err := NewStore(pool).ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, 2026, docs[0].FiscalYear)
	assert.Equal(t, 2027, docs[1].FiscalYear)

	set, err := docs[0].Decode()
	require.NoError(t, err)
	assert.Equal(t, 2026, set.FiscalYear)
	assert.Equal(t, "Budget 2026", set.Name)

	_, err = docs[1].Decode()
	assert.ErrorIs(t, err, ErrInvalid)
}
