package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

// setupTestDB opens a named in-memory catalog database shared by a writer and
// a reader pool, then applies the schema and seed migrations. The name comes
// from t.Name() so tests never see each other's data.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	// In-memory databases have no WAL; cache=shared lets both pools see the same data.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)",
		url.PathEscape(t.Name()))

	open := func(maxConns int) *sql.DB {
		conn, err := sql.Open("sqlite", dsn)
		require.NoError(t, err)
		conn.SetMaxOpenConns(maxConns)
		t.Cleanup(func() { _ = conn.Close() })
		require.NoError(t, conn.PingContext(context.Background()))
		return conn
	}

	// Writer first: the in-memory database lives as long as one connection does.
	db := &DB{Writer: open(1), Reader: open(4), path: dsn}

	_, err := RunMigrations(db.Writer)
	require.NoError(t, err, "run migrations")

	return db
}
