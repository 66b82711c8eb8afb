package localdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpen_CreatesSessionTable(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "anuncia.db")

	db, err := Open(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`INSERT INTO session(key, value) VALUES ('token', 'tok123')`)
	require.NoError(t, err)
}

func TestOpen_Reopen(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "anuncia.db")
	ctx := context.Background()

	db, err := Open(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Re-running migrations against an existing file must be a no-op.
	db, err = Open(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}
