package services

import (
	"os"
	"path/filepath"
	"testing"

	"carwash-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotLoadMissingFile(t *testing.T) {
	store := NewSnapshotStore(filepath.Join(t.TempDir(), "sales.json"))

	sales := store.Load()

	assert.NotNil(t, sales)
	assert.Empty(t, sales)
}

func TestSnapshotLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	sales := NewSnapshotStore(path).Load()

	assert.NotNil(t, sales)
	assert.Empty(t, sales)
}

func TestSnapshotSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.json")
	store := NewSnapshotStore(path)

	in := []models.Sale{
		record("2024-01-01", "09:00", "Alice", "ABC 123 GP", "", models.PaymentCash),
		record("2024-01-02", "", "Bob", "", "White bakkie", models.PaymentAccount),
	}
	require.NoError(t, store.Save(in))

	out := store.Load()

	require.Len(t, out, 2)
	assert.Equal(t, "Alice", out[0].CustomerName)
	assert.Equal(t, "2024-01-02", out[1].ServiceDate)
	assert.Equal(t, models.PaymentAccount, out[1].PaymentType)
}
