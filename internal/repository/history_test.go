package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slipverify/constants"
)

func openTestDB(t *testing.T) HistoryRepository {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewHistoryRepository(db, nil)
}

func TestInsertAndListVerifications(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	amt := "150.50"
	older := &Verification{
		Recipient: "0812345678",
		Status:    constants.StatusNoAmount,
		Message:   "amount not found in slip.",
		CreatedAt: time.Now().UTC().Add(-time.Hour),
	}
	newer := &Verification{
		Recipient: "0812345678",
		Status:    constants.StatusSuccess,
		Amount:    &amt,
		Message:   "verification passed: found identifier and amount 150.50.",
	}
	require.NoError(t, repo.InsertVerification(ctx, older))
	require.NoError(t, repo.InsertVerification(ctx, newer))

	got, err := repo.ListVerifications(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// newest first
	assert.Equal(t, constants.StatusSuccess, got[0].Status)
	require.NotNil(t, got[0].Amount)
	assert.Equal(t, "150.50", *got[0].Amount)
	assert.Equal(t, constants.StatusNoAmount, got[1].Status)
	assert.Nil(t, got[1].Amount)
}

func TestListVerificationsLimit(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.InsertVerification(ctx, &Verification{
			Recipient: "0812345678",
			Status:    constants.StatusNoRecipient,
			Message:   "identifier (0812345678) not found in slip.",
		}))
	}
	got, err := repo.ListVerifications(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestInsertCode(t *testing.T) {
	repo := openTestDB(t)
	c := &GeneratedCode{Recipient: "140001234567890", Kind: "WALLET", Amount: "0"}
	require.NoError(t, repo.InsertCode(context.Background(), c))
	assert.NotEqual(t, c.ID.String(), "00000000-0000-0000-0000-000000000000")
}
