package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user_ledger/internal/domain"
)

func TestLedgerStoreLoadMissing(t *testing.T) {
	s, err := OpenLedgerStore(t.TempDir())
	require.NoError(t, err)
	txs, err := s.LoadFor(42)
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestLedgerStoreRoundTrip(t *testing.T) {
	s, err := OpenLedgerStore(t.TempDir())
	require.NoError(t, err)
	ts := time.Date(2024, 3, 1, 10, 30, 0, 123, time.UTC)
	in := []domain.Transaction{
		{ID: 1, Type: domain.Deposit, Amount: decimal.RequireFromString("50.25"), Timestamp: ts},
		{ID: 4, Type: domain.Withdrawal, Amount: decimal.RequireFromString("20"), Timestamp: ts.Add(time.Minute)},
	}
	require.NoError(t, s.SaveFor(7, in))

	out, err := s.LoadFor(7)
	require.NoError(t, err)
	require.Len(t, out, 2)
	for i := range in {
		assert.Equal(t, in[i].ID, out[i].ID)
		assert.Equal(t, in[i].Type, out[i].Type)
		assert.True(t, in[i].Amount.Equal(out[i].Amount))
		assert.True(t, in[i].Timestamp.Equal(out[i].Timestamp))
	}
}

func TestLedgerStoreWritesBareNumbers(t *testing.T) {
	s, err := OpenLedgerStore(t.TempDir())
	require.NoError(t, err)
	ts := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	require.NoError(t, s.SaveFor(1, []domain.Transaction{
		{ID: 1, Type: domain.Deposit, Amount: decimal.NewFromInt(50), Timestamp: ts},
	}))

	data, err := os.ReadFile(s.PathFor(1))
	require.NoError(t, err)
	assert.JSONEq(t, `[{"transaction_id":1,"transaction_type":"Deposit","amount":50,"timestamp":"2024-03-01T10:30:00Z"}]`, string(data))
}

func TestLedgerStoreCounterSeededFromDisk(t *testing.T) {
	dir := t.TempDir()
	s, err := OpenLedgerStore(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, s.NextTransactionID())

	ts := time.Now().UTC()
	require.NoError(t, s.SaveFor(1, []domain.Transaction{{ID: 3, Type: domain.Deposit, Amount: decimal.NewFromInt(1), Timestamp: ts}}))
	require.NoError(t, s.SaveFor(2, []domain.Transaction{{ID: 9, Type: domain.Deposit, Amount: decimal.NewFromInt(1), Timestamp: ts}}))
	require.NoError(t, os.WriteFile(dir+"/transactions_notanid.json", []byte("garbage"), 0o600))

	reopened, err := OpenLedgerStore(dir)
	require.NoError(t, err)
	assert.Equal(t, 10, reopened.NextTransactionID())
	assert.Equal(t, 11, reopened.NextTransactionID())
}

func TestLedgerStoreCounterSurvivesRemove(t *testing.T) {
	dir := t.TempDir()
	s, err := OpenLedgerStore(dir)
	require.NoError(t, err)
	ts := time.Now().UTC()
	require.NoError(t, s.SaveFor(1, []domain.Transaction{{ID: s.NextTransactionID(), Type: domain.Deposit, Amount: decimal.NewFromInt(1), Timestamp: ts}}))
	require.NoError(t, s.SaveFor(2, []domain.Transaction{{ID: 7, Type: domain.Deposit, Amount: decimal.NewFromInt(1), Timestamp: ts}}))
	require.NoError(t, s.Remove(2))

	reopened, err := OpenLedgerStore(dir)
	require.NoError(t, err)
	assert.Equal(t, 8, reopened.NextTransactionID())

	data, err := os.ReadFile(filepath.Join(dir, seqFile))
	require.NoError(t, err)
	assert.JSONEq(t, `{"last_transaction_id":7}`, string(data))
}

func TestLedgerStoreRemove(t *testing.T) {
	s, err := OpenLedgerStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, s.SaveFor(5, []domain.Transaction{}))
	require.NoError(t, s.Remove(5))
	_, err = os.Stat(s.PathFor(5))
	assert.True(t, os.IsNotExist(err))
	assert.NoError(t, s.Remove(5))
}

func TestUserIDFromFile(t *testing.T) {
	id, ok := userIDFromFile("transactions_12.json")
	assert.True(t, ok)
	assert.Equal(t, 12, id)

	_, ok = userIDFromFile("transactions_x.json")
	assert.False(t, ok)
	_, ok = userIDFromFile("users.json")
	assert.False(t, ok)
}
