package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user_ledger/internal/domain"
)

func TestRecordStoreLoadMissingFile(t *testing.T) {
	s := NewRecordStore(filepath.Join(t.TempDir(), "users.json"))
	users, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestRecordStoreRoundTrip(t *testing.T) {
	s := NewRecordStore(filepath.Join(t.TempDir(), "users.json"))
	in := []domain.User{
		{ID: 1, Name: "Alice", Email: "a@x.com", Password: "p1"},
		{ID: 3, Name: "", Email: "c@x.com", Password: ""},
	}
	require.NoError(t, s.Save(in))

	out, err := s.Load()
	require.NoError(t, err)
	require.Len(t, out, 2)
	for i := range in {
		assert.Equal(t, in[i].ID, out[i].ID)
		assert.Equal(t, in[i].Name, out[i].Name)
		assert.Equal(t, in[i].Email, out[i].Email)
		assert.Equal(t, in[i].Password, out[i].Password)
	}
}

func TestRecordStoreFileFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	s := NewRecordStore(path)
	require.NoError(t, s.Save([]domain.User{{ID: 1, Name: "Alice", Email: "a@x.com", Password: "p1"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"user_id":1,"name":"Alice","email":"a@x.com","password":"p1"}]`, string(data))
}

func TestRecordStoreLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	_, err := NewRecordStore(path).Load()
	assert.Error(t, err)
}

func TestNextID(t *testing.T) {
	assert.Equal(t, 1, NextID(nil))
	assert.Equal(t, 8, NextID([]domain.User{{ID: 2}, {ID: 7}, {ID: 5}}))
}
