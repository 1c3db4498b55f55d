package db

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"user_ledger/internal/domain"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	gdb, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return gdb, mock
}

func TestMirrorUpsertsAndPrunes(t *testing.T) {
	gdb, mock := newMockDB(t)
	users := []domain.User{{
		ID:      1,
		Name:    "Alice",
		Email:   "a@x.com",
		Balance: decimal.NewFromInt(30),
		Transactions: []domain.Transaction{
			{ID: 1, Type: domain.Deposit, Amount: decimal.NewFromInt(50), Timestamp: time.Now()},
			{ID: 2, Type: domain.Withdrawal, Amount: decimal.NewFromInt(20), Timestamp: time.Now()},
		},
	}}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `transactions`").WillReturnResult(sqlmock.NewResult(2, 2))
	mock.ExpectExec("DELETE FROM `transactions`").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM `users`").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	require.NoError(t, Mirror(gdb, users))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMirrorRollsBackOnError(t *testing.T) {
	gdb, mock := newMockDB(t)
	users := []domain.User{{ID: 1, Name: "Alice", Email: "a@x.com"}}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	assert.Error(t, Mirror(gdb, users))
	assert.NoError(t, mock.ExpectationsWereMet())
}
