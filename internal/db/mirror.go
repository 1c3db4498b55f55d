package db

import (
	"time" // Timestamps

	"github.com/shopspring/decimal" // Exact amounts
	"github.com/sirupsen/logrus"    // Structured logging
	"gorm.io/gorm"                  // GORM ORM library
	"gorm.io/gorm/clause"           // Upsert clauses

	"user_ledger/internal/domain" // Domain models
)

// UserRow is the reporting copy of a user; passwords are not mirrored
type UserRow struct {
	ID      int             `gorm:"primaryKey;autoIncrement:false"`        // Same id as the users file
	Name    string          `gorm:"size:255"`                              // Display name
	Email   string          `gorm:"size:255;index"`                        // Login email
	Balance decimal.Decimal `gorm:"type:decimal(20,8);not null;default:0"` // Balance recomputed from the ledger
}

// TableName pins the table name
func (UserRow) TableName() string { return "users" }

// TransactionRow is the reporting copy of a ledger entry
type TransactionRow struct {
	ID        int             `gorm:"primaryKey;autoIncrement:false"` // Process-wide transaction id
	UserID    int             `gorm:"index;not null"`                 // Owning user
	Type      string          `gorm:"size:16;not null"`               // Deposit or Withdrawal
	Amount    decimal.Decimal `gorm:"type:decimal(20,8);not null"`    // Positive amount
	CreatedAt time.Time       `gorm:"not null"`                       // Ledger timestamp
}

// TableName pins the table name
func (TransactionRow) TableName() string { return "transactions" }

// Mirror replaces the reporting tables' content with users and their ledgers in one database transaction
func Mirror(db *gorm.DB, users []domain.User) error {
	ids := make([]int, 0, len(users))
	var txRows []TransactionRow
	userRows := make([]UserRow, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
		userRows = append(userRows, UserRow{ID: u.ID, Name: u.Name, Email: u.Email, Balance: u.Balance})
		for _, t := range u.Transactions {
			txRows = append(txRows, TransactionRow{
				ID:        t.ID,
				UserID:    u.ID,
				Type:      string(t.Type),
				Amount:    t.Amount,
				CreatedAt: t.Timestamp,
			})
		}
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if len(userRows) > 0 {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&userRows).Error; err != nil {
				return err // Return error to rollback
			}
		}
		if len(txRows) > 0 {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&txRows).Error; err != nil {
				return err // Return error to rollback
			}
		}
		// Drop rows of users that no longer exist
		if len(ids) == 0 {
			all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
			if err := all.Delete(&TransactionRow{}).Error; err != nil {
				return err
			}
			return all.Delete(&UserRow{}).Error
		}
		if err := tx.Where("user_id NOT IN ?", ids).Delete(&TransactionRow{}).Error; err != nil {
			return err
		}
		return tx.Where("id NOT IN ?", ids).Delete(&UserRow{}).Error
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"users": len(userRows), // Users in the snapshot
			"error": err.Error(),   // Error message
		}).Error("Mirror failed")
		return err
	}
	logrus.WithFields(logrus.Fields{
		"users":        len(userRows), // Users mirrored
		"transactions": len(txRows),   // Transactions mirrored
	}).Info("Mirror completed")
	return nil
}
