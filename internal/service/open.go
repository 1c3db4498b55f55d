package service

import (
	"user_ledger/internal/config" // Application configuration
	"user_ledger/internal/store"  // File-backed stores
	"user_ledger/internal/utils"  // Password hashing
)

// OpenFromConfig builds the account service over the users file and ledger directory named in cfg
func OpenFromConfig(cfg *config.Config, opts ...Option) (*AccountService, error) {
	hasher, err := utils.NewPasswordHasher(cfg.PasswordHashing)
	if err != nil {
		return nil, err
	}
	ledger, err := store.OpenLedgerStore(cfg.LedgerDir)
	if err != nil {
		return nil, err
	}
	opts = append([]Option{WithHasher(hasher)}, opts...)
	return NewAccountService(store.NewRecordStore(cfg.DataFile), ledger, opts...)
}
