package service

import (
	"context" // Cache invalidation
	"fmt"     // Error wrapping
	"sync"    // Serializes access to the in-memory users
	"time"    // Transaction timestamps

	"github.com/google/uuid"        // Revision epoch
	"github.com/shopspring/decimal" // Exact amounts
	"github.com/sirupsen/logrus"    // Structured logging

	"user_ledger/internal/domain" // Domain models
	"user_ledger/internal/store"  // Id allocation
	"user_ledger/internal/utils"  // Password hashing
)

// RecordRepository persists user identity fields
type RecordRepository interface {
	Load() ([]domain.User, error)
	Save(users []domain.User) error
}

// LedgerRepository persists per-user transaction history
type LedgerRepository interface {
	LoadFor(userID int) ([]domain.Transaction, error)
	SaveFor(userID int, txs []domain.Transaction) error
	Remove(userID int) error
	NextTransactionID() int
}

// Invalidator is told whenever account data changes so read caches can drop
// entries cached under the revision that was just superseded
type Invalidator interface {
	Invalidate(ctx context.Context, revision string) error
}

// Option customizes an AccountService
type Option func(*AccountService)

// WithHasher sets how passwords are stored and compared
func WithHasher(h utils.PasswordHasher) Option {
	return func(s *AccountService) { s.hasher = h }
}

// WithInvalidator registers a cache to invalidate after every mutation
func WithInvalidator(inv Invalidator) Option {
	return func(s *AccountService) { s.cache = inv }
}

// WithLogger replaces the standard logrus logger
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *AccountService) { s.log = log }
}

// WithClock replaces time.Now for transaction timestamps
func WithClock(now func() time.Time) Option {
	return func(s *AccountService) { s.now = now }
}

// AccountService exposes user CRUD plus deposit and withdraw over the record and ledger stores.
// Users are kept in insertion order; every mutation rewrites the record file.
type AccountService struct {
	mu      sync.Mutex
	records RecordRepository
	ledger  LedgerRepository
	hasher  utils.PasswordHasher
	cache   Invalidator
	log     logrus.FieldLogger
	now     func() time.Time
	users   []domain.User // Insertion order, also display order
	nextID  int           // Only ever increases within a process
	epoch   string        // Distinguishes revisions of different processes
	version uint64        // Bumped on every committed mutation
}

// NewAccountService loads every user and ledger and recomputes balances from the ledgers
func NewAccountService(records RecordRepository, ledger LedgerRepository, opts ...Option) (*AccountService, error) {
	s := &AccountService{
		records: records,
		ledger:  ledger,
		hasher:  utils.PlainHasher{},
		log:     logrus.StandardLogger(),
		now:     time.Now,
		epoch:   uuid.NewString(),
	}
	for _, opt := range opts {
		opt(s)
	}
	users, err := records.Load()
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	for i := range users {
		txs, err := ledger.LoadFor(users[i].ID)
		if err != nil {
			return nil, fmt.Errorf("load ledger: %w", err)
		}
		users[i].Transactions = txs
		users[i].Balance = domain.BalanceOf(txs)
	}
	s.users = users
	s.nextID = store.NextID(users)
	return s, nil
}

// Create registers a new user with a zero balance and an empty ledger
func (s *AccountService) Create(name, email, password string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	user := domain.User{
		ID:           s.nextID,
		Name:         name,
		Email:        email,
		Password:     stored,
		Balance:      decimal.Zero,
		Transactions: []domain.Transaction{},
	}
	users := append(s.snapshot(), user)
	if err := s.records.Save(users); err != nil {
		s.logFailure("create_user", user.ID, err)
		return nil, err
	}
	s.users = users
	s.nextID++ // Consumed even if later deleted
	s.log.WithFields(logrus.Fields{
		"user_id":   user.ID,                      // New user id
		"type":      "create_user",                // Operation
		"timestamp": s.now().Format(time.RFC3339), // Current timestamp
	}).Info("User created")
	s.invalidate()
	out := user.Clone()
	return &out, nil
}

// ReadAll returns a copy of every user in insertion order
func (s *AccountService) ReadAll() []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.User, len(s.users))
	for i, u := range s.users {
		out[i] = u.Clone()
	}
	return out
}

// ReadAllAt returns ReadAll together with the revision it reflects
func (s *AccountService) ReadAllAt() ([]domain.User, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.User, len(s.users))
	for i, u := range s.users {
		out[i] = u.Clone()
	}
	return out, s.revision()
}

// Revision identifies the current state of the users. It changes on every
// committed mutation, so it can key caches of derived data.
func (s *AccountService) Revision() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revision()
}

func (s *AccountService) revision() string {
	return fmt.Sprintf("%s:%d", s.epoch, s.version)
}

// Get returns a copy of the user with id
func (s *AccountService) Get(id int) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	out := s.users[i].Clone()
	return &out, nil
}

// Transactions returns the ledger of the user with id, oldest first
func (s *AccountService) Transactions(id int) ([]domain.Transaction, error) {
	u, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	return u.Transactions, nil
}

// Update replaces the identity fields present in upd and keeps the rest
func (s *AccountService) Update(id int, upd domain.UserUpdate) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	if upd.Password != nil {
		stored, err := s.hasher.Hash(*upd.Password)
		if err != nil {
			return nil, err
		}
		upd.Password = &stored
	}
	users := s.snapshot()
	upd.Apply(&users[i])
	if err := s.records.Save(users); err != nil {
		s.logFailure("update_user", id, err)
		return nil, err
	}
	s.users = users
	s.log.WithFields(logrus.Fields{
		"user_id":   id,                           // Updated user id
		"type":      "update_user",                // Operation
		"timestamp": s.now().Format(time.RFC3339), // Current timestamp
	}).Info("User updated")
	s.invalidate()
	out := users[i].Clone()
	return &out, nil
}

// Delete removes the user with id and its ledger file, reporting whether the user existed
func (s *AccountService) Delete(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}
	snap := s.snapshot()
	users := append(snap[:i:i], snap[i+1:]...)
	if err := s.records.Save(users); err != nil {
		s.logFailure("delete_user", id, err)
		return false, err
	}
	s.users = users
	if err := s.ledger.Remove(id); err != nil {
		s.logFailure("delete_ledger", id, err) // User is already gone from the record file
	}
	s.log.WithFields(logrus.Fields{
		"user_id":   id,                           // Deleted user id
		"type":      "delete_user",                // Operation
		"timestamp": s.now().Format(time.RFC3339), // Current timestamp
	}).Info("User deleted")
	s.invalidate()
	return true, nil
}

// Deposit adds amount to the balance of the user with id and records a Deposit
func (s *AccountService) Deposit(id int, amount decimal.Decimal) (*domain.User, error) {
	if err := domain.CheckAmount(amount); err != nil {
		return nil, err
	}
	return s.post(id, domain.Deposit, amount)
}

// Withdraw takes amount from the balance of the user with id and records a Withdrawal.
// The balance is left unchanged when it is smaller than amount.
func (s *AccountService) Withdraw(id int, amount decimal.Decimal) (*domain.User, error) {
	if err := domain.CheckAmount(amount); err != nil {
		return nil, err
	}
	return s.post(id, domain.Withdrawal, amount)
}

// post applies one ledger entry and writes both the record file and the user's ledger file
func (s *AccountService) post(id int, typ domain.TransactionType, amount decimal.Decimal) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	users := s.snapshot()
	user := &users[i]
	switch typ {
	case domain.Deposit:
		user.Balance = user.Balance.Add(amount)
	case domain.Withdrawal:
		if err := domain.CanWithdraw(user.Balance, amount); err != nil {
			s.log.WithFields(logrus.Fields{
				"user_id": id,                    // User id
				"amount":  amount.String(),       // Requested amount
				"balance": user.Balance.String(), // Current balance
			}).Warn("Withdrawal rejected")
			return nil, err
		}
		user.Balance = user.Balance.Sub(amount)
	}
	now := s.now()
	user.Transactions = append(user.Transactions, domain.Transaction{
		ID:        s.ledger.NextTransactionID(), // Shared across all users
		Type:      typ,
		Amount:    amount,
		Timestamp: now,
	})
	if err := s.records.Save(users); err != nil {
		s.logFailure(string(typ), id, err)
		return nil, err
	}
	if err := s.ledger.SaveFor(id, user.Transactions); err != nil {
		s.logFailure(string(typ), id, err)
		return nil, err
	}
	s.users = users
	s.log.WithFields(logrus.Fields{
		"user_id":   id,                       // User id
		"amount":    amount.String(),          // Amount moved
		"balance":   user.Balance.String(),    // Balance after the transaction
		"type":      typ,                      // Transaction type
		"timestamp": now.Format(time.RFC3339), // Transaction timestamp
	}).Info("Balance transaction")
	s.invalidate()
	out := user.Clone()
	return &out, nil
}

// Login returns the user whose email and password both match exactly
func (s *AccountService) Login(email, password string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email && s.hasher.Matches(u.Password, password) {
			out := u.Clone()
			return &out, nil
		}
	}
	return nil, domain.ErrAuthFailed
}

// indexOf returns the position of the first user with id, or -1
func (s *AccountService) indexOf(id int) int {
	for i, u := range s.users {
		if u.ID == id {
			return i
		}
	}
	return -1
}

// snapshot copies the users so a failed save leaves the committed state untouched
func (s *AccountService) snapshot() []domain.User {
	out := make([]domain.User, len(s.users), len(s.users)+1)
	for i, u := range s.users {
		out[i] = u.Clone()
	}
	return out
}

// invalidate moves to the next revision and drops caches of the previous one
func (s *AccountService) invalidate() {
	prev := s.revision()
	s.version++
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(context.Background(), prev); err != nil {
		s.log.WithError(err).Warn("Cache invalidation failed")
	}
}

func (s *AccountService) logFailure(op string, id int, err error) {
	s.log.WithFields(logrus.Fields{
		"user_id": id,          // User id
		"type":    op,          // Operation
		"error":   err.Error(), // Error message
	}).Error("Persisting users failed")
}
