package store

import (
	"encoding/json" // Ledger file encoding
	"errors"        // Error inspection
	"fmt"           // Error wrapping and file names
	"os"            // File access
	"path/filepath" // Ledger file paths
	"strconv"       // Id parsing from file names
	"strings"       // File name trimming
	"sync/atomic"   // Process-wide transaction counter
	"time"          // Timestamps

	"github.com/shopspring/decimal" // Exact amounts

	"user_ledger/internal/domain" // Domain models
)

const (
	ledgerPrefix = "transactions_"         // Ledger file name prefix
	ledgerSuffix = ".json"                 // Ledger file name suffix
	seqFile      = "transactions_seq.json" // Highest transaction id ever handed out
)

// sequenceRecord is the on-disk shape of the transaction id high-water mark
type sequenceRecord struct {
	LastTransactionID int64 `json:"last_transaction_id"`
}

// transactionRecord is the on-disk shape of one ledger entry. Amount is written as a bare JSON number.
type transactionRecord struct {
	TransactionID   int         `json:"transaction_id"`
	TransactionType string      `json:"transaction_type"`
	Amount          json.Number `json:"amount"`
	Timestamp       string      `json:"timestamp"`
}

// LedgerStore persists each user's transactions in its own JSON file and
// owns the single transaction id counter shared by all users.
type LedgerStore struct {
	dir    string       // Directory holding ledger files
	lastID atomic.Int64 // Highest transaction id handed out or found on disk
}

// OpenLedgerStore returns a store rooted at dir and seeds the transaction
// counter from the stored high-water mark or the highest id present in any
// ledger file there, whichever is larger. Ids of deleted ledgers stay consumed.
func OpenLedgerStore(dir string) (*LedgerStore, error) {
	s := &LedgerStore{dir: dir}
	maxID, err := s.loadSequence()
	if err != nil {
		return nil, err
	}
	paths, err := filepath.Glob(filepath.Join(dir, ledgerPrefix+"*"+ledgerSuffix))
	if err != nil {
		return nil, fmt.Errorf("scan ledger dir: %w", err)
	}
	for _, p := range paths {
		userID, ok := userIDFromFile(filepath.Base(p))
		if !ok {
			continue // Not one of ours
		}
		txs, err := s.LoadFor(userID)
		if err != nil {
			return nil, err
		}
		for _, t := range txs {
			if int64(t.ID) > maxID {
				maxID = int64(t.ID)
			}
		}
	}
	s.lastID.Store(maxID)
	return s, nil
}

// NextTransactionID hands out the next process-wide transaction id
func (s *LedgerStore) NextTransactionID() int {
	return int(s.lastID.Add(1))
}

// observe raises the counter to id when a caller saved an id it did not hand out
func (s *LedgerStore) observe(id int64) {
	for {
		cur := s.lastID.Load()
		if id <= cur || s.lastID.CompareAndSwap(cur, id) {
			return
		}
	}
}

// PathFor returns the ledger file path for userID
func (s *LedgerStore) PathFor(userID int) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s%d%s", ledgerPrefix, userID, ledgerSuffix))
}

// LoadFor reads the ledger of userID. A missing file means an empty ledger.
func (s *LedgerStore) LoadFor(userID int) ([]domain.Transaction, error) {
	data, err := os.ReadFile(s.PathFor(userID))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []domain.Transaction{}, nil
		}
		return nil, fmt.Errorf("read ledger of user %d: %w", userID, err)
	}
	var records []transactionRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode ledger of user %d: %w", userID, err)
	}
	txs := make([]domain.Transaction, 0, len(records))
	for _, r := range records {
		amount, err := decimal.NewFromString(r.Amount.String())
		if err != nil {
			return nil, fmt.Errorf("ledger of user %d: transaction %d amount: %w", userID, r.TransactionID, err)
		}
		ts, err := time.Parse(time.RFC3339Nano, r.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("ledger of user %d: transaction %d timestamp: %w", userID, r.TransactionID, err)
		}
		txs = append(txs, domain.Transaction{
			ID:        r.TransactionID,
			Type:      domain.TransactionType(r.TransactionType),
			Amount:    amount,
			Timestamp: ts,
		})
	}
	return txs, nil
}

// SaveFor overwrites the ledger of userID with txs and persists the
// transaction id high-water mark
func (s *LedgerStore) SaveFor(userID int, txs []domain.Transaction) error {
	records := make([]transactionRecord, 0, len(txs))
	for _, t := range txs {
		s.observe(int64(t.ID))
		records = append(records, transactionRecord{
			TransactionID:   t.ID,
			TransactionType: string(t.Type),
			Amount:          json.Number(t.Amount.String()),
			Timestamp:       t.Timestamp.Format(time.RFC3339Nano),
		})
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode ledger of user %d: %w", userID, err)
	}
	if err := os.WriteFile(s.PathFor(userID), data, 0o600); err != nil {
		return fmt.Errorf("write ledger of user %d: %w", userID, err)
	}
	return s.saveSequence()
}

// Remove deletes the ledger file of userID, if any
func (s *LedgerStore) Remove(userID int) error {
	if err := os.Remove(s.PathFor(userID)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove ledger of user %d: %w", userID, err)
	}
	return s.saveSequence()
}

func (s *LedgerStore) loadSequence() (int64, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, seqFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("read transaction sequence: %w", err)
	}
	var rec sequenceRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return 0, fmt.Errorf("decode transaction sequence: %w", err)
	}
	return rec.LastTransactionID, nil
}

// saveSequence records the highest transaction id handed out so far
func (s *LedgerStore) saveSequence() error {
	data, err := json.MarshalIndent(sequenceRecord{LastTransactionID: s.lastID.Load()}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode transaction sequence: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, seqFile), data, 0o600); err != nil {
		return fmt.Errorf("write transaction sequence: %w", err)
	}
	return nil
}

// userIDFromFile parses "transactions_<id>.json"
func userIDFromFile(name string) (int, bool) {
	if !strings.HasPrefix(name, ledgerPrefix) || !strings.HasSuffix(name, ledgerSuffix) {
		return 0, false
	}
	id, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(name, ledgerPrefix), ledgerSuffix))
	if err != nil {
		return 0, false
	}
	return id, true
}
