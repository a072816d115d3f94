package repository

import (
	"errors"
	"sync"

	"github.com/clipora/video-backend/internal/model"
)

var (
	ErrTransactionNotFound = errors.New("TRANSACTION_NOT_FOUND")
	ErrUserNotFound        = errors.New("USER_NOT_FOUND")
)

// Ledger is the combined transaction + user store. Mutations are
// whole-record replace; callers own the read-modify-write sequence and
// must hold the matching key lock while performing it (see KeyMutex).
type Ledger interface {
	GetTransaction(paymentRef string) (model.Transaction, error)
	PutTransaction(tx model.Transaction)
	GetUser(userID string) (model.User, error)
	PutUser(user model.User)
	ListTransactions() []model.Transaction
	ListUserTransactions(userID string) []model.Transaction
	CountTransactions() int
	CountUsers() int
}

// ledger keeps everything in process memory. Records never leave the maps;
// the store is append/update only for the lifetime of the process.
type ledger struct {
	mu           sync.RWMutex
	transactions map[string]model.Transaction
	users        map[string]model.User
}

func NewLedger() Ledger {
	return &ledger{
		transactions: make(map[string]model.Transaction),
		users:        make(map[string]model.User),
	}
}

func (l *ledger) GetTransaction(paymentRef string) (model.Transaction, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	tx, ok := l.transactions[paymentRef]
	if !ok {
		return model.Transaction{}, ErrTransactionNotFound
	}

	return tx, nil
}

func (l *ledger) PutTransaction(tx model.Transaction) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.transactions[tx.PaymentRef] = tx
}

func (l *ledger) GetUser(userID string) (model.User, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	user, ok := l.users[userID]
	if !ok {
		return model.User{}, ErrUserNotFound
	}

	return user, nil
}

func (l *ledger) PutUser(user model.User) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.users[user.UserID] = user
}

func (l *ledger) ListTransactions() []model.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()

	transactions := make([]model.Transaction, 0, len(l.transactions))
	for _, tx := range l.transactions {
		transactions = append(transactions, tx)
	}

	return transactions
}

func (l *ledger) ListUserTransactions(userID string) []model.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var transactions []model.Transaction
	for _, tx := range l.transactions {
		if tx.UserID == userID {
			transactions = append(transactions, tx)
		}
	}

	return transactions
}

func (l *ledger) CountTransactions() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.transactions)
}

func (l *ledger) CountUsers() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.users)
}
