package escrow

import (
	"errors"
	"fmt"
	"sync"

	"huddle-auction/internal/models"
)

//go:generate mockgen -source=escrow.go -destination=mock_escrow.go -package=escrow

// Controller is a thin facade over the monetary ledger. It is stateless;
// every call must be paired one-to-one with a bid status transition.
type Controller interface {
	// Reserve earmarks funds from the account's free balance.
	Reserve(account string, amount models.Balance) error
	// Release returns previously reserved funds to the account's free balance.
	Release(account string, amount models.Balance) error
	// Repatriate moves reserved funds from one account into another account's
	// free balance (transfer of the reservation, not a fresh transfer).
	Repatriate(from, to string, amount models.Balance) error
}

// Ledger-level errors
var (
	ErrInsufficientFree     = errors.New("insufficient free balance")
	ErrInsufficientReserved = errors.New("insufficient reserved balance")
)

// MemoryLedger is a concurrency-safe in-memory monetary ledger implementing
// Controller. It stands in for the external ledger in tests and local runs.
type MemoryLedger struct {
	mu       sync.Mutex
	free     map[string]models.Balance
	reserved map[string]models.Balance
}

// NewMemoryLedger creates an empty ledger.
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		free:     make(map[string]models.Balance),
		reserved: make(map[string]models.Balance),
	}
}

// Deposit credits the account's free balance.
func (l *MemoryLedger) Deposit(account string, amount models.Balance) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.free[account] += amount
}

// Reserve moves funds from free to reserved.
func (l *MemoryLedger) Reserve(account string, amount models.Balance) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.free[account] < amount {
		return fmt.Errorf("reserve %d for %s: %w", amount, account, ErrInsufficientFree)
	}
	l.free[account] -= amount
	l.reserved[account] += amount
	return nil
}

// Release moves funds from reserved back to free.
func (l *MemoryLedger) Release(account string, amount models.Balance) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.reserved[account] < amount {
		return fmt.Errorf("release %d for %s: %w", amount, account, ErrInsufficientReserved)
	}
	l.reserved[account] -= amount
	l.free[account] += amount
	return nil
}

// Repatriate moves reserved funds of `from` into the free balance of `to`.
func (l *MemoryLedger) Repatriate(from, to string, amount models.Balance) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.reserved[from] < amount {
		return fmt.Errorf("repatriate %d from %s to %s: %w", amount, from, to, ErrInsufficientReserved)
	}
	l.reserved[from] -= amount
	l.free[to] += amount
	return nil
}

// FreeBalance returns the account's free balance.
func (l *MemoryLedger) FreeBalance(account string) models.Balance {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.free[account]
}

// ReservedBalance returns the account's reserved balance.
func (l *MemoryLedger) ReservedBalance(account string) models.Balance {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.reserved[account]
}
