package managers

import (
	"fmt"
	"sort"

	"estate/internal/domain"
)

// TransactionManager owns the agency's deal history.
type TransactionManager struct {
	transactions []*domain.Transaction
}

func NewTransactionManager() *TransactionManager { return &TransactionManager{} }

// Add stores a transaction, rejecting nil values and duplicate ids.
func (m *TransactionManager) Add(t *domain.Transaction) error {
	if t == nil {
		return fmt.Errorf("%w: transaction", ErrNilEntity)
	}
	if _, ok := findByID(m.transactions, t.ID()); ok {
		return fmt.Errorf("%w: transaction with id %s already exists", ErrDuplicateID, t.ID())
	}
	m.transactions = append(m.transactions, t)
	return nil
}

// Remove deletes the transaction with the given id and reports whether a
// removal happened.
func (m *TransactionManager) Remove(id string) bool {
	var removed bool
	m.transactions, removed = removeByID(m.transactions, id)
	return removed
}

// Find returns the transaction with the given id, or nil.
func (m *TransactionManager) Find(id string) *domain.Transaction {
	if t, ok := findByID(m.transactions, id); ok {
		return t
	}
	return nil
}

// All returns every transaction in insertion order.
func (m *TransactionManager) All() []*domain.Transaction {
	out := make([]*domain.Transaction, len(m.transactions))
	copy(out, m.transactions)
	return out
}

// ByClient returns the transactions involving the given client.
func (m *TransactionManager) ByClient(clientID string) []*domain.Transaction {
	var out []*domain.Transaction
	for _, t := range m.transactions {
		if t.ClientID() == clientID {
			out = append(out, t)
		}
	}
	return out
}

// ByProperty returns the transactions involving the given property.
func (m *TransactionManager) ByProperty(propertyID string) []*domain.Transaction {
	var out []*domain.Transaction
	for _, t := range m.transactions {
		if t.PropertyID() == propertyID {
			out = append(out, t)
		}
	}
	return out
}

// ByStatus returns the transactions with exactly the given status.
func (m *TransactionManager) ByStatus(status string) []*domain.Transaction {
	var out []*domain.Transaction
	for _, t := range m.transactions {
		if t.Status() == status {
			out = append(out, t)
		}
	}
	return out
}

// SortedByDate returns the transactions ordered by deal date, oldest
// first.
func (m *TransactionManager) SortedByDate() []*domain.Transaction {
	out := m.All()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date().Before(out[j].Date()) })
	return out
}

// SetTransactions replaces the whole collection. Only the persistence
// layer calls this, after a file has been fully parsed.
func (m *TransactionManager) SetTransactions(transactions []*domain.Transaction) {
	m.transactions = transactions
}

// Count returns the number of recorded transactions.
func (m *TransactionManager) Count() int { return len(m.transactions) }
