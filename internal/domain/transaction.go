package domain

import (
	"fmt"
	"time"
)

// Transaction status values as stored in the data files.
const (
	TransactionPending   = "pending"
	TransactionCompleted = "completed"
	TransactionCancelled = "cancelled"
)

// ValidTransactionStatus reports whether s is one of the three known
// transaction statuses.
func ValidTransactionStatus(s string) bool {
	return s == TransactionPending || s == TransactionCompleted || s == TransactionCancelled
}

// Transaction records a deal between a client and a property. The property
// and client references are plain IDs; referential checks happen at the
// agency level.
type Transaction struct {
	id         string
	propertyID string
	clientID   string
	date       time.Time
	finalPrice float64
	status     string
	notes      string
}

// NewTransaction validates the fields and stamps the deal with the current
// time.
func NewTransaction(id, propertyID, clientID string, finalPrice float64, status, notes string) (*Transaction, error) {
	return RestoreTransaction(id, propertyID, clientID, Now(), finalPrice, status, notes)
}

// RestoreTransaction rebuilds a transaction with a known date. Used by the
// persistence layer; applies the same validation as NewTransaction.
func RestoreTransaction(id, propertyID, clientID string, date time.Time, finalPrice float64, status, notes string) (*Transaction, error) {
	if !ValidNumericID(id) {
		return nil, fmt.Errorf("%w: invalid id: must be 6-8 digits only", ErrValidation)
	}
	if propertyID == "" {
		return nil, fmt.Errorf("%w: property id cannot be empty", ErrValidation)
	}
	if clientID == "" {
		return nil, fmt.Errorf("%w: client id cannot be empty", ErrValidation)
	}
	if finalPrice <= 0 {
		return nil, fmt.Errorf("%w: final price must be positive", ErrValidation)
	}
	if !ValidTransactionStatus(status) {
		return nil, fmt.Errorf("%w: invalid status %q", ErrValidation, status)
	}
	return &Transaction{
		id:         id,
		propertyID: propertyID,
		clientID:   clientID,
		date:       date,
		finalPrice: finalPrice,
		status:     status,
		notes:      notes,
	}, nil
}

func (t *Transaction) ID() string          { return t.id }
func (t *Transaction) PropertyID() string  { return t.propertyID }
func (t *Transaction) ClientID() string    { return t.clientID }
func (t *Transaction) Date() time.Time     { return t.date }
func (t *Transaction) FinalPrice() float64 { return t.finalPrice }
func (t *Transaction) Status() string      { return t.status }
func (t *Transaction) Notes() string       { return t.notes }

func (t *Transaction) SetStatus(status string) error {
	if !ValidTransactionStatus(status) {
		return fmt.Errorf("%w: invalid status %q", ErrValidation, status)
	}
	t.status = status
	return nil
}

func (t *Transaction) SetFinalPrice(price float64) error {
	if price <= 0 {
		return fmt.Errorf("%w: final price must be positive", ErrValidation)
	}
	t.finalPrice = price
	return nil
}

func (t *Transaction) SetNotes(notes string) { t.notes = notes }

// FileRecord renders the transactions data file line.
func (t *Transaction) FileRecord() string {
	return joinRecord([]string{
		t.id,
		t.propertyID,
		t.clientID,
		FormatTime(t.date),
		formatNumber(t.finalPrice),
		t.status,
		t.notes,
	})
}

func (t *Transaction) String() string {
	return fmt.Sprintf("Transaction %s: property %s, client %s, %.2f rub., %s", t.id, t.propertyID, t.clientID, t.finalPrice, t.status)
}
