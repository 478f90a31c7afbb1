package domain

import (
	"fmt"
	"time"
)

// Bid is a single offer placed in an auction. The client name is a
// denormalized snapshot taken when the bid is placed.
type Bid struct {
	clientID   string
	clientName string
	amount     float64
	placedAt   time.Time
}

// NewBid validates the amount and stamps the bid with the current time.
func NewBid(clientID, clientName string, amount float64) (*Bid, error) {
	return RestoreBid(clientID, clientName, amount, Now())
}

// RestoreBid rebuilds a bid with a known timestamp. Used by the
// persistence layer.
func RestoreBid(clientID, clientName string, amount float64, placedAt time.Time) (*Bid, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: bid amount must be positive", ErrValidation)
	}
	return &Bid{clientID: clientID, clientName: clientName, amount: amount, placedAt: placedAt}, nil
}

func (b *Bid) ClientID() string    { return b.clientID }
func (b *Bid) ClientName() string  { return b.clientName }
func (b *Bid) Amount() float64     { return b.amount }
func (b *Bid) PlacedAt() time.Time { return b.placedAt }

// FileRecord renders the bid's trailing fields of a BID line. The leading
// BID tag and auction id are written by the persistence layer.
func (b *Bid) FileRecord() string {
	return joinRecord([]string{b.clientID, b.clientName, formatMoney(b.amount), FormatTime(b.placedAt)})
}

func (b *Bid) String() string {
	return fmt.Sprintf("%s (id %s): %.2f rub. at %s", b.clientName, b.clientID, b.amount, FormatTime(b.placedAt))
}
