package managers

import (
	"fmt"

	"estate/internal/domain"
)

// AuctionManager owns the agency's auctions.
type AuctionManager struct {
	auctions []*domain.Auction
}

func NewAuctionManager() *AuctionManager { return &AuctionManager{} }

// Add stores an auction, rejecting nil values and duplicate ids.
func (m *AuctionManager) Add(a *domain.Auction) error {
	if a == nil {
		return fmt.Errorf("%w: auction", ErrNilEntity)
	}
	if _, ok := findByID(m.auctions, a.ID()); ok {
		return fmt.Errorf("%w: auction with id %s already exists", ErrDuplicateID, a.ID())
	}
	m.auctions = append(m.auctions, a)
	return nil
}

// Remove deletes the auction with the given id and reports whether a
// removal happened.
func (m *AuctionManager) Remove(id string) bool {
	var removed bool
	m.auctions, removed = removeByID(m.auctions, id)
	return removed
}

// Find returns the auction with the given id, or nil.
func (m *AuctionManager) Find(id string) *domain.Auction {
	if a, ok := findByID(m.auctions, id); ok {
		return a
	}
	return nil
}

// All returns every auction in insertion order.
func (m *AuctionManager) All() []*domain.Auction {
	out := make([]*domain.Auction, len(m.auctions))
	copy(out, m.auctions)
	return out
}

// Active returns the auctions still open for bids.
func (m *AuctionManager) Active() []*domain.Auction {
	var out []*domain.Auction
	for _, a := range m.auctions {
		if a.IsActive() {
			out = append(out, a)
		}
	}
	return out
}

// Completed returns the auctions that finished with a sale.
func (m *AuctionManager) Completed() []*domain.Auction {
	var out []*domain.Auction
	for _, a := range m.auctions {
		if a.IsCompleted() {
			out = append(out, a)
		}
	}
	return out
}

// ByProperty returns the auctions held over the given property.
func (m *AuctionManager) ByProperty(propertyID string) []*domain.Auction {
	var out []*domain.Auction
	for _, a := range m.auctions {
		if a.PropertyID() == propertyID {
			out = append(out, a)
		}
	}
	return out
}

// SetAuctions replaces the whole collection. Only the persistence layer
// calls this, after a file has been fully parsed.
func (m *AuctionManager) SetAuctions(auctions []*domain.Auction) { m.auctions = auctions }

// Count returns the number of auctions.
func (m *AuctionManager) Count() int { return len(m.auctions) }
