package domain

import (
	"fmt"
	"time"
)

// Auction status values as stored in the data files.
const (
	AuctionActive    = "active"
	AuctionCompleted = "completed"
	AuctionCancelled = "cancelled"
)

const (
	// buyoutMultiplier fixes the buyout price relative to the starting
	// price at creation time. The buyout is never recomputed afterwards.
	buyoutMultiplier = 1.7

	// minBidIncrement is the smallest amount a new bid must add on top of
	// the current highest one.
	minBidIncrement = 0.01
)

// ValidAuctionStatus reports whether s is one of the three known auction
// statuses.
func ValidAuctionStatus(s string) bool {
	return s == AuctionActive || s == AuctionCompleted || s == AuctionCancelled
}

// Auction runs open bidding over a property. The property address is a
// denormalized snapshot taken at creation. Bids are append-only and kept
// in insertion order.
type Auction struct {
	id              string
	propertyID      string
	propertyAddress string
	startingPrice   float64
	buyoutPrice     float64
	bids            []*Bid
	status          string
	createdAt       time.Time
	completedAt     time.Time
}

// NewAuction opens a new active auction. The buyout price is derived from
// the starting price once, here.
func NewAuction(id, propertyID, propertyAddress string, startingPrice float64) (*Auction, error) {
	if startingPrice <= 0 {
		return nil, fmt.Errorf("%w: starting price must be positive", ErrValidation)
	}
	return &Auction{
		id:              id,
		propertyID:      propertyID,
		propertyAddress: propertyAddress,
		startingPrice:   startingPrice,
		buyoutPrice:     startingPrice * buyoutMultiplier,
		status:          AuctionActive,
		createdAt:       Now(),
	}, nil
}

// RestoreAuction rebuilds an auction from persisted state, keeping the
// stored buyout price, status and timestamps. Bids are re-attached
// afterwards via AppendBid.
func RestoreAuction(id, propertyID, propertyAddress string, startingPrice, buyoutPrice float64, status string, createdAt, completedAt time.Time) (*Auction, error) {
	if startingPrice <= 0 {
		return nil, fmt.Errorf("%w: starting price must be positive", ErrValidation)
	}
	if !ValidAuctionStatus(status) {
		return nil, fmt.Errorf("%w: invalid status %q", ErrValidation, status)
	}
	return &Auction{
		id:              id,
		propertyID:      propertyID,
		propertyAddress: propertyAddress,
		startingPrice:   startingPrice,
		buyoutPrice:     buyoutPrice,
		status:          status,
		createdAt:       createdAt,
		completedAt:     completedAt,
	}, nil
}

func (a *Auction) ID() string              { return a.id }
func (a *Auction) PropertyID() string      { return a.propertyID }
func (a *Auction) PropertyAddress() string { return a.propertyAddress }
func (a *Auction) StartingPrice() float64  { return a.startingPrice }
func (a *Auction) BuyoutPrice() float64    { return a.buyoutPrice }
func (a *Auction) Status() string          { return a.status }
func (a *Auction) CreatedAt() time.Time    { return a.createdAt }
func (a *Auction) CompletedAt() time.Time  { return a.completedAt }

func (a *Auction) IsActive() bool    { return a.status == AuctionActive }
func (a *Auction) IsCompleted() bool { return a.status == AuctionCompleted }

// Bids returns the bids in insertion order. The slice is a fresh copy;
// the bids themselves stay owned by the auction.
func (a *Auction) Bids() []*Bid {
	out := make([]*Bid, len(a.bids))
	copy(out, a.bids)
	return out
}

func (a *Auction) BidCount() int { return len(a.bids) }

// PlaceBid applies the bidding rules. A bid at or above the buyout price
// is accepted and completes the auction immediately. Otherwise the bid
// must reach the starting price, or beat the current highest bid by at
// least one kopeck. Rejected bids leave the auction untouched.
func (a *Auction) PlaceBid(b *Bid) error {
	if a.status != AuctionActive {
		return ErrAuctionNotActive
	}
	if b.Amount() >= a.buyoutPrice {
		a.bids = append(a.bids, b)
		a.Complete()
		return nil
	}
	minBid := a.startingPrice
	if highest := a.CurrentHighestBid(); highest > 0 && highest+minBidIncrement > minBid {
		minBid = highest + minBidIncrement
	}
	if b.Amount() < minBid {
		return fmt.Errorf("%w: minimum acceptable bid is %.2f", ErrBidTooLow, minBid)
	}
	a.bids = append(a.bids, b)
	return nil
}

// AppendBid attaches a bid without applying the bidding rules. Only the
// persistence layer uses it, when rebuilding an auction whose bids were
// validated when they were first placed.
func (a *Auction) AppendBid(b *Bid) { a.bids = append(a.bids, b) }

// CurrentHighestBid returns the highest bid amount, or 0 with no bids.
func (a *Auction) CurrentHighestBid() float64 {
	var max float64
	for _, b := range a.bids {
		if b.Amount() > max {
			max = b.Amount()
		}
	}
	return max
}

// HighestBid returns the highest bid, or nil with no bids. Ties keep the
// earliest bid: the scan only replaces on a strictly greater amount.
func (a *Auction) HighestBid() *Bid {
	var highest *Bid
	var max float64
	for _, b := range a.bids {
		if b.Amount() > max {
			max = b.Amount()
			highest = b
		}
	}
	return highest
}

// Complete transitions an active auction to completed. No-op otherwise.
func (a *Auction) Complete() {
	if a.status == AuctionActive {
		a.status = AuctionCompleted
		a.completedAt = Now()
	}
}

// Cancel transitions an active auction to cancelled. No-op otherwise.
func (a *Auction) Cancel() {
	if a.status == AuctionActive {
		a.status = AuctionCancelled
		a.completedAt = Now()
	}
}

// WasBuyout reports whether the auction finished through a buyout: it is
// completed and its highest bid reached the buyout price.
func (a *Auction) WasBuyout() bool {
	if !a.IsCompleted() || len(a.bids) == 0 {
		return false
	}
	highest := a.HighestBid()
	return highest != nil && highest.Amount() >= a.buyoutPrice
}

// FileRecord renders the auctions data file line. BID lines for the
// attached bids are written separately by the persistence layer.
func (a *Auction) FileRecord() string {
	return joinRecord([]string{
		a.id,
		a.propertyID,
		a.propertyAddress,
		formatMoney(a.startingPrice),
		formatMoney(a.buyoutPrice),
		a.status,
		FormatTime(a.createdAt),
		FormatTime(a.completedAt),
	})
}

func (a *Auction) String() string {
	return fmt.Sprintf("Auction %s: %s, starting %.2f rub., buyout %.2f rub., %s, %d bids",
		a.id, a.propertyAddress, a.startingPrice, a.buyoutPrice, a.status, len(a.bids))
}
