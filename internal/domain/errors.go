package domain

import "errors"

// ErrValidation is wrapped by every constructor and setter failure, so
// callers can classify without matching message text.
var ErrValidation = errors.New("validation")

var (
	// ErrAuctionNotActive rejects bids and repeated completion on a
	// terminal auction.
	ErrAuctionNotActive = errors.New("auction is not active")

	// ErrBidTooLow rejects bids below the current minimum acceptable
	// amount.
	ErrBidTooLow = errors.New("bid amount is too low")
)
