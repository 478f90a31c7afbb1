package store

import (
	"fmt"
	"strconv"
	"strings"

	"estate/internal/domain"
)

const (
	auctionFields = 8
	bidFields     = 6

	bidPrefix = "BID" + domain.FieldSep
)

// SaveAuctions writes every auction as one line, immediately followed by
// one BID line per bid it holds. Bids carry no index of their own: on
// load they re-attach to the auction line that precedes them.
func (s *FileStore) SaveAuctions(auctions []*domain.Auction) error {
	var lines []string
	for _, a := range auctions {
		lines = append(lines, a.FileRecord())
		for _, b := range a.Bids() {
			lines = append(lines, bidPrefix+a.ID()+domain.FieldSep+b.FileRecord())
		}
	}
	return s.writeLines(auctionsFile, lines)
}

// LoadAuctions parses the auctions file, skipping malformed records. A
// BID line belongs to the most recently parsed auction line; a BID line
// seen before any auction is dropped.
func (s *FileStore) LoadAuctions() ([]*domain.Auction, error) {
	out := []*domain.Auction{}
	var current *domain.Auction
	err := s.eachLine(auctionsFile, func(line string) {
		if strings.HasPrefix(line, bidPrefix) {
			if current == nil {
				return
			}
			b, err := parseBidRecord(line)
			if err != nil {
				return // skip invalid bid data
			}
			current.AppendBid(b)
			return
		}
		a, err := parseAuctionRecord(line)
		if err != nil {
			return // skip invalid auction data
		}
		out = append(out, a)
		current = a
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func parseAuctionRecord(line string) (*domain.Auction, error) {
	parts := strings.Split(line, domain.FieldSep)
	if len(parts) != auctionFields {
		return nil, fmt.Errorf("auction record has %d fields, want %d", len(parts), auctionFields)
	}
	startingPrice, err := strconv.ParseFloat(parts[3], 64)
	if err != nil {
		return nil, err
	}
	buyoutPrice, err := strconv.ParseFloat(parts[4], 64)
	if err != nil {
		return nil, err
	}
	createdAt, err := domain.ParseTime(parts[6])
	if err != nil {
		return nil, err
	}
	completedAt, err := domain.ParseTime(parts[7])
	if err != nil {
		return nil, err
	}
	return domain.RestoreAuction(parts[0], parts[1], parts[2], startingPrice, buyoutPrice, parts[5], createdAt, completedAt)
}

// parseBidRecord reads a BID line. The auction id embedded in the line is
// required to be present but is not checked against the auction the bid
// attaches to; association is purely by line position.
func parseBidRecord(line string) (*domain.Bid, error) {
	parts := strings.Split(line, domain.FieldSep)
	if len(parts) != bidFields {
		return nil, fmt.Errorf("bid record has %d fields, want %d", len(parts), bidFields)
	}
	if parts[1] == "" {
		return nil, fmt.Errorf("bid record has empty auction id")
	}
	if parts[2] == "" {
		return nil, fmt.Errorf("bid record has empty client id")
	}
	amount, err := strconv.ParseFloat(parts[4], 64)
	if err != nil {
		return nil, err
	}
	placedAt, err := domain.ParseTime(parts[5])
	if err != nil {
		return nil, err
	}
	return domain.RestoreBid(parts[2], parts[3], amount, placedAt)
}
