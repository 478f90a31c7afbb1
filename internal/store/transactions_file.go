package store

import (
	"fmt"
	"strconv"
	"strings"

	"estate/internal/domain"
)

const transactionFields = 7

// SaveTransactions writes every transaction as one line.
func (s *FileStore) SaveTransactions(transactions []*domain.Transaction) error {
	lines := make([]string, 0, len(transactions))
	for _, t := range transactions {
		lines = append(lines, t.FileRecord())
	}
	return s.writeLines(transactionsFile, lines)
}

// LoadTransactions parses the transactions file, skipping malformed
// records.
func (s *FileStore) LoadTransactions() ([]*domain.Transaction, error) {
	out := []*domain.Transaction{}
	err := s.eachLine(transactionsFile, func(line string) {
		t, err := parseTransactionRecord(line)
		if err != nil {
			return // skip invalid transaction data
		}
		out = append(out, t)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func parseTransactionRecord(line string) (*domain.Transaction, error) {
	parts := strings.Split(line, domain.FieldSep)
	if len(parts) != transactionFields {
		return nil, fmt.Errorf("transaction record has %d fields, want %d", len(parts), transactionFields)
	}
	date, err := domain.ParseTime(parts[3])
	if err != nil {
		return nil, err
	}
	price, err := strconv.ParseFloat(parts[4], 64)
	if err != nil {
		return nil, err
	}
	return domain.RestoreTransaction(parts[0], parts[1], parts[2], date, price, parts[5], parts[6])
}
