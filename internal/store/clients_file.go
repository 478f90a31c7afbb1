package store

import (
	"fmt"
	"strings"

	"estate/internal/domain"
)

const clientFields = 5

// SaveClients writes every client as one line.
func (s *FileStore) SaveClients(clients []*domain.Client) error {
	lines := make([]string, 0, len(clients))
	for _, c := range clients {
		lines = append(lines, c.FileRecord())
	}
	return s.writeLines(clientsFile, lines)
}

// LoadClients parses the clients file, skipping malformed records.
func (s *FileStore) LoadClients() ([]*domain.Client, error) {
	out := []*domain.Client{}
	err := s.eachLine(clientsFile, func(line string) {
		c, err := parseClientRecord(line)
		if err != nil {
			return // skip invalid client data
		}
		out = append(out, c)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func parseClientRecord(line string) (*domain.Client, error) {
	parts := strings.Split(line, domain.FieldSep)
	if len(parts) != clientFields {
		return nil, fmt.Errorf("client record has %d fields, want %d", len(parts), clientFields)
	}
	registered, err := domain.ParseTime(parts[4])
	if err != nil {
		return nil, err
	}
	return domain.RestoreClient(parts[0], parts[1], parts[2], parts[3], registered)
}
