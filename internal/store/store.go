package store

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	propertiesFile   = "properties.txt"
	clientsFile      = "clients.txt"
	transactionsFile = "transactions.txt"
	auctionsFile     = "auctions.txt"
)

// FileStore reads and writes the agency data files under a single
// directory.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore { return &FileStore{dir: dir} }

// Dir returns the data directory this store works in.
func (s *FileStore) Dir() string { return s.dir }

// writeLines writes one record per line, replacing the whole file.
func (s *FileStore) writeLines(name string, lines []string) error {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("cannot open file for writing: %w", err)
	}
	return nil
}

// eachLine calls fn for every non-blank line of the named file. The
// returned error is the open or scan error; fs.ErrNotExist is the
// caller's signal that there is nothing to load.
func (s *FileStore) eachLine(name string, fn func(line string)) error {
	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		return err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		fn(line)
	}
	return sc.Err()
}
