package managers

import (
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"estate/internal/domain"
)

// nameCollator orders Cyrillic client names correctly; plain byte
// comparison misorders them.
var nameCollator = collate.New(language.Russian)

// ClientManager owns the agency's client register.
type ClientManager struct {
	clients []*domain.Client
}

func NewClientManager() *ClientManager { return &ClientManager{} }

// Add stores a client, rejecting nil values and duplicate ids.
func (m *ClientManager) Add(c *domain.Client) error {
	if c == nil {
		return fmt.Errorf("%w: client", ErrNilEntity)
	}
	if _, ok := findByID(m.clients, c.ID()); ok {
		return fmt.Errorf("%w: client with id %s already exists", ErrDuplicateID, c.ID())
	}
	m.clients = append(m.clients, c)
	return nil
}

// Remove deletes the client with the given id and reports whether a
// removal happened.
func (m *ClientManager) Remove(id string) bool {
	var removed bool
	m.clients, removed = removeByID(m.clients, id)
	return removed
}

// Find returns the client with the given id, or nil.
func (m *ClientManager) Find(id string) *domain.Client {
	if c, ok := findByID(m.clients, id); ok {
		return c
	}
	return nil
}

// All returns every client in insertion order.
func (m *ClientManager) All() []*domain.Client {
	out := make([]*domain.Client, len(m.clients))
	copy(out, m.clients)
	return out
}

// SearchByName matches clients whose name contains the query,
// case-insensitively. An empty query matches everyone.
func (m *ClientManager) SearchByName(name string) []*domain.Client {
	var out []*domain.Client
	for _, c := range m.clients {
		if containsFold(c.Name(), name) {
			out = append(out, c)
		}
	}
	return out
}

// SearchByPhone matches clients with exactly the given phone number.
func (m *ClientManager) SearchByPhone(phone string) []*domain.Client {
	var out []*domain.Client
	for _, c := range m.clients {
		if c.Phone() == phone {
			out = append(out, c)
		}
	}
	return out
}

// SortedByName returns the clients ordered lexicographically by name.
func (m *ClientManager) SortedByName() []*domain.Client {
	out := m.All()
	sort.SliceStable(out, func(i, j int) bool {
		return nameCollator.CompareString(out[i].Name(), out[j].Name()) < 0
	})
	return out
}

// SetClients replaces the whole collection. Only the persistence layer
// calls this, after a file has been fully parsed.
func (m *ClientManager) SetClients(clients []*domain.Client) { m.clients = clients }

// Count returns the number of registered clients.
func (m *ClientManager) Count() int { return len(m.clients) }
