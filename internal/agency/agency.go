package agency

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"estate/internal/domain"
	"estate/internal/managers"
	"estate/internal/store"
)

// ErrNotFound reports a referential check that failed: the entity an
// operation refers to does not exist.
var ErrNotFound = errors.New("not found")

// ErrPropertyUnavailable rejects a deal over a property that is already
// taken by another pending or completed transaction.
var ErrPropertyUnavailable = errors.New("property is not available for a deal")

// Agency owns the managers, the data directory and the file store, and
// orchestrates the operations that span more than one manager.
type Agency struct {
	log     *slog.Logger
	dataDir string
	store   *store.FileStore

	properties   *managers.PropertyManager
	clients      *managers.ClientManager
	transactions *managers.TransactionManager
	auctions     *managers.AuctionManager
}

// New builds an agency working under cfg.DataDir, creating the directory
// if needed.
func New(cfg Config, log *slog.Logger) (*Agency, error) {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = DefaultDataDir
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &Agency{
		log:          log,
		dataDir:      dataDir,
		store:        store.NewFileStore(dataDir),
		properties:   managers.NewPropertyManager(),
		clients:      managers.NewClientManager(),
		transactions: managers.NewTransactionManager(),
		auctions:     managers.NewAuctionManager(),
	}, nil
}

func (a *Agency) Properties() *managers.PropertyManager      { return a.properties }
func (a *Agency) Clients() *managers.ClientManager           { return a.clients }
func (a *Agency) Transactions() *managers.TransactionManager { return a.transactions }
func (a *Agency) Auctions() *managers.AuctionManager         { return a.auctions }

// DataDirectory returns the directory the data files live in.
func (a *Agency) DataDirectory() string { return a.dataDir }

// SetDataDirectory points the agency at another data directory, creating
// it if needed. In-memory state is kept; the next SaveAll writes there.
func (a *Agency) SetDataDirectory(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	a.dataDir = dir
	a.store = store.NewFileStore(dir)
	return nil
}

// SaveAll persists all four collections. The files are written one after
// another; a failure aborts the save but leaves files already written in
// place.
func (a *Agency) SaveAll() error {
	if err := a.store.SaveProperties(a.properties.All()); err != nil {
		return err
	}
	if err := a.store.SaveClients(a.clients.All()); err != nil {
		return err
	}
	if err := a.store.SaveTransactions(a.transactions.All()); err != nil {
		return err
	}
	if err := a.store.SaveAuctions(a.auctions.All()); err != nil {
		return err
	}
	a.log.Info("data saved",
		"dir", a.dataDir,
		"properties", a.properties.Count(),
		"clients", a.clients.Count(),
		"transactions", a.transactions.Count(),
		"auctions", a.auctions.Count(),
	)
	return nil
}

// LoadAll restores all four collections from disk. A manager is only
// replaced once its file has been fully parsed; a missing file leaves
// the corresponding manager untouched.
func (a *Agency) LoadAll() error {
	if properties, err := a.store.LoadProperties(); err == nil {
		a.properties.SetProperties(properties)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if clients, err := a.store.LoadClients(); err == nil {
		a.clients.SetClients(clients)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if transactions, err := a.store.LoadTransactions(); err == nil {
		a.transactions.SetTransactions(transactions)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if auctions, err := a.store.LoadAuctions(); err == nil {
		a.auctions.SetAuctions(auctions)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	a.log.Debug("data loaded",
		"dir", a.dataDir,
		"properties", a.properties.Count(),
		"clients", a.clients.Count(),
		"transactions", a.transactions.Count(),
		"auctions", a.auctions.Count(),
	)
	return nil
}

// Close persists all state. Call exactly once at shutdown.
func (a *Agency) Close() error {
	a.log.Debug("closing agency")
	return a.SaveAll()
}

// CreateAuction opens an auction over an existing property, snapshotting
// its address for display.
func (a *Agency) CreateAuction(id, propertyID string, startingPrice float64) (*domain.Auction, error) {
	prop := a.properties.Find(propertyID)
	if prop == nil {
		return nil, fmt.Errorf("%w: property %s", ErrNotFound, propertyID)
	}
	auction, err := domain.NewAuction(id, propertyID, prop.Address(), startingPrice)
	if err != nil {
		return nil, err
	}
	if err := a.auctions.Add(auction); err != nil {
		return nil, err
	}
	a.log.Info("auction created", "auction", id, "property", propertyID, "starting_price", startingPrice)
	return auction, nil
}

// PlaceBid places a bid by an existing client in an existing auction,
// snapshotting the client name into the bid.
func (a *Agency) PlaceBid(auctionID, clientID string, amount float64) (*domain.Bid, error) {
	auction := a.auctions.Find(auctionID)
	if auction == nil {
		return nil, fmt.Errorf("%w: auction %s", ErrNotFound, auctionID)
	}
	client := a.clients.Find(clientID)
	if client == nil {
		return nil, fmt.Errorf("%w: client %s", ErrNotFound, clientID)
	}
	bid, err := domain.NewBid(clientID, client.Name(), amount)
	if err != nil {
		return nil, err
	}
	if err := auction.PlaceBid(bid); err != nil {
		return nil, err
	}
	if auction.WasBuyout() {
		a.log.Info("auction bought out", "auction", auctionID, "client", clientID, "amount", amount)
	}
	return bid, nil
}

// RecordTransaction records a deal between an existing client and an
// existing property. A pending or completed deal takes the property off
// the market; a cancelled one releases it.
func (a *Agency) RecordTransaction(id, propertyID, clientID string, finalPrice float64, status, notes string) (*domain.Transaction, error) {
	prop := a.properties.Find(propertyID)
	if prop == nil {
		return nil, fmt.Errorf("%w: property %s", ErrNotFound, propertyID)
	}
	if a.clients.Find(clientID) == nil {
		return nil, fmt.Errorf("%w: client %s", ErrNotFound, clientID)
	}
	if status != domain.TransactionCancelled && !prop.Available() {
		return nil, fmt.Errorf("%w: property %s", ErrPropertyUnavailable, propertyID)
	}
	t, err := domain.NewTransaction(id, propertyID, clientID, finalPrice, status, notes)
	if err != nil {
		return nil, err
	}
	if err := a.transactions.Add(t); err != nil {
		return nil, err
	}
	prop.SetAvailable(status == domain.TransactionCancelled)
	return t, nil
}

// SetTransactionStatus updates a deal's status and mirrors the change
// onto the property's availability, when the property still exists.
func (a *Agency) SetTransactionStatus(id, status string) error {
	t := a.transactions.Find(id)
	if t == nil {
		return fmt.Errorf("%w: transaction %s", ErrNotFound, id)
	}
	if err := t.SetStatus(status); err != nil {
		return err
	}
	if prop := a.properties.Find(t.PropertyID()); prop != nil {
		prop.SetAvailable(status == domain.TransactionCancelled)
	}
	return nil
}
