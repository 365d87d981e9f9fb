package store

import (
	"sync"

	"github.com/ZilDuck/nft-marketplace/internal/entity"
)

type ListingStore interface {
	Put(lister, assetContract string, assetId uint64, recipient entity.SaleRecipient)
	PutPrice(assetContract string, assetId uint64, price uint64)
	Get(lister, assetContract string, assetId uint64) []entity.SaleRecipient
	GetPrice(assetContract string, assetId uint64) uint64
	Erase(lister, assetContract string, assetId uint64)
}

type listingKey struct {
	lister        string
	assetContract string
	assetId       uint64
}

type assetKey struct {
	assetContract string
	assetId       uint64
}

// listingStore keeps the split recipients keyed by lister and asset, while
// the price is keyed by asset alone. The dual key scheme is deliberate:
// reads and erasures of the recipients never touch the price entry.
type listingStore struct {
	mu         sync.RWMutex
	recipients map[listingKey][]entity.SaleRecipient
	prices     map[assetKey]uint64
}

func NewListingStore() ListingStore {
	return &listingStore{
		recipients: make(map[listingKey][]entity.SaleRecipient),
		prices:     make(map[assetKey]uint64),
	}
}

// Put appends the recipient to whatever is already stored under the key.
// Listing the same asset twice accumulates recipients rather than replacing
// them.
func (s *listingStore) Put(lister, assetContract string, assetId uint64, recipient entity.SaleRecipient) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := listingKey{lister, assetContract, assetId}
	s.recipients[key] = append(s.recipients[key], recipient)
}

func (s *listingStore) PutPrice(assetContract string, assetId uint64, price uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prices[assetKey{assetContract, assetId}] = price
}

func (s *listingStore) Get(lister, assetContract string, assetId uint64) []entity.SaleRecipient {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.recipients[listingKey{lister, assetContract, assetId}]

	recipients := make([]entity.SaleRecipient, len(stored))
	copy(recipients, stored)

	return recipients
}

func (s *listingStore) GetPrice(assetContract string, assetId uint64) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.prices[assetKey{assetContract, assetId}]
}

// Erase removes the recipients only. The price entry stays behind, matching
// the on-chain contract this engine mirrors.
func (s *listingStore) Erase(lister, assetContract string, assetId uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.recipients, listingKey{lister, assetContract, assetId})
}
