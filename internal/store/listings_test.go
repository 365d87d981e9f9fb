package store

import (
	"testing"

	"github.com/ZilDuck/nft-marketplace/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	lister   = "0x9fa014671b36b9e0b88ab1a00f6b99c5f382c255"
	contract = "0x06f02c0b0a1a1b6bbee05e2f134b1fdef10d3dd7"
)

func TestListingStore_PutAppends(t *testing.T) {
	s := NewListingStore()

	s.Put(lister, contract, 1, entity.SaleRecipient{SharePermyriad: 6000, Beneficiary: "0xb1"})
	s.Put(lister, contract, 1, entity.SaleRecipient{SharePermyriad: 4000, Beneficiary: "0xb2"})

	recipients := s.Get(lister, contract, 1)
	require.Len(t, recipients, 2)

	// Stored order is payout order.
	assert.Equal(t, int64(6000), recipients[0].SharePermyriad)
	assert.Equal(t, int64(4000), recipients[1].SharePermyriad)
}

func TestListingStore_KeyedByLister(t *testing.T) {
	s := NewListingStore()

	s.Put(lister, contract, 1, entity.SaleRecipient{SharePermyriad: 10000, Beneficiary: "0xb1"})

	assert.Empty(t, s.Get("0x6a15b7a9e54a0b32b9b062b0e3dbdbc0c4a2a888", contract, 1))
	assert.Empty(t, s.Get(lister, contract, 2))
	assert.Len(t, s.Get(lister, contract, 1), 1)
}

func TestListingStore_PriceKeyedByAssetOnly(t *testing.T) {
	s := NewListingStore()

	s.PutPrice(contract, 1, 1000)

	// The price key has no lister component: whoever listed last wins.
	assert.Equal(t, uint64(1000), s.GetPrice(contract, 1))
	assert.Equal(t, uint64(0), s.GetPrice(contract, 2))

	s.PutPrice(contract, 1, 2500)
	assert.Equal(t, uint64(2500), s.GetPrice(contract, 1))
}

func TestListingStore_EraseLeavesPrice(t *testing.T) {
	s := NewListingStore()

	s.Put(lister, contract, 1, entity.SaleRecipient{SharePermyriad: 10000, Beneficiary: "0xb1"})
	s.PutPrice(contract, 1, 1000)

	s.Erase(lister, contract, 1)

	assert.Empty(t, s.Get(lister, contract, 1))
	assert.Equal(t, uint64(1000), s.GetPrice(contract, 1))
}

func TestListingStore_GetReturnsCopy(t *testing.T) {
	s := NewListingStore()

	s.Put(lister, contract, 1, entity.SaleRecipient{SharePermyriad: 10000, Beneficiary: "0xb1"})

	recipients := s.Get(lister, contract, 1)
	recipients[0].SharePermyriad = 1

	assert.Equal(t, int64(10000), s.Get(lister, contract, 1)[0].SharePermyriad)
}
