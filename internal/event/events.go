package event

import (
	"github.com/ZilDuck/nft-marketplace/internal/entity"
)

type Type string

const (
	ListingCreatedEvent Type = "ListingCreatedEvent"
	ListingRemovedEvent Type = "ListingRemovedEvent"
	SaleCompletedEvent  Type = "SaleCompletedEvent"
)

// ListingCreated carries a snapshot of the recipients as submitted, in
// payout order.
type ListingCreated struct {
	Lister        string                 `json:"lister"`
	AssetContract string                 `json:"assetContract"`
	AssetId       uint64                 `json:"assetId"`
	Recipients    []entity.SaleRecipient `json:"recipients"`
	Price         uint64                 `json:"price"`
}

type ListingRemoved struct {
	Lister        string `json:"lister"`
	AssetContract string `json:"assetContract"`
	AssetId       uint64 `json:"assetId"`
}

// SaleCompleted reports the marketplace address in the seller position,
// mirroring the contract event this engine reproduces.
type SaleCompleted struct {
	Marketplace   string `json:"marketplace"`
	Buyer         string `json:"buyer"`
	AssetContract string `json:"assetContract"`
	AssetId       uint64 `json:"assetId"`
	Amount        uint64 `json:"amount"`
}
