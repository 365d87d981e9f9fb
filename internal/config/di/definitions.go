package di

import (
	"time"

	"github.com/ZilDuck/nft-marketplace/internal/chain"
	"github.com/ZilDuck/nft-marketplace/internal/config"
	"github.com/ZilDuck/nft-marketplace/internal/marketplace"
	"github.com/ZilDuck/nft-marketplace/internal/messenger"
	"github.com/ZilDuck/nft-marketplace/internal/server"
	"github.com/ZilDuck/nft-marketplace/internal/store"
	"github.com/ZilDuck/nft-marketplace/internal/treasury"
	"github.com/sarulabs/di/v2"
	"go.uber.org/zap"
)

var Definitions = []di.Def{
	{
		Name: "chain.provider",
		Build: func(ctn di.Container) (interface{}, error) {
			cfg := config.Get().Chain
			provider, err := chain.NewProvider(cfg.Url, cfg.Timeout, cfg.Debug)
			if err != nil {
				zap.L().With(zap.Error(err)).Fatal("Failed to create chain provider")
			}

			return provider, nil
		},
	},
	{
		Name: "chain",
		Build: func(ctn di.Container) (interface{}, error) {
			return chain.NewService(ctn.Get("chain.provider").(*chain.Provider)), nil
		},
	},
	{
		Name: "treasury.directory",
		Build: func(ctn di.Container) (interface{}, error) {
			directory := treasury.NewDirectory(
				ctn.Get("chain.provider").(*chain.Provider),
				config.Get().DirectoryAddress,
			)

			ttl := time.Duration(config.Get().TerminalCacheTtl) * time.Second

			return treasury.NewCachedDirectory(directory, ttl), nil
		},
	},
	{
		Name: "listing.store",
		Build: func(ctn di.Container) (interface{}, error) {
			return store.NewListingStore(), nil
		},
	},
	{
		Name: "engine",
		Build: func(ctn di.Container) (interface{}, error) {
			return marketplace.NewEngine(
				config.Get().MarketplaceAddress,
				ctn.Get("listing.store").(store.ListingStore),
				ctn.Get("chain").(chain.Service),
				ctn.Get("treasury.directory").(treasury.Directory),
			), nil
		},
	},
	{
		Name: "messenger",
		Build: func(ctn di.Container) (interface{}, error) {
			return messenger.NewMessenger(config.Get().AmqpUri, config.Get().Network), nil
		},
	},
	{
		Name: "server",
		Build: func(ctn di.Container) (interface{}, error) {
			return server.NewServer(
				ctn.Get("engine").(marketplace.Engine),
				ctn.Get("listing.store").(store.ListingStore),
			), nil
		},
	},
}

// NewContainer builds the app container from Definitions.
func NewContainer() (di.Container, error) {
	builder, err := di.NewBuilder()
	if err != nil {
		return nil, err
	}

	if err := builder.Add(Definitions...); err != nil {
		return nil, err
	}

	return builder.Build(), nil
}
