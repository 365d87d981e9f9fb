package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ZilDuck/nft-marketplace/internal/config"
	"github.com/ZilDuck/nft-marketplace/internal/config/di"
	"github.com/ZilDuck/nft-marketplace/internal/dev"
	"github.com/ZilDuck/nft-marketplace/internal/entity"
	"github.com/ZilDuck/nft-marketplace/internal/marketplace"
	"github.com/ZilDuck/nft-marketplace/internal/split"
	"github.com/ZilDuck/nft-marketplace/internal/store"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var (
	engine   marketplace.Engine
	listings store.ListingStore
)

func main() {
	config.Init("cli")

	container, err := di.NewContainer()
	if err != nil {
		zap.L().With(zap.Error(err)).Fatal("Failed to build container")
	}
	engine = container.Get("engine").(marketplace.Engine)
	listings = container.Get("listing.store").(store.ListingStore)

	app := &cli.App{
		Commands: []*cli.Command{
			{
				Name:   "validateSplit",
				Usage:  "Validate a payout split from a JSON file of recipients",
				Action: validateSplit,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Value: "", Usage: "Path to the recipients JSON"},
				},
			},
			{
				Name:   "listing",
				Usage:  "Show a stored listing",
				Action: showListing,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "lister", Value: "", Usage: "Lister address"},
					&cli.StringFlag{Name: "contract", Value: "", Usage: "Asset contract address"},
					&cli.Uint64Flag{Name: "tokenId", Value: 0, Usage: "Asset id"},
				},
			},
			{
				Name:   "delist",
				Usage:  "Remove a listing on behalf of its lister",
				Action: delist,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "lister", Value: "", Usage: "Lister address"},
					&cli.StringFlag{Name: "contract", Value: "", Usage: "Asset contract address"},
					&cli.Uint64Flag{Name: "tokenId", Value: 0, Usage: "Asset id"},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		zap.L().With(zap.Error(err)).Fatal("Failed to start CLI")
	}
}

func validateSplit(c *cli.Context) error {
	data, err := os.ReadFile(c.String("file"))
	if err != nil {
		return err
	}

	var recipients []entity.SaleRecipient
	if err := json.Unmarshal(data, &recipients); err != nil {
		return err
	}
	dev.Dump(recipients)

	if err := split.Validate(recipients); err != nil {
		return err
	}

	fmt.Println("Split is valid")

	return nil
}

func showListing(c *cli.Context) error {
	recipients := listings.Get(c.String("lister"), c.String("contract"), c.Uint64("tokenId"))
	if len(recipients) == 0 {
		return fmt.Errorf("no listing for %s/%s/%d", c.String("lister"), c.String("contract"), c.Uint64("tokenId"))
	}

	out, err := json.MarshalIndent(map[string]interface{}{
		"price":      listings.GetPrice(c.String("contract"), c.Uint64("tokenId")),
		"recipients": recipients,
	}, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(out))

	return nil
}

func delist(c *cli.Context) error {
	return engine.Delist(c.String("lister"), c.String("contract"), c.Uint64("tokenId"))
}
