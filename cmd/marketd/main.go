package main

import (
	"net/http"

	"github.com/ZilDuck/nft-marketplace/internal/config"
	"github.com/ZilDuck/nft-marketplace/internal/config/di"
	"github.com/ZilDuck/nft-marketplace/internal/event"
	"github.com/ZilDuck/nft-marketplace/internal/messenger"
	"github.com/ZilDuck/nft-marketplace/internal/server"
	"go.uber.org/zap"
)

func main() {
	config.Init("marketd")

	container, err := di.NewContainer()
	if err != nil {
		zap.L().With(zap.Error(err)).Fatal("Failed to build container")
	}

	if config.Get().AmqpUri != "" {
		relay := container.Get("messenger").(messenger.MessageService)
		event.AddEventListener(event.ListingCreatedEvent, func(msg interface{}) {
			if err := relay.SendMessage(messenger.ListingCreated, msg); err != nil {
				zap.L().With(zap.Error(err)).Error("Failed to relay listing created")
			}
		})
		event.AddEventListener(event.ListingRemovedEvent, func(msg interface{}) {
			if err := relay.SendMessage(messenger.ListingRemoved, msg); err != nil {
				zap.L().With(zap.Error(err)).Error("Failed to relay listing removed")
			}
		})
		event.AddEventListener(event.SaleCompletedEvent, func(msg interface{}) {
			if err := relay.SendMessage(messenger.SaleCompleted, msg); err != nil {
				zap.L().With(zap.Error(err)).Error("Failed to relay sale completed")
			}
		})
	}

	srv := container.Get("server").(*server.Server)

	zap.L().With(zap.String("port", config.Get().ApiPort)).Info("Marketplace Started")

	if err := http.ListenAndServe(":"+config.Get().ApiPort, srv.Router()); err != nil {
		zap.L().With(zap.Error(err)).Fatal("Failed to start marketplace")
	}
}
