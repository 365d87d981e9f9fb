package messenger

import "github.com/streadway/amqp"

type exchange struct {
	Name        string
	Type        string
	Durable     bool
	AutoDeleted bool
	Internal    bool
	NoWait      bool
	Arguments   amqp.Table
}

var exchanges = map[string]exchange{
	"listing.created": {
		Name:    "listing.created",
		Type:    "topic",
		Durable: true,
		NoWait:  true,
	},
	"listing.removed": {
		Name:    "listing.removed",
		Type:    "topic",
		Durable: true,
		NoWait:  true,
	},
	"sale.completed": {
		Name:    "sale.completed",
		Type:    "topic",
		Durable: true,
		NoWait:  true,
	},
}
