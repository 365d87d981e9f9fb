package messenger

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nu7hatch/gouuid"
	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

type MessageService interface {
	SendMessage(item Item, body interface{}) error
}

type Messenger struct {
	amqpUri string
	network string
	conn    *amqp.Connection
}

type Item string

var (
	ListingCreated Item = "listing.created"
	ListingRemoved Item = "listing.removed"
	SaleCompleted  Item = "sale.completed"
)

func (i Item) queue(network string) string {
	return fmt.Sprintf("%s.%s", network, i)
}

// envelope is the wire format consumers receive: a unique id, the emit
// time, and the event payload.
type envelope struct {
	Id   string      `json:"id"`
	Time time.Time   `json:"time"`
	Body interface{} `json:"body"`
}

func NewMessenger(amqpUri, network string) MessageService {
	return &Messenger{amqpUri: amqpUri, network: network}
}

func (m *Messenger) SendMessage(item Item, body interface{}) error {
	ch, err := m.openChannel()
	if err != nil {
		return err
	}
	defer ch.Close()

	ex, ok := exchanges[string(item)]
	if !ok {
		zap.L().With(zap.String("item", string(item))).Error("[Queue] Exchange not found")
		return errors.New("exchange not found")
	}

	if err := ch.ExchangeDeclare(ex.Name, ex.Type, ex.Durable, ex.AutoDeleted, ex.Internal, ex.NoWait, ex.Arguments); err != nil {
		zap.L().With(zap.Error(err)).Error("[Queue] Exchange Declare")
		return err
	}

	if _, err := ch.QueueDeclare(item.queue(m.network), true, false, false, false, nil); err != nil {
		zap.L().With(zap.Error(err), zap.String("queue", item.queue(m.network))).Error("[Queue] Failed to create queue")
		return err
	}

	id, err := uuid.NewV4()
	if err != nil {
		return err
	}

	payload, err := json.Marshal(envelope{Id: id.String(), Time: time.Now().UTC(), Body: body})
	if err != nil {
		return err
	}

	publishing := amqp.Publishing{
		Headers:      amqp.Table{},
		ContentType:  "text/json",
		Body:         payload,
		DeliveryMode: amqp.Persistent,
	}

	if err := ch.Publish(ex.Name, item.queue(m.network), false, false, publishing); err != nil {
		zap.L().With(zap.Error(err), zap.String("queue", item.queue(m.network))).Error("[Queue] Failed to publish message")
		return err
	}

	return nil
}

func (m *Messenger) openChannel() (*amqp.Channel, error) {
	if m.conn == nil || m.conn.IsClosed() {
		conn, err := amqp.Dial(m.amqpUri)
		if err != nil {
			zap.L().With(zap.Error(err)).Error("[Queue] Failed to connect")
			return nil, err
		}
		m.conn = conn
	}

	return m.conn.Channel()
}
