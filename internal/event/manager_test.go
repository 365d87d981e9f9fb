package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitEventReachesListener(t *testing.T) {
	received := make(chan interface{}, 1)
	AddEventListener(SaleCompletedEvent, func(msg interface{}) {
		received <- msg
	})

	emitted := SaleCompleted{Buyer: "0xabc1", AssetId: 1, Amount: 1000}
	EmitEvent(SaleCompletedEvent, emitted)

	select {
	case msg := <-received:
		assert.Equal(t, emitted, msg)
	case <-time.After(time.Second):
		require.Fail(t, "listener never received the event")
	}
}

func TestEmitEventIgnoresOtherTypes(t *testing.T) {
	received := make(chan interface{}, 1)
	AddEventListener(ListingRemovedEvent, func(msg interface{}) {
		received <- msg
	})

	EmitEvent(ListingCreatedEvent, ListingCreated{AssetId: 2})

	select {
	case <-received:
		require.Fail(t, "listener received an event of another type")
	case <-time.After(50 * time.Millisecond):
	}
}
