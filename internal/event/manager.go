package event

import (
	"sync"

	"go.uber.org/zap"
)

var (
	mu        sync.RWMutex
	listeners = make([]*Listener, 0)
)

type Listener struct {
	eventType Type
	channel   chan interface{}
}

// AddEventListener registers a callback for an event type. Delivery is
// asynchronous; callbacks run on their own goroutine in emit order.
func AddEventListener(eventType Type, callback func(msg interface{})) {
	zap.L().With(zap.String("type", string(eventType))).Debug("EventManager: AddListener")

	listener := Listener{
		eventType: eventType,
		channel:   make(chan interface{}, 16),
	}

	mu.Lock()
	listeners = append(listeners, &listener)
	mu.Unlock()

	go func() {
		for msg := range listener.channel {
			callback(msg)
		}
	}()
}

func EmitEvent(eventType Type, msg interface{}) {
	mu.RLock()
	defer mu.RUnlock()

	if len(listeners) == 0 {
		zap.L().Debug("EventManager: No listeners available")
	}

	for _, listener := range listeners {
		if listener.eventType == eventType {
			zap.L().With(zap.String("type", string(eventType))).Debug("EventManager: Emitting event")
			listener.channel <- msg
		}
	}
}
