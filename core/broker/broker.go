package broker

import (
	"sync"

	"github.com/VolumeFi/curve-stablecoin/core/events"
	"github.com/VolumeFi/curve-stablecoin/logging"
	"go.uber.org/zap"
)

const namedLogger = "broker"

// Subscriber receives every event sent through the broker, synchronously
// and in send order.
type Subscriber interface {
	Push(events.Event)
}

// Broker fans engine events out to subscribers.
type Broker struct {
	log *logging.Logger

	mu   sync.RWMutex
	subs []Subscriber
}

func New(log *logging.Logger) *Broker {
	return &Broker{
		log: log.Named(namedLogger),
	}
}

// Subscribe registers a subscriber for all events.
func (b *Broker) Subscribe(s Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, s)
}

// Send delivers the event to every subscriber.
func (b *Broker) Send(e events.Event) {
	b.mu.RLock()
	subs := b.subs
	b.mu.RUnlock()

	if b.log.IsDebug() {
		b.log.Debug("event", zap.Stringer("type", e.Type()))
	}
	for _, s := range subs {
		s.Push(e)
	}
}
