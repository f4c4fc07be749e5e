package events

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Skotchmaster/product_catalog/pkg/logging"
)

const (
	TopicUsers   = "user_events"
	TopicCatalog = "catalog_events"

	publishTimeout = 5 * time.Second
)

type Publisher interface {
	Publish(ctx context.Context, topic, key string, event any) error
	Close() error
}

// Emit publishes event and only logs a failure; a broker outage never fails
// the write that produced the event.
func Emit(ctx context.Context, p Publisher, topic string, key any, event map[string]any) {
	if p == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := p.Publish(ctx, topic, fmt.Sprint(key), event); err != nil {
		logging.FromContext(ctx).Error("event_publish_failed", "topic", topic, "type", event["type"], "error", err)
	}
}

type Nop struct{}

func (Nop) Publish(context.Context, string, string, any) error { return nil }
func (Nop) Close() error                                       { return nil }

type Message struct {
	Topic string
	Key   string
	Event any
}

// Memory keeps published events in order. Safe for concurrent use.
type Memory struct {
	mu       sync.Mutex
	messages []Message
}

func (m *Memory) Publish(_ context.Context, topic, key string, event any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, Message{Topic: topic, Key: key, Event: event})
	return nil
}

func (m *Memory) Close() error { return nil }

func (m *Memory) Messages() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Message, len(m.messages))
	copy(out, m.messages)
	return out
}

// Types returns the "type" field of every message, in publish order.
func (m *Memory) Types() []string {
	var out []string
	for _, msg := range m.Messages() {
		if ev, ok := msg.Event.(map[string]any); ok {
			out = append(out, fmt.Sprint(ev["type"]))
		}
	}
	return out
}
