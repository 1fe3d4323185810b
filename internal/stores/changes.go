package stores

import (
	"sync"
	"time"
)

// Field names published in Change notifications.
const (
	FieldServers  = "servers"
	FieldSelected = "selectedServer"
	FieldMods     = "mods"
	FieldConfigs  = "configs"
	FieldLogs     = "logs"
	FieldLoading  = "isLoading"
	FieldError    = "error"
)

// subscriberBuffer is the per-subscriber channel capacity. Changes are
// dropped for a subscriber whose buffer is full.
const subscriberBuffer = 64

// Change reports that a store field was written.
type Change struct {
	Store     string
	Field     string
	Timestamp time.Time
}

// broadcaster fans out changes to subscribers without ever blocking the
// publishing store.
type broadcaster struct {
	mu     sync.RWMutex
	next   int
	subs   map[int]chan Change
	source string
}

func newBroadcaster(source string) *broadcaster {
	return &broadcaster{subs: make(map[int]chan Change), source: source}
}

// Subscribe returns a channel of changes and a function that cancels
// the subscription and closes the channel.
func (b *broadcaster) Subscribe() (<-chan Change, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	ch := make(chan Change, subscriberBuffer)
	b.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

func (b *broadcaster) publish(fields ...string) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	now := time.Now()
	for _, field := range fields {
		change := Change{Store: b.source, Field: field, Timestamp: now}
		for _, ch := range b.subs {
			select {
			case ch <- change:
			default:
			}
		}
	}
}
