package controllers

import (
	"sync"
	"time"

	"github.com/shashiranjanraj/voltkart/app/services"
	"github.com/shashiranjanraj/voltkart/pkg/ctx"
	"github.com/shashiranjanraj/voltkart/pkg/event"
	"github.com/shashiranjanraj/voltkart/pkg/sse"
)

type feedMessage struct {
	event   string
	payload interface{}
}

// FeedController streams order events to the admin panel over SSE.
// Construct it once; the constructor subscribes to the order events and
// fans them out to every connected client.
type FeedController struct {
	mu      sync.Mutex
	clients map[chan feedMessage]struct{}
}

func NewFeedController() *FeedController {
	f := &FeedController{clients: make(map[chan feedMessage]struct{})}

	event.Listen(services.EventOrderCreated, func(payload interface{}) {
		f.broadcast(services.EventOrderCreated, payload)
	})
	event.Listen(services.EventOrderStatusUpdated, func(payload interface{}) {
		f.broadcast(services.EventOrderStatusUpdated, payload)
	})

	return f
}

// Stream holds the connection open and pushes events as they happen.
// A comment heartbeat every 15s keeps proxies from closing the stream.
func (f *FeedController) Stream(c *ctx.Context) {
	stream := sse.New(c.W, c.R)
	stream.Comment("connected")

	ch := make(chan feedMessage, 16)
	f.subscribe(ch)
	defer f.unsubscribe(ch)

	heartbeat := time.NewTicker(15 * time.Second)
	defer heartbeat.Stop()

	for {
		select {
		case <-c.Context().Done():
			return
		case msg := <-ch:
			if err := stream.Send(msg.event, msg.payload); err != nil {
				return
			}
		case <-heartbeat.C:
			if stream.IsClosed() {
				return
			}
			stream.Comment("ping")
		}
	}
}

func (f *FeedController) subscribe(ch chan feedMessage) {
	f.mu.Lock()
	f.clients[ch] = struct{}{}
	f.mu.Unlock()
}

func (f *FeedController) unsubscribe(ch chan feedMessage) {
	f.mu.Lock()
	delete(f.clients, ch)
	f.mu.Unlock()
}

// broadcast never blocks: a slow client just misses the message.
func (f *FeedController) broadcast(eventName string, payload interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for ch := range f.clients {
		select {
		case ch <- feedMessage{event: eventName, payload: payload}:
		default:
		}
	}
}
