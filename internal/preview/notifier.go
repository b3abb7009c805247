package preview

import (
	"context"
	"log"

	"gotolinks/internal/cache"

	"github.com/redis/go-redis/v9"
)

// Notifier publishes profile preview updates through Redis pub/sub so every
// API instance can fan them out to its own websocket watchers.
type Notifier struct {
	rdb *redis.Client
}

// NewNotifier creates a Notifier backed by the given Redis client. A nil
// client yields a no-op notifier, which keeps single-process setups working
// without Redis.
func NewNotifier(rdb *redis.Client) *Notifier {
	return &Notifier{rdb: rdb}
}

// PublishProfileUpdate publishes a rendered profile snapshot for handle.
func (n *Notifier) PublishProfileUpdate(ctx context.Context, handle string, payload []byte) error {
	if n.rdb == nil {
		return nil
	}
	return n.rdb.Publish(ctx, cache.PreviewChannel(handle), payload).Err()
}

// StartPreviewSubscriber subscribes to every preview channel and invokes
// handler for each message until ctx is cancelled. It is a no-op without
// Redis.
func (n *Notifier) StartPreviewSubscriber(ctx context.Context, handler func(channel string, payload []byte)) {
	if n.rdb == nil {
		return
	}

	pubsub := n.rdb.PSubscribe(ctx, cache.PreviewChannelPattern)

	go func() {
		<-ctx.Done()
		_ = pubsub.Close()
	}()

	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("preview subscriber panic: %v", r)
			}
		}()

		ch := pubsub.Channel()
		for msg := range ch {
			handler(msg.Channel, []byte(msg.Payload))
		}
	}()
}
