package bus

import (
	"context"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisFanout mirrors a local topic onto a Redis pub/sub channel so listeners
// in other processes observe the same change signal. Messages carry only an
// origin token; each bridge drops its own messages to avoid re-delivering a
// publish that originated locally.
type RedisFanout struct {
	client  *redis.Client
	channel string
	topic   Topic
	local   *Bus
	origin  string
	logger  *zap.Logger
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewRedisFanout wires the bridge but does not start it.
func NewRedisFanout(client *redis.Client, channel string, local *Bus, topic Topic, logger *zap.Logger) *RedisFanout {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisFanout{
		client:  client,
		channel: channel,
		topic:   topic,
		local:   local,
		origin:  uuid.NewString(),
		logger:  logger,
	}
}

// Publish forwards a local notification to the Redis channel. Failures are
// logged and swallowed; the local signal already fired.
func (f *RedisFanout) Publish(ctx context.Context) {
	if err := f.client.Publish(ctx, f.channel, f.origin).Err(); err != nil {
		f.logger.Warn("redis fanout publish failed", zap.String("channel", f.channel), zap.Error(err))
	}
}

// Start consumes the Redis channel and republishes foreign notifications on
// the local bus until Stop is called.
func (f *RedisFanout) Start(ctx context.Context) {
	ctx, f.cancel = context.WithCancel(ctx)
	f.done = make(chan struct{})
	sub := f.client.Subscribe(ctx, f.channel)

	go func() {
		defer close(f.done)
		defer sub.Close()
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				if msg.Payload == f.origin {
					continue
				}
				f.local.Publish(f.topic)
			}
		}
	}()
}

// Stop terminates the subscription loop and waits for it to exit.
func (f *RedisFanout) Stop() {
	if f.cancel == nil {
		return
	}
	f.cancel()
	<-f.done
}
