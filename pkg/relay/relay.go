package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ipropixel/leadfinder/pkg/cache"
	"github.com/ipropixel/leadfinder/pkg/logger"
)

// Kind classifies a log event for the live viewer.
type Kind string

const (
	KindInfo       Kind = "info"
	KindSuccess    Kind = "success"
	KindError      Kind = "error"
	KindItemNew    Kind = "item-new"
	KindItemUpdate Kind = "item-update"
	KindItemSkip   Kind = "item-skip"

	// KindHeartbeat keeps the transport alive during long external waits.
	// Viewers must not surface it as a log line.
	KindHeartbeat Kind = "heartbeat"
)

// Event is one message on a run's log channel.
type Event struct {
	Message   string    `json:"message,omitempty"`
	Kind      Kind      `json:"kind"`
	Timestamp time.Time `json:"timestamp"`
}

// ChannelName returns the Redis channel carrying logs for a run.
func ChannelName(runID string) string {
	return "scrape:logs:" + runID
}

// Run is a run-scoped broadcast channel for ingestion progress. It is
// best-effort by contract: publish failures never propagate to the run.
type Run struct {
	cache   *cache.Client
	log     logger.Logger
	channel string
	sub     *redis.PubSub

	stop      chan struct{}
	closeOnce sync.Once
	closed    atomic.Bool
	wg        sync.WaitGroup
}

// Open establishes the broadcast channel for runID. It blocks until the
// subscription is acknowledged, so every event published after Open
// returns is deliverable. Callers must Close the run on every exit path.
func Open(ctx context.Context, c *cache.Client, runID string, heartbeat time.Duration, log logger.Logger) (*Run, error) {
	channel := ChannelName(runID)

	sub := c.Subscribe(ctx, channel)
	// Receive blocks until the SUBSCRIBE is confirmed. Publishing before
	// this point is lossy by contract, so the join gates Open itself.
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("failed joining log channel %s: %w", channel, err)
	}

	r := &Run{
		cache:   c,
		log:     log.With("channel", channel),
		channel: channel,
		sub:     sub,
		stop:    make(chan struct{}),
	}

	r.wg.Add(2)
	go r.drain()
	go r.heartbeatLoop(heartbeat)

	return r, nil
}

// Publish sends a log event to the run's channel. Failures are swallowed:
// the relay is a side channel, never a correctness dependency.
func (r *Run) Publish(message string, kind Kind) {
	if r.closed.Load() {
		return
	}
	r.send(Event{Message: message, Kind: kind, Timestamp: time.Now().UTC()})
}

// Close stops the heartbeat and releases the channel. Safe to call from
// multiple exit paths; only the first call takes effect.
func (r *Run) Close() {
	r.closeOnce.Do(func() {
		r.closed.Store(true)
		close(r.stop)
		r.wg.Wait()
		if err := r.sub.Close(); err != nil {
			r.log.Warn("failed to release log channel", "error", err)
		}
	})
}

func (r *Run) send(ev Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		r.log.Warn("failed to encode log event", "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := r.cache.Publish(ctx, r.channel, payload); err != nil {
		r.log.Warn("failed to publish log event", "error", err)
	}
}

// drain discards the publisher's own copy of broadcast messages so the
// subscription buffer never fills up over a long run.
func (r *Run) drain() {
	defer r.wg.Done()
	ch := r.sub.Channel()
	for {
		select {
		case <-r.stop:
			return
		case _, ok := <-ch:
			if !ok {
				return
			}
		}
	}
}

func (r *Run) heartbeatLoop(interval time.Duration) {
	defer r.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			r.send(Event{Kind: KindHeartbeat, Timestamp: time.Now().UTC()})
		}
	}
}

// Listen subscribes a viewer to a run's log channel. It blocks until the
// subscription is acknowledged, then streams decoded events until ctx is
// cancelled or the returned cancel function is called. Heartbeats are
// delivered too; viewers decide how to render them (typically as
// transport keep-alives only).
func Listen(ctx context.Context, c *cache.Client, runID string) (<-chan Event, func(), error) {
	sub := c.Subscribe(ctx, ChannelName(runID))
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, nil, fmt.Errorf("failed joining log channel: %w", err)
	}

	events := make(chan Event)
	done := make(chan struct{})

	go func() {
		defer close(events)
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case <-done:
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var ev Event
				if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
					continue
				}
				select {
				case events <- ev:
				case <-ctx.Done():
					return
				case <-done:
					return
				}
			}
		}
	}()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			close(done)
			_ = sub.Close()
		})
	}
	return events, cancel, nil
}
