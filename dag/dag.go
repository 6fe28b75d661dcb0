package dag

import (
	"context"
	"errors"
	"sync"
)

// Channel errors surfaced by the in-memory implementations.
var (
	// ErrUnknownSender signals a receive from a sender id the channel set
	// does not know about.
	ErrUnknownSender = errors.New("unknown upstream sender")
	// ErrChannelClosed signals a receive from an upstream that has closed
	// without sending.
	ErrChannelClosed = errors.New("upstream channel closed")
)

// InChannels is the inbound side of a node: one value per upstream edge,
// addressed by sender id. SenderIDs reports the scheduler-defined upstream
// order, which downstream aggregation must preserve.
type InChannels interface {
	SenderIDs() []string
	RecvFrom(ctx context.Context, id string) (any, error)
}

// OutChannels is the outbound side of a node. Broadcast delivers one value
// to every downstream subscriber.
type OutChannels interface {
	Broadcast(v any)
}

// Action is one executable unit in a graph workflow. Run consumes upstream
// values, performs the node's work and broadcasts the result downstream.
// The returned value mirrors what was broadcast; on error nothing is
// broadcast.
type Action interface {
	Run(ctx context.Context, in InChannels, out OutChannels) (any, error)
}

// Inputs is a channel-backed InChannels implementation for wiring nodes
// without a scheduler. Each sender id owns a buffered channel of size one;
// Send delivers a value, Close marks the sender finished.
type Inputs struct {
	order []string
	chans map[string]chan any
}

// NewInputs creates an input set with the given upstream senders, in order.
func NewInputs(senderIDs ...string) *Inputs {
	chans := make(map[string]chan any, len(senderIDs))
	for _, id := range senderIDs {
		chans[id] = make(chan any, 1)
	}
	return &Inputs{order: senderIDs, chans: chans}
}

// Send delivers a value from the named sender. It must be called at most
// once per sender.
func (c *Inputs) Send(id string, v any) error {
	ch, ok := c.chans[id]
	if !ok {
		return ErrUnknownSender
	}
	ch <- v
	return nil
}

// Close marks the named sender as finished without a value. A subsequent
// RecvFrom for that sender returns ErrChannelClosed.
func (c *Inputs) Close(id string) {
	if ch, ok := c.chans[id]; ok {
		close(ch)
	}
}

// SenderIDs returns the upstream sender ids in wiring order.
func (c *Inputs) SenderIDs() []string {
	return c.order
}

// RecvFrom blocks until the named sender delivers a value, closes, or ctx
// is cancelled.
func (c *Inputs) RecvFrom(ctx context.Context, id string) (any, error) {
	ch, ok := c.chans[id]
	if !ok {
		return nil, ErrUnknownSender
	}
	select {
	case v, open := <-ch:
		if !open {
			return nil, ErrChannelClosed
		}
		return v, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Outputs is a channel-backed OutChannels implementation. Subscribers
// attach before the node runs and read one value per broadcast.
type Outputs struct {
	mu   sync.Mutex
	subs []chan any
}

// NewOutputs creates an empty output set.
func NewOutputs() *Outputs {
	return &Outputs{}
}

// Subscribe registers a downstream reader and returns its channel. The
// channel is buffered so Broadcast never blocks on a slow reader within
// the buffer size.
func (c *Outputs) Subscribe(buf int) <-chan any {
	c.mu.Lock()
	defer c.mu.Unlock()
	ch := make(chan any, buf)
	c.subs = append(c.subs, ch)
	return ch
}

// Broadcast delivers v to every subscriber.
func (c *Outputs) Broadcast(v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, ch := range c.subs {
		ch <- v
	}
}
