package production

import (
	"context"

	"github.com/rs/zerolog"
)

// Change describes one announced container mutation.
type Change struct {
	Container string
	State     any
}

// Publisher forwards container changes to an external consumer.
type Publisher interface {
	Publish(ctx context.Context, change Change) error
}

// ChannelPublisher forwards changes to a Go channel.
// Non-blocking publish with drop on backpressure.
type ChannelPublisher struct {
	ch chan<- Change
}

// NewChannelPublisher creates a ChannelPublisher with the given output channel.
func NewChannelPublisher(ch chan<- Change) *ChannelPublisher {
	return &ChannelPublisher{ch: ch}
}

func (p *ChannelPublisher) Publish(ctx context.Context, change Change) error {
	select {
	case p.ch <- change:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil // Non-blocking drop
	}
}

func (p *ChannelPublisher) Close() error {
	close(p.ch)
	return nil
}

// LogPublisher writes each change through zerolog.
type LogPublisher struct {
	logger zerolog.Logger
}

// NewLogPublisher creates a LogPublisher emitting through the given logger.
func NewLogPublisher(logger zerolog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, change Change) error {
	p.logger.Info().
		Str("container", change.Container).
		Interface("state", change.State).
		Msg("state changed")
	return nil
}
