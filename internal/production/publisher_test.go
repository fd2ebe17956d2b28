package production

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelPublisherForwardsChanges(t *testing.T) {
	ch := make(chan Change, 1)
	p := NewChannelPublisher(ch)

	require.NoError(t, p.Publish(context.Background(), Change{Container: "proxy", State: 1}))

	got := <-ch
	assert.Equal(t, "proxy", got.Container)
	assert.Equal(t, 1, got.State)
}

func TestChannelPublisherDropsOnBackpressure(t *testing.T) {
	ch := make(chan Change) // unbuffered, nobody reading
	p := NewChannelPublisher(ch)

	assert.NoError(t, p.Publish(context.Background(), Change{Container: "proxy"}))
}

func TestLogPublisherWritesChange(t *testing.T) {
	var buf bytes.Buffer
	p := NewLogPublisher(zerolog.New(&buf))

	require.NoError(t, p.Publish(context.Background(), Change{Container: "component", State: 3}))

	out := buf.String()
	assert.Contains(t, out, `"container":"component"`)
	assert.Contains(t, out, "state changed")
}
