package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	channel  string
	payloads [][]byte
	err      error
}

func (p *recordingPublisher) Publish(_ context.Context, channel string, payload []byte) error {
	p.channel = channel
	p.payloads = append(p.payloads, payload)
	return p.err
}

func TestDispatcher_ContinuesAfterHandlerError(t *testing.T) {
	d := NewInMemoryDispatcher(nil)
	var calls []string

	d.Subscribe(EventSellerCreated, func(context.Context, Event) error {
		calls = append(calls, "first")
		return errors.New("fail")
	})
	d.Subscribe(EventSellerCreated, func(context.Context, Event) error {
		calls = append(calls, "second")
		return nil
	})
	d.Subscribe(EventSellerDeleted, func(context.Context, Event) error {
		calls = append(calls, "other")
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), NewEvent(EventSellerCreated, 1, Actor{}, nil)))
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestChannelForwarder(t *testing.T) {
	pub := &recordingPublisher{}
	handler := NewChannelForwarder(pub, "changes")

	event := NewEvent(EventSellerUpdated, 9, Actor{Subject: "ops"}, SellerPayload{Name: "Alice", DepartmentID: 2})
	require.NoError(t, handler(context.Background(), event))

	assert.Equal(t, "changes", pub.channel)
	require.Len(t, pub.payloads, 1)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(pub.payloads[0], &decoded))
	assert.Equal(t, "seller_updated", decoded["type"])
	assert.Equal(t, float64(9), decoded["entity_id"])
	assert.Equal(t, event.ID, decoded["id"])
}

func TestChannelForwarder_PublishError(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("down")}
	err := NewChannelForwarder(pub, "changes")(context.Background(), NewEvent(EventSellerDeleted, 1, Actor{}, nil))
	assert.ErrorContains(t, err, "down")
}
