package notifier

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/tip-processor/internal/domain/entity"
	mockcore "github.com/amirhossein-jamali/tip-processor/mocks/port/core"
)

func newTestHub(t *testing.T, buffer int) (*Hub, *mockcore.MockMetrics) {
	metrics := mockcore.NewMockMetrics(t)
	return NewHub(buffer, mockcore.NewPermissiveLogger(), metrics), metrics
}

func TestHub_PublishReachesOnlyChannelSubscribers(t *testing.T) {
	hub, _ := newTestHub(t, 4)
	a := hub.Join(entity.CreatorChannel(1))
	b := hub.Join(entity.CreatorChannel(1))
	other := hub.Join(entity.CreatorChannel(2))

	err := hub.Publish(context.Background(), entity.CreatorChannel(1), entity.EventNewTip, "payload")
	require.NoError(t, err)

	for _, sub := range []*Subscription{a, b} {
		select {
		case ev := <-sub.Events():
			assert.Equal(t, entity.EventNewTip, ev.Name)
			assert.Equal(t, "payload", ev.Payload)
		default:
			t.Fatal("event not delivered")
		}
	}
	assert.Len(t, other.Events(), 0)
}

func TestHub_SlowSubscriberDropsWithoutBlocking(t *testing.T) {
	hub, metrics := newTestHub(t, 1)
	metrics.EXPECT().IncDroppedEvent(entity.EventTipStatus).Return().Once()
	sub := hub.Join("creator_1")

	require.NoError(t, hub.Publish(context.Background(), "creator_1", entity.EventTipStatus, 1))
	require.NoError(t, hub.Publish(context.Background(), "creator_1", entity.EventTipStatus, 2))

	ev := <-sub.Events()
	assert.Equal(t, 1, ev.Payload)
}

func TestHub_LeaveClosesAndRemoves(t *testing.T) {
	hub, _ := newTestHub(t, 2)
	sub := hub.Join("creator_7")
	assert.Equal(t, 1, hub.Subscribers("creator_7"))

	hub.Leave(sub)
	hub.Leave(sub)

	_, open := <-sub.Events()
	assert.False(t, open)
	assert.Equal(t, 0, hub.Subscribers("creator_7"))
	assert.NoError(t, hub.Publish(context.Background(), "creator_7", entity.EventNewTip, nil))
}

func TestHub_PublishWithCanceledContext(t *testing.T) {
	hub, _ := newTestHub(t, 2)
	sub := hub.Join("creator_1")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, hub.Publish(ctx, "creator_1", entity.EventNewTip, nil), context.Canceled)
	assert.Len(t, sub.Events(), 0)
}

func TestHub_CloseDisconnectsEveryone(t *testing.T) {
	hub, _ := newTestHub(t, 2)
	a := hub.Join("creator_1")
	b := hub.Join("creator_2")

	hub.Close()

	for _, sub := range []*Subscription{a, b} {
		_, open := <-sub.Events()
		assert.False(t, open)
	}

	late := hub.Join("creator_1")
	_, open := <-late.Events()
	assert.False(t, open)
	hub.Leave(late)
}

func TestHub_ConcurrentJoinPublishLeave(t *testing.T) {
	hub, metrics := newTestHub(t, 8)
	metrics.EXPECT().IncDroppedEvent(entity.EventNewTip).Maybe().Return()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			sub := hub.Join("creator_1")
			hub.Leave(sub)
		}()
		go func() {
			defer wg.Done()
			_ = hub.Publish(context.Background(), "creator_1", entity.EventNewTip, nil)
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, hub.Subscribers("creator_1"))
}
