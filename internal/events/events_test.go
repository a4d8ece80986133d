package events

import (
	"context"
	"testing"
	"time"

	"smartstore/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventType(t *testing.T) {
	assert.Equal(t, "StoreProvisioned", EventType(StoreProvisionedEvent{}))
	assert.Equal(t, "StockChanged", EventType(StockChangedEvent{}))
	assert.Equal(t, "DeviceEventRaised", EventType(DeviceEventRaised{}))
	assert.Equal(t, "DeviceCommandIssued", EventType(DeviceCommandIssued{}))
	assert.Equal(t, "", EventType(struct{}{}))
}

func TestInMemoryEventPublisher_RecordsEvents(t *testing.T) {
	publisher := NewInMemoryEventPublisher(nil)

	err := publisher.Publish(context.Background(), StockChangedEvent{
		InventoryID: "I1",
		ProductID:   "P1",
		Delta:       -2,
		NewCount:    8,
		OccurredAt:  time.Now(),
	})
	require.NoError(t, err)

	recorded := publisher.Events()
	require.Len(t, recorded, 1)

	stock, ok := recorded[0].(StockChangedEvent)
	require.True(t, ok)
	assert.Equal(t, "I1", stock.InventoryID)
	assert.Equal(t, -2, stock.Delta)
}

func TestInMemoryEventPublisher_EventsReturnsCopy(t *testing.T) {
	publisher := NewInMemoryEventPublisher(nil)
	require.NoError(t, publisher.Publish(context.Background(), StoreProvisionedEvent{StoreID: "S1"}))

	recorded := publisher.Events()
	recorded[0] = nil

	again := publisher.Events()
	require.Len(t, again, 1)
	assert.NotNil(t, again[0])
}

func TestKafkaEventPublisher_TopicRouting(t *testing.T) {
	publisher := &KafkaEventPublisher{config: &config.Config{
		KafkaTopicDevices: "store.devices",
		KafkaTopicStock:   "store.stock",
	}}

	topic, err := publisher.topicFor(DeviceEventRaised{})
	require.NoError(t, err)
	assert.Equal(t, "store.devices", topic)

	topic, err = publisher.topicFor(DeviceCommandIssued{})
	require.NoError(t, err)
	assert.Equal(t, "store.devices", topic)

	topic, err = publisher.topicFor(StockChangedEvent{})
	require.NoError(t, err)
	assert.Equal(t, "store.stock", topic)

	topic, err = publisher.topicFor(StoreProvisionedEvent{})
	require.NoError(t, err)
	assert.Equal(t, "store.stock", topic)

	_, err = publisher.topicFor(struct{}{})
	assert.Error(t, err)
}

func TestPartitionKey(t *testing.T) {
	assert.Equal(t, "S1", partitionKey(StoreProvisionedEvent{StoreID: "S1"}))
	assert.Equal(t, "I1", partitionKey(StockChangedEvent{InventoryID: "I1"}))
	assert.Equal(t, "D1", partitionKey(DeviceEventRaised{DeviceID: "D1"}))
	assert.Equal(t, "D2", partitionKey(DeviceCommandIssued{DeviceID: "D2"}))
	assert.Equal(t, "", partitionKey(struct{}{}))
}
