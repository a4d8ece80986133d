// Package events defines the domain events emitted by the service layer and
// the publishers that deliver them.
package events

import (
	"context"
	"time"
)

// EventPublisher delivers domain events to interested consumers.
type EventPublisher interface {
	Publish(ctx context.Context, event interface{}) error
	Close() error
}

// StoreProvisionedEvent is emitted when a new store is registered.
type StoreProvisionedEvent struct {
	StoreID     string    `json:"storeId"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// StockChangedEvent is emitted whenever an inventory count moves, whether by
// an explicit update or a basket pick-up/return.
type StockChangedEvent struct {
	InventoryID string    `json:"inventoryId"`
	ProductID   string    `json:"productId"`
	Delta       int       `json:"delta"`
	NewCount    int       `json:"newCount"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// DeviceEventRaised is emitted when a sensor or appliance reports an event.
type DeviceEventRaised struct {
	DeviceID   string    `json:"deviceId"`
	DeviceType string    `json:"deviceType"`
	Payload    string    `json:"payload"`
	OccurredAt time.Time `json:"occurredAt"`
}

// DeviceCommandIssued is emitted when a command is dispatched to an appliance.
type DeviceCommandIssued struct {
	DeviceID   string    `json:"deviceId"`
	DeviceType string    `json:"deviceType"`
	Payload    string    `json:"payload"`
	OccurredAt time.Time `json:"occurredAt"`
}

// EventType returns the wire name for a known event, empty otherwise.
func EventType(event interface{}) string {
	switch event.(type) {
	case StoreProvisionedEvent:
		return "StoreProvisioned"
	case StockChangedEvent:
		return "StockChanged"
	case DeviceEventRaised:
		return "DeviceEventRaised"
	case DeviceCommandIssued:
		return "DeviceCommandIssued"
	default:
		return ""
	}
}
