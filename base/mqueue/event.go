package mqueue

import (
	"app/base/utils"
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

const (
	EventCustomersCleaned = "customers-cleaned"
	EventOrderReminder    = "order-reminder"
	EventCrmReport        = "crm-report"
)

type CrmEvent struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`

	// customers-cleaned
	DeletedCustomers int `json:"deleted_customers,omitempty"`

	// order-reminder
	OrderID       int64  `json:"order_id,omitempty"`
	CustomerEmail string `json:"customer_email,omitempty"`

	// crm-report
	TotalCustomers int    `json:"total_customers,omitempty"`
	TotalOrders    int    `json:"total_orders,omitempty"`
	TotalRevenue   string `json:"total_revenue,omitempty"`
}

func NewCrmEvent(eventType string) CrmEvent {
	return CrmEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

type EventHandler func(event CrmEvent)

// Performs parsing of kafka message, and then dispatches this message into provided functions
func makeKafkaHandler(eventHandler EventHandler) KafkaHandler {
	return func(m kafka.Message) {
		var event CrmEvent
		err := json.Unmarshal(m.Value, &event)
		if err != nil {
			utils.Log("err", err.Error()).Error("Could not deserialize crm event")
			return
		}
		eventHandler(event)
	}
}

func (t *readerImpl) HandleEvents(handler EventHandler) {
	t.HandleMessages(makeKafkaHandler(handler))
}

func (t *writerImpl) WriteEvents(ctx context.Context, events ...CrmEvent) error {
	msgs := make([]kafka.Message, len(events))
	for i, ev := range events {
		data, err := json.Marshal(&ev)
		if err != nil {
			return errors.Wrap(err, "Serializing event")
		}
		msgs[i] = kafka.Message{Key: []byte(ev.Type), Value: data}
	}
	err := t.WriteMessages(ctx, msgs...)
	if err != nil {
		kafkaErrorWriteCnt.Inc()
	}
	return err
}
