package notifier

import (
	"app/base/mqueue"
	"app/tasks/joblog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDeliveryLine(t *testing.T) {
	event := mqueue.NewCrmEvent(mqueue.EventOrderReminder)
	event.OrderID = 42
	event.CustomerEmail = "alice@example.com"

	line, err := formatDeliveryLine(event)
	assert.Nil(t, err)
	assert.Contains(t, line, "reminder sent for order 42 to alice@example.com.")
}

func TestFormatDeliveryLineCleanup(t *testing.T) {
	event := mqueue.NewCrmEvent(mqueue.EventCustomersCleaned)
	event.DeletedCustomers = 7

	line, err := formatDeliveryLine(event)
	assert.Nil(t, err)
	assert.Contains(t, line, "cleanup notice, 7 customers removed.")
}

func TestFormatDeliveryLineUnknownType(t *testing.T) {
	_, err := formatDeliveryLine(mqueue.NewCrmEvent("mystery"))
	assert.NotNil(t, err)
}

func TestHandleNotification(t *testing.T) {
	path := filepath.Join(t.TempDir(), "delivery.txt")
	deliveryLog = joblog.New(path)

	event := mqueue.NewCrmEvent(mqueue.EventCrmReport)
	event.TotalCustomers = 3
	event.TotalOrders = 5
	event.TotalRevenue = "123.45"
	handleNotification(event)

	data, err := os.ReadFile(path)
	assert.Nil(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, 1, len(lines))
	assert.Contains(t, lines[0], "report published, 3 customers, 5 orders, $123.45 revenue.")
}

func TestHandleNotificationUnknownDropped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "delivery.txt")
	deliveryLog = joblog.New(path)

	handleNotification(mqueue.NewCrmEvent("mystery"))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
