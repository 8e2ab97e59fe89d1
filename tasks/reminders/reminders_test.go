package reminders

import (
	"app/base/core"
	"app/base/database"
	"app/base/models"
	"app/base/mqueue"
	"app/base/utils"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatRunLines(t *testing.T) {
	reminders := []OrderReminder{
		{OrderID: 11, Email: "alice@example.com"},
		{OrderID: 12, Email: "bob@example.com"},
	}
	lines := formatRunLines("2024-01-15 03:00:00", reminders)
	assert.Equal(t, []string{
		"--- Reminder Log [2024-01-15 03:00:00] ---",
		"Reminder for Order ID: 11, Customer: alice@example.com",
		"Reminder for Order ID: 12, Customer: bob@example.com",
	}, lines)
}

func TestFormatRunLinesEmpty(t *testing.T) {
	lines := formatRunLines("2024-01-15 03:00:00", nil)
	assert.Equal(t, []string{
		"--- Reminder Log [2024-01-15 03:00:00] ---",
		"No recent orders found to process.",
	}, lines)
}

func TestSendReminderEvents(t *testing.T) {
	mock := &utils.MockKafkaWriter{}
	origWriter := notifyWriter
	notifyWriter = mqueue.NewWriter(mock)
	defer func() { notifyWriter = origWriter }()

	sendReminderEvents([]OrderReminder{
		{OrderID: 11, Email: "alice@example.com"},
		{OrderID: 12, Email: "bob@example.com"},
	})
	assert.Equal(t, 2, len(mock.Messages))
}

func TestLoadRecentOrders(t *testing.T) {
	utils.SkipWithoutDB(t)
	core.SetupTestEnvironment()

	customer := models.Customer{Name: "Reminder Test", Email: "reminder-test@example.com"}
	assert.Nil(t, database.DB.Create(&customer).Error)
	orders := []models.Order{
		{CustomerID: customer.ID, OrderDate: time.Now().Add(-24 * time.Hour)},
		{CustomerID: customer.ID, OrderDate: time.Now().Add(-30 * 24 * time.Hour)},
	}
	assert.Nil(t, database.DB.Create(&orders).Error)
	defer database.DeleteTestingCustomers(t, []string{customer.Email})

	reminders, err := loadRecentOrders()
	assert.Nil(t, err)

	found := 0
	for _, reminder := range reminders {
		if reminder.Email == customer.Email {
			found++
			assert.Equal(t, orders[0].ID, reminder.OrderID)
		}
	}
	assert.Equal(t, 1, found)
}
