package reminders

import (
	"app/base"
	"app/base/core"
	"app/base/database"
	"app/base/mqueue"
	"app/base/utils"
	"app/tasks"
	"app/tasks/joblog"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
)

var (
	runLog       *joblog.Writer
	notifyWriter mqueue.Writer
)

func configure() {
	core.ConfigureApp()
	runLog = joblog.New(utils.Getenv("REMINDERS_LOG_FILE", "/tmp/order_reminders_log.txt"))
	if tasks.EnableNotifications && os.Getenv("KAFKA_ADDRESS") != "" {
		topic := utils.Getenv("NOTIFICATIONS_TOPIC", "crm.notifications")
		notifyWriter = mqueue.WriterFromEnv(topic)
	}
}

type OrderReminder struct {
	OrderID int64
	Email   string
}

// RunOrderReminders logs a reminder for every order placed within the
// trailing reminder window and publishes one event per order.
func RunOrderReminders() {
	tasks.HandleContextCancel(tasks.WaitAndExit)
	configure()
	defer utils.LogPanics(true)

	reminders, err := loadRecentOrders()
	if err != nil {
		utils.LogError("err", err.Error(), "Order reminders")
		if logErr := runLog.Append(
			fmt.Sprintf("--- ERROR Log [%s] ---", runLog.Timestamp()),
			fmt.Sprintf("An error occurred: %s", err.Error()),
		); logErr != nil {
			utils.LogError("err", logErr.Error(), "Could not append to reminders run log")
		}
		return
	}

	if err := runLog.Append(formatRunLines(runLog.Timestamp(), reminders)...); err != nil {
		utils.LogError("err", err.Error(), "Could not append to reminders run log")
	}
	sendReminderEvents(reminders)

	fmt.Println("Order reminders processed!")
	utils.LogInfo("nReminders", len(reminders), "Order reminders performed successfully")
}

func loadRecentOrders() ([]OrderReminder, error) {
	since := time.Now().Add(-time.Duration(tasks.ReminderWindowDays) * 24 * time.Hour)

	var reminders []OrderReminder
	err := database.OrdersSince(tasks.CancelableDB(), since).
		Select("co.id AS order_id, c.email").
		Order("co.id").
		Scan(&reminders).Error
	if err != nil {
		return nil, errors.Wrap(err, "Loading recent orders")
	}
	return reminders, nil
}

func formatRunLines(timestamp string, reminders []OrderReminder) []string {
	lines := []string{fmt.Sprintf("--- Reminder Log [%s] ---", timestamp)}
	if len(reminders) == 0 {
		return append(lines, "No recent orders found to process.")
	}

	for _, reminder := range reminders {
		lines = append(lines, fmt.Sprintf("Reminder for Order ID: %d, Customer: %s", reminder.OrderID, reminder.Email))
	}
	return lines
}

func sendReminderEvents(reminders []OrderReminder) {
	if notifyWriter == nil || len(reminders) == 0 {
		return
	}

	events := make([]mqueue.CrmEvent, len(reminders))
	for i, reminder := range reminders {
		ev := mqueue.NewCrmEvent(mqueue.EventOrderReminder)
		ev.OrderID = reminder.OrderID
		ev.CustomerEmail = reminder.Email
		events[i] = ev
	}
	if err := notifyWriter.WriteEvents(base.Context, events...); err != nil {
		utils.LogError("err", err.Error(), "Could not send reminder events")
	}
}
