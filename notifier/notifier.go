package notifier

import (
	"app/base/core"
	"app/base/metrics"
	"app/base/mqueue"
	"app/base/utils"
	"app/tasks/joblog"
	"fmt"
	"time"

	"github.com/pkg/errors"
)

var (
	notificationsTopic string
	deliveryLog        *joblog.Writer
)

func configure() {
	core.ConfigureApp()
	metrics.Configure()
	notificationsTopic = utils.Getenv("NOTIFICATIONS_TOPIC", "crm.notifications")
	deliveryLog = joblog.New(utils.Getenv("DELIVERY_LOG_FILE", "/tmp/crm_notifications_log.txt"))
}

// RunNotifier consumes notification events and delivers them to the delivery
// log. Stands in for an outbound channel like email.
func RunNotifier() {
	configure()
	utils.LogInfo("topic", notificationsTopic, "Notifier starting")
	mqueue.RunReader(notificationsTopic, mqueue.ReaderFromEnv, handleNotification)
}

func handleNotification(event mqueue.CrmEvent) {
	utils.LogTrace("id", event.ID, "type", event.Type, "notification event received")
	line, err := formatDeliveryLine(event)
	if err != nil {
		utils.LogWarn("type", event.Type, "id", event.ID, "unknown notification event")
		return
	}
	if err := deliveryLog.Append(line); err != nil {
		utils.LogError("err", err.Error(), "could not write delivery log")
		return
	}
	deliveredNotificationsCnt.WithLabelValues(event.Type).Inc()
}

func formatDeliveryLine(event mqueue.CrmEvent) (string, error) {
	ts := time.Now().Format(joblog.TimeFormat)
	switch event.Type {
	case mqueue.EventCustomersCleaned:
		return fmt.Sprintf("%s: cleanup notice, %d customers removed.", ts, event.DeletedCustomers), nil
	case mqueue.EventOrderReminder:
		return fmt.Sprintf("%s: reminder sent for order %d to %s.", ts, event.OrderID, event.CustomerEmail), nil
	case mqueue.EventCrmReport:
		return fmt.Sprintf("%s: report published, %d customers, %d orders, $%s revenue.",
			ts, event.TotalCustomers, event.TotalOrders, event.TotalRevenue), nil
	}
	return "", errors.Errorf("unknown event type: %s", event.Type)
}
