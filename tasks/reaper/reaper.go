package reaper

import (
	"app/base/core"
	"app/base/metrics"
	"app/base/mqueue"
	"app/base/utils"
	"app/tasks"
	"app/tasks/joblog"
	"os"
)

var (
	enableCustomerDelete bool
	runLog               *joblog.Writer
	notifyWriter         mqueue.Writer
)

func configure() {
	core.ConfigureApp()
	metrics.Configure()
	enableCustomerDelete = utils.GetBoolEnvOrDefault("ENABLE_CUSTOMER_DELETE", true)
	runLog = joblog.New(utils.Getenv("CLEANUP_LOG_FILE", "/tmp/customer_cleanup_log.txt"))
	if tasks.EnableNotifications && os.Getenv("KAFKA_ADDRESS") != "" {
		topic := utils.Getenv("NOTIFICATIONS_TOPIC", "crm.notifications")
		notifyWriter = mqueue.WriterFromEnv(topic)
	}
}

// RunCustomerCleanup deletes customers without any order in the trailing
// inactivity window and reports how many were removed.
func RunCustomerCleanup() {
	tasks.HandleContextCancel(tasks.WaitAndExit)
	configure()

	res := runCustomerCleanup()
	if err := Metrics().Add(); err != nil {
		utils.LogInfo("err", err, "Could not push to pushgateway")
	}
	checkRunSucceeded(res)
}

// A failed run must not look successful to the scheduler.
func checkRunSucceeded(res CleanupResult) {
	if res.Err != nil {
		utils.LogFatal("err", res.Err.Error(), "Customer cleanup failed")
	}
}
