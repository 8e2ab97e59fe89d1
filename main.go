package main

import (
	"app/base"
	"app/base/utils"
	"app/database_admin"
	"app/manager"
	"app/notifier"
	"app/tasks/heartbeat"
	"app/tasks/reaper"
	"app/tasks/reminders"
	"app/tasks/report"
	"app/tasks/stock"
	"log"
	"os"

	_ "go.uber.org/automaxprocs"
)

func main() {
	base.HandleSignals()

	defer utils.LogPanics(true)
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "manager":
			manager.RunManager()
			return
		case "notifier":
			notifier.RunNotifier()
			return
		case "clean_customers":
			reaper.RunCustomerCleanup()
			return
		case "update_stock":
			stock.RunUpdateLowStock()
			return
		case "order_reminders":
			reminders.RunOrderReminders()
			return
		case "crm_report":
			report.RunCrmReport()
			return
		case "heartbeat":
			heartbeat.RunHeartbeat()
			return
		case "migrate":
			database_admin.MigrateUp(os.Args[2], os.Args[3])
			return
		}
	}
	log.Fatal("You need to provide a command")
}
