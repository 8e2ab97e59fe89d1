package tasks

import (
	"app/base/utils"
	"time"

	log "github.com/sirupsen/logrus"
)

var (
	// Trailing window in days during which an order keeps its customer active
	InactiveDays = utils.PodConfig.GetInt("inactive_days", 365)
	// Remove only LIMIT customers in a run, useful to avoid complete wipe in case of error
	DeleteInactiveCustomersLimit = utils.PodConfig.GetInt("delete_inactive_customers_limit", 1000)
	// prune deleted_customer ledger records older than threshold
	DeletedCustomersThreshold = time.Hour * 24 * time.Duration(utils.PodConfig.GetInt("deleted_customers_retention_days", 90))
	// Products with stock below threshold get restocked
	LowStockThreshold = utils.PodConfig.GetInt("low_stock_threshold", 10)
	// How many units a restock adds
	RestockAmount = utils.PodConfig.GetInt("restock_amount", 10)
	// Orders placed within this window get a reminder
	ReminderWindowDays = utils.PodConfig.GetInt("reminder_window_days", 7)
	// Send task results to kafka when configured
	EnableNotifications = utils.PodConfig.GetBool("notifications", true)
	UseTraceLevel       = log.IsLevelEnabled(log.TraceLevel)
)
