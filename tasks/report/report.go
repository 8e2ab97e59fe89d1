package report

import (
	"app/base"
	"app/base/core"
	"app/base/models"
	"app/base/mqueue"
	"app/base/utils"
	"app/tasks"
	"app/tasks/joblog"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	runLog       *joblog.Writer
	notifyWriter mqueue.Writer
)

func configure() {
	core.ConfigureApp()
	runLog = joblog.New(utils.Getenv("REPORT_LOG_FILE", "/tmp/crm_report_log.txt"))
	if tasks.EnableNotifications && os.Getenv("KAFKA_ADDRESS") != "" {
		topic := utils.Getenv("NOTIFICATIONS_TOPIC", "crm.notifications")
		notifyWriter = mqueue.WriterFromEnv(topic)
	}
}

type CrmReport struct {
	Customers int64
	Orders    int64
	Revenue   decimal.Decimal
}

// RunCrmReport aggregates totals over the whole database and appends one
// summary line to the report log.
func RunCrmReport() {
	tasks.HandleContextCancel(tasks.WaitAndExit)
	configure()
	defer utils.LogPanics(true)

	crmReport, err := generateReport()
	if err != nil {
		utils.LogError("err", err.Error(), "CRM report")
		if logErr := runLog.Append(
			fmt.Sprintf("%s - ERROR: Failed to generate CRM report. Reason: %s", runLog.Timestamp(), err.Error()),
		); logErr != nil {
			utils.LogError("err", logErr.Error(), "Could not append to report run log")
		}
		return
	}

	if err := runLog.Append(formatReportLine(runLog.Timestamp(), crmReport)); err != nil {
		utils.LogError("err", err.Error(), "Could not append to report run log")
	}
	sendReportEvent(crmReport)
	utils.LogInfo("customers", crmReport.Customers, "orders", crmReport.Orders,
		"revenue", crmReport.Revenue.StringFixed(2), "CRM report generated successfully")
}

func generateReport() (CrmReport, error) {
	crmReport := CrmReport{Revenue: decimal.Zero}
	err := tasks.WithTx(func(tx *gorm.DB) error {
		if err := tx.Model(models.Customer{}).Count(&crmReport.Customers).Error; err != nil {
			return errors.Wrap(err, "Counting customers")
		}
		if err := tx.Model(models.Order{}).Count(&crmReport.Orders).Error; err != nil {
			return errors.Wrap(err, "Counting orders")
		}

		var revenue *decimal.Decimal
		if err := tx.Model(models.Order{}).
			Select("SUM(total_amount)").Scan(&revenue).Error; err != nil {
			return errors.Wrap(err, "Summing revenue")
		}
		if revenue != nil {
			crmReport.Revenue = *revenue
		}
		return nil
	})
	return crmReport, err
}

func formatReportLine(timestamp string, crmReport CrmReport) string {
	return fmt.Sprintf("%s - Report: %d customers, %d orders, $%s revenue.",
		timestamp, crmReport.Customers, crmReport.Orders, crmReport.Revenue.StringFixed(2))
}

func sendReportEvent(crmReport CrmReport) {
	if notifyWriter == nil {
		return
	}
	ev := mqueue.NewCrmEvent(mqueue.EventCrmReport)
	ev.TotalCustomers = int(crmReport.Customers)
	ev.TotalOrders = int(crmReport.Orders)
	ev.TotalRevenue = crmReport.Revenue.StringFixed(2)
	if err := notifyWriter.WriteEvents(base.Context, ev); err != nil {
		utils.LogError("err", err.Error(), "Could not send report event")
	}
}
