package reaper

import (
	"app/base/core"
	"app/base/database"
	"app/base/models"
	"app/base/utils"
	"app/tasks"
	"app/tasks/joblog"
	"os"
	"path"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestCleanupCutoff(t *testing.T) {
	now := time.Date(2024, 1, 15, 3, 0, 0, 0, time.UTC)
	cutoff := cleanupCutoff(now)
	// window is exactly 365 days, not one calendar year
	assert.Equal(t, 365*24*time.Hour, now.Sub(cutoff))
}

func TestFormatRunLine(t *testing.T) {
	line := formatRunLine("2024-01-15 03:00:00", 7)
	assert.Equal(t, "2024-01-15 03:00:00: 7 inactive customers deleted.", line)
}

func TestFormatErrorLine(t *testing.T) {
	line := formatErrorLine("2024-01-15 03:00:00", errors.New("db unreachable"))
	assert.Equal(t, "2024-01-15 03:00:00: customer cleanup failed: db unreachable", line)
}

// a failed run still produces a log line, not an empty or truncated entry
func TestRunLogOnFailure(t *testing.T) {
	logPath := path.Join(t.TempDir(), "customer_cleanup_log.txt")
	origRunLog := runLog
	runLog = joblog.New(logPath)
	runLog.Now = func() time.Time { return time.Date(2024, 1, 15, 3, 0, 0, 0, time.UTC) }
	defer func() { runLog = origRunLog }()

	reportResult(CleanupResult{Err: errors.New("database unreachable")})

	content, err := os.ReadFile(logPath)
	assert.Nil(t, err)
	assert.Equal(t, "2024-01-15 03:00:00: customer cleanup failed: database unreachable\n", string(content))
}

func TestRunLogLineFormat(t *testing.T) {
	logPath := path.Join(t.TempDir(), "customer_cleanup_log.txt")
	origRunLog := runLog
	runLog = joblog.New(logPath)
	runLog.Now = func() time.Time { return time.Date(2024, 1, 15, 3, 0, 0, 0, time.UTC) }
	defer func() { runLog = origRunLog }()

	reportResult(CleanupResult{Deleted: 7})

	content, err := os.ReadFile(logPath)
	assert.Nil(t, err)
	assert.Equal(t, "2024-01-15 03:00:00: 7 inactive customers deleted.\n", string(content))
}

var testCleanupEmails = []string{
	"reaper-active@example.com",
	"reaper-boundary@example.com",
	"reaper-stale@example.com",
	"reaper-no-orders@example.com",
}

func createCleanupTestData(t *testing.T, cutoff time.Time) {
	customers := make([]models.Customer, len(testCleanupEmails))
	for i, email := range testCleanupEmails {
		customers[i] = models.Customer{Name: "Reaper Test", Email: email}
	}
	assert.Nil(t, database.DB.Create(&customers).Error)

	orders := []models.Order{
		{CustomerID: customers[0].ID, OrderDate: cutoff.Add(24 * time.Hour)},
		{CustomerID: customers[1].ID, OrderDate: cutoff}, // exactly at cutoff, still recent
		{CustomerID: customers[2].ID, OrderDate: cutoff.Add(-24 * time.Hour)},
	}
	assert.Nil(t, database.DB.Create(&orders).Error)
}

func withEnabledDelete(fn func()) {
	currentDeleteStatus := enableCustomerDelete
	enableCustomerDelete = true
	fn()
	enableCustomerDelete = currentDeleteStatus
}

func TestDeleteInactiveCustomers(t *testing.T) {
	utils.SkipWithoutDB(t)
	core.SetupTestEnvironment()

	cutoff := cleanupCutoff(time.Now())
	createCleanupTestData(t, cutoff)
	defer database.DeleteTestingCustomers(t, testCleanupEmails)

	var nDeleted int
	withEnabledDelete(func() {
		err := tasks.WithTx(func(tx *gorm.DB) error {
			var err error
			nDeleted, err = deleteInactiveCustomers(tx, cutoff, tasks.DeleteInactiveCustomersLimit)
			return err
		})
		assert.Nil(t, err)
	})

	// stale and order-less customers removed, count matches removed rows
	assert.Equal(t, 2, nDeleted)
	database.CheckCustomersInDB(t, testCleanupEmails[:2])
	database.CheckDeletedCustomersInDB(t, testCleanupEmails[2:], 2)

	// their orders went away with the cascade
	var orphanOrders int64
	assert.Nil(t, database.DB.Model(models.Order{}).
		Joins("LEFT JOIN customer c ON c.id = customer_order.customer_id").
		Where("c.id IS NULL").Count(&orphanOrders).Error)
	assert.Equal(t, int64(0), orphanOrders)

	// idempotence: immediate second run finds nothing
	withEnabledDelete(func() {
		err := tasks.WithTx(func(tx *gorm.DB) error {
			var err error
			nDeleted, err = deleteInactiveCustomers(tx, cutoff, tasks.DeleteInactiveCustomersLimit)
			return err
		})
		assert.Nil(t, err)
	})
	assert.Equal(t, 0, nDeleted)
}

func TestDeleteInactiveCustomersDisabled(t *testing.T) {
	utils.SkipWithoutDB(t)
	core.SetupTestEnvironment()

	err := tasks.WithTx(func(tx *gorm.DB) error {
		nDeleted, err := deleteInactiveCustomers(tx, cleanupCutoff(time.Now()), 1000)
		assert.Equal(t, 0, nDeleted)
		return err
	})
	assert.Nil(t, err)
}

func TestPruneDeletedCustomers(t *testing.T) {
	utils.SkipWithoutDB(t)
	core.SetupTestEnvironment()

	staleLedger := models.DeletedCustomer{
		CustomerID:  999999,
		Email:       "reaper-pruned@example.com",
		WhenDeleted: time.Now().Add(-tasks.DeletedCustomersThreshold - time.Hour),
	}
	assert.Nil(t, database.DB.Create(&staleLedger).Error)

	var nPruned int64
	err := tasks.WithTx(func(tx *gorm.DB) error {
		var err error
		nPruned, err = pruneDeletedCustomers(tx, tasks.DeleteInactiveCustomersLimit)
		return err
	})
	assert.Nil(t, err)
	assert.True(t, nPruned >= 1)
	database.CheckDeletedCustomersInDB(t, []string{"reaper-pruned@example.com"}, 0)
}
