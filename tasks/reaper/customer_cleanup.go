package reaper

import (
	"app/base"
	"app/base/database"
	"app/base/models"
	"app/base/mqueue"
	"app/base/utils"
	"app/tasks"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// CleanupResult is the structured outcome of one reaper run. Success or
// failure is carried here, not inferred from whatever got printed.
type CleanupResult struct {
	Deleted int
	Pruned  int64
	Err     error
}

func cleanupCutoff(now time.Time) time.Time {
	return now.Add(-time.Duration(tasks.InactiveDays) * 24 * time.Hour)
}

func runCustomerCleanup() CleanupResult {
	defer utils.LogPanics(true)

	res := CleanupResult{}
	res.Err = tasks.WithTx(func(tx *gorm.DB) error {
		nDeleted, err := deleteInactiveCustomers(tx, cleanupCutoff(time.Now()), tasks.DeleteInactiveCustomersLimit)
		if err != nil {
			return errors.Wrap(err, "Delete inactive customers")
		}
		utils.LogInfo("nDeleted", nDeleted, "Inactive customers deleted")
		res.Deleted = nDeleted
		deletedInactiveCustomersCnt.Add(float64(nDeleted))

		// pruning deleted_customer ledger
		nPruned, err := pruneDeletedCustomers(tx, tasks.DeleteInactiveCustomersLimit)
		if err != nil {
			return errors.Wrap(err, "Prune deleted_customer")
		}
		utils.LogInfo("nPruned", nPruned, "Deleted_customer ledger items pruned")
		res.Pruned = nPruned
		prunedDeletedCustomersCnt.Add(float64(nPruned))

		return nil
	})

	reportResult(res)
	return res
}

// reportResult writes the run log line, the stdout summary consumed by the
// invoking scheduler and the kafka notification. The log gets a line on
// failure too, never an empty or truncated entry.
func reportResult(res CleanupResult) {
	if res.Err != nil {
		utils.LogError("err", res.Err.Error(), "Customer cleanup")
		if err := runLog.Append(formatErrorLine(runLog.Timestamp(), res.Err)); err != nil {
			utils.LogError("err", err.Error(), "Could not append to cleanup run log")
		}
		return
	}

	fmt.Printf("%d inactive customers deleted.\n", res.Deleted)
	if err := runLog.Append(formatRunLine(runLog.Timestamp(), res.Deleted)); err != nil {
		utils.LogError("err", err.Error(), "Could not append to cleanup run log")
	}
	sendCleanupEvent(res.Deleted)
	utils.LogInfo("Customer cleanup task performed successfully")
}

func formatRunLine(timestamp string, nDeleted int) string {
	return fmt.Sprintf("%s: %d inactive customers deleted.", timestamp, nDeleted)
}

func formatErrorLine(timestamp string, err error) string {
	return fmt.Sprintf("%s: customer cleanup failed: %s", timestamp, err.Error())
}

// deleteInactiveCustomers archives matched customers into the
// deleted_customer ledger and bulk-deletes them in the same transaction.
// Orders of a removed customer go away with the FK cascade.
func deleteInactiveCustomers(tx *gorm.DB, cutoff time.Time, limitDeleted int) (int, error) {
	if !enableCustomerDelete {
		return 0, nil
	}

	var ids []int64
	err := database.InactiveCustomers(tx, cutoff).
		Limit(limitDeleted).
		Pluck("c.id", &ids).Error
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}
	utils.LogDebug("nMatched", len(ids), "Inactive customers matched for deletion")

	err = tx.Exec(`INSERT INTO deleted_customer (customer_id, email, when_deleted)
	               SELECT id, email, now() FROM customer WHERE id IN (?)
	               ON CONFLICT (customer_id) DO UPDATE SET when_deleted = EXCLUDED.when_deleted`, ids).Error
	if err != nil {
		return 0, err
	}

	query := tx.Delete(&models.Customer{}, "id IN (?)", ids)
	return int(query.RowsAffected), query.Error
}

func pruneDeletedCustomers(tx *gorm.DB, limitDeleted int) (int64, error) {
	// postgres delete does not support limit
	subQ := tx.Model(&models.DeletedCustomer{}).
		Where("when_deleted < ?", time.Now().Add(-tasks.DeletedCustomersThreshold)).
		Limit(limitDeleted).
		Select("customer_id")
	query := tx.Delete(&models.DeletedCustomer{}, "customer_id in (?)", subQ)
	return query.RowsAffected, query.Error
}

func sendCleanupEvent(nDeleted int) {
	if notifyWriter == nil {
		return
	}
	ev := mqueue.NewCrmEvent(mqueue.EventCustomersCleaned)
	ev.DeletedCustomers = nDeleted
	if err := notifyWriter.WriteEvents(base.Context, ev); err != nil {
		utils.LogError("err", err.Error(), "Could not send cleanup event")
	}
}
