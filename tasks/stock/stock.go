package stock

import (
	"app/base/core"
	"app/base/utils"
	"app/tasks"
	"app/tasks/joblog"
	"fmt"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var (
	enableRestock bool
	runLog        *joblog.Writer
)

func configure() {
	core.ConfigureApp()
	enableRestock = utils.GetBoolEnvOrDefault("ENABLE_RESTOCK", true)
	runLog = joblog.New(utils.Getenv("LOW_STOCK_LOG_FILE", "/tmp/low_stock_updates_log.txt"))
}

type RestockedProduct struct {
	Name  string
	Stock int
}

// RunUpdateLowStock restocks products under the low-stock threshold and logs
// the new stock levels.
func RunUpdateLowStock() {
	tasks.HandleContextCancel(tasks.WaitAndExit)
	configure()
	defer utils.LogPanics(true)

	restocked, err := runUpdateLowStock()
	if err != nil {
		utils.LogError("err", err.Error(), "Low stock update")
		if logErr := runLog.Append(
			fmt.Sprintf("--- ERROR Log [%s] ---", runLog.Timestamp()),
			fmt.Sprintf("Failed to update low stock products: %s", err.Error()),
		); logErr != nil {
			utils.LogError("err", logErr.Error(), "Could not append to low stock run log")
		}
		return
	}

	if err := runLog.Append(formatRunLines(runLog.Timestamp(), restocked)...); err != nil {
		utils.LogError("err", err.Error(), "Could not append to low stock run log")
	}
	utils.LogInfo("nRestocked", len(restocked), "Low stock update performed successfully")
}

func runUpdateLowStock() ([]RestockedProduct, error) {
	if !enableRestock {
		return nil, nil
	}

	var restocked []RestockedProduct
	err := tasks.WithTx(func(tx *gorm.DB) error {
		return tx.Raw("UPDATE product SET stock = stock + ? WHERE stock < ? RETURNING name, stock",
			tasks.RestockAmount, tasks.LowStockThreshold).
			Scan(&restocked).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "Restock products")
	}
	return restocked, nil
}

func formatRunLines(timestamp string, restocked []RestockedProduct) []string {
	lines := []string{fmt.Sprintf("--- Stock Update Log [%s] ---", timestamp)}
	if len(restocked) == 0 {
		return append(lines, "Status: No products below stock threshold.")
	}

	lines = append(lines, fmt.Sprintf("Status: %d products restocked.", len(restocked)))
	for _, product := range restocked {
		lines = append(lines, fmt.Sprintf("  - Restocked '%s' to new stock level: %d", product.Name, product.Stock))
	}
	return lines
}
