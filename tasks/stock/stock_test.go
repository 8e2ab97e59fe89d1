package stock

import (
	"app/base/core"
	"app/base/database"
	"app/base/models"
	"app/base/utils"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatRunLines(t *testing.T) {
	restocked := []RestockedProduct{
		{Name: "Laptop", Stock: 13},
		{Name: "Mouse", Stock: 15},
	}
	lines := formatRunLines("2024-01-15 03:00:00", restocked)
	assert.Equal(t, []string{
		"--- Stock Update Log [2024-01-15 03:00:00] ---",
		"Status: 2 products restocked.",
		"  - Restocked 'Laptop' to new stock level: 13",
		"  - Restocked 'Mouse' to new stock level: 15",
	}, lines)
}

func TestFormatRunLinesEmpty(t *testing.T) {
	lines := formatRunLines("2024-01-15 03:00:00", nil)
	assert.Equal(t, []string{
		"--- Stock Update Log [2024-01-15 03:00:00] ---",
		"Status: No products below stock threshold.",
	}, lines)
}

func TestUpdateLowStock(t *testing.T) {
	utils.SkipWithoutDB(t)
	core.SetupTestEnvironment()

	products := []models.Product{
		{Name: "stock-test-low", Price: decimal.NewFromFloat(9.99), Stock: 3},
		{Name: "stock-test-high", Price: decimal.NewFromFloat(9.99), Stock: 100},
	}
	assert.Nil(t, database.DB.Create(&products).Error)
	defer func() {
		assert.Nil(t, database.DB.Where("name LIKE ?", "stock-test-%").Delete(&models.Product{}).Error)
	}()

	currentRestockStatus := enableRestock
	enableRestock = true
	restocked, err := runUpdateLowStock()
	enableRestock = currentRestockStatus
	assert.Nil(t, err)

	restockedNames := map[string]int{}
	for _, product := range restocked {
		restockedNames[product.Name] = product.Stock
	}
	assert.Equal(t, 13, restockedNames["stock-test-low"])
	_, found := restockedNames["stock-test-high"]
	assert.False(t, found)
}
