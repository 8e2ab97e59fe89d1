package controllers

import (
	"app/base/core"
	"app/base/database"
	"app/base/models"
	"app/base/utils"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrdersExportCSV(t *testing.T) {
	utils.SkipWithoutDB(t)
	core.SetupTestEnvironment()

	customer := models.Customer{Name: "Buyer", Email: "orderexport-a@example.com", Orders: []models.Order{
		{TotalAmount: decimalFromString(t, "15.00"), OrderDate: testTimeNow()},
	}}
	assert.Nil(t, database.DB.Create(&customer).Error)
	defer database.DeleteTestingCustomers(t, []string{customer.Email})

	w := CreateRequest("GET", "/?customer_email=orderexport-a@example.com", nil, &contentTypeCSV,
		OrdersExportHandler)

	assert.Equal(t, http.StatusOK, w.Code)
	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	assert.Equal(t, 2, len(lines))
	assert.Equal(t, "id,customer_email,total_amount,order_date", lines[0])
	assert.Contains(t, lines[1], "orderexport-a@example.com,15")
}

func TestOrdersExportInvalidFilter(t *testing.T) {
	utils.SkipWithoutDB(t)
	core.SetupTestEnvironment()

	w := CreateRequest("GET", "/?date_lte=bogus", nil, &contentTypeJSON, OrdersExportHandler)

	var errResp utils.ErrorResponse
	CheckResponse(t, w, http.StatusBadRequest, &errResp)
	assert.Equal(t, "Invalid date_lte timestamp: bogus", errResp.Error)
}
