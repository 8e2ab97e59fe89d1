package controllers

import (
	"app/manager/middlewares"

	"github.com/gin-gonic/gin"
)

// @Summary Export customers as JSON or CSV by the Accept header
// @Router /export/customers [get]
func CustomersExportHandler(c *gin.Context) {
	db := middlewares.DBFromContext(c)
	query := buildCustomersQuery(db, c)

	var customers []CustomerItem
	err := query.Order("c.id").Scan(&customers).Error
	if err != nil {
		LogAndRespError(c, err, "could not query customers")
		return
	}

	OutputExportData(c, customers)
}
