package controllers

import (
	"app/manager/middlewares"

	"github.com/gin-gonic/gin"
)

// @Summary Export orders as JSON or CSV by the Accept header
// @Router /export/orders [get]
func OrdersExportHandler(c *gin.Context) {
	db := middlewares.DBFromContext(c)
	query, err := buildOrdersQuery(db, c)
	if err != nil {
		LogAndRespBadRequest(c, err, err.Error())
		return
	}

	var orders []OrderItemResponse
	err = query.Order("co.id").Scan(&orders).Error
	if err != nil {
		LogAndRespError(c, err, "could not query orders")
		return
	}

	OutputExportData(c, orders)
}
