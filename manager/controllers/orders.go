package controllers

import (
	"app/base"
	"app/base/core"
	"app/base/database"
	"app/base/utils"
	"app/manager/middlewares"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var orderFields = AttrMap{
	"id":             "co.id",
	"customer_email": "c.email",
	"total_amount":   "co.total_amount",
	"order_date":     "co.order_date",
}

// @Summary List orders with paging, sorting and filtering
// @Router /orders [get]
func OrdersListHandler(c *gin.Context) {
	limit, offset, err := utils.LoadLimitOffset(c, core.DefaultLimit)
	if err != nil {
		LogAndRespBadRequest(c, err, InvalidOffsetMsg)
		return
	}

	db := middlewares.DBFromContext(c)
	query, err := buildOrdersQuery(db, c)
	if err != nil {
		LogAndRespBadRequest(c, err, err.Error())
		return
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		LogAndRespError(c, err, "could not count orders")
		return
	}

	query, err = ApplySort(c, query, orderFields, "-order_date", "co.id")
	if err != nil {
		LogAndRespBadRequest(c, err, err.Error())
		return
	}

	var orders []OrderItemResponse
	err = query.Limit(limit).Offset(offset).Scan(&orders).Error
	if err != nil {
		LogAndRespError(c, err, "could not query orders")
		return
	}

	c.JSON(http.StatusOK, OrdersResponse{
		Data: orders,
		Meta: ListMeta{Limit: limit, Offset: offset, TotalItems: total},
	})
}

func buildOrdersQuery(db *gorm.DB, c *gin.Context) (*gorm.DB, error) {
	query := database.Orders(db).
		Select("co.id, c.email AS customer_email, co.total_amount, co.order_date")

	if idStr := c.Query("customer_id"); idStr != "" {
		id, err := utils.LoadParamInt(c, "customer_id", 0, true)
		if err != nil || id <= 0 {
			return nil, errors.New("invalid customer_id parameter")
		}
		query = query.Where("co.customer_id = ?", id)
	}
	if email := c.Query("customer_email"); email != "" {
		query = query.Where("c.email ILIKE ?", email)
	}

	var err error
	query, err = applyDateBound(query, c, "date_gte", "co.order_date >= ?")
	if err != nil {
		return nil, err
	}
	query, err = applyDateBound(query, c, "date_lte", "co.order_date <= ?")
	if err != nil {
		return nil, err
	}
	return query, nil
}

func applyDateBound(query *gorm.DB, c *gin.Context, param, cond string) (*gorm.DB, error) {
	value := c.Query(param)
	if value == "" {
		return query, nil
	}
	bound, err := time.Parse(base.Rfc3339NoTz, value)
	if err != nil {
		bound, err = time.Parse("2006-01-02", value)
	}
	if err != nil {
		return nil, errors.Errorf("Invalid %s timestamp: %s", param, value)
	}
	return query.Where(cond, bound), nil
}
