package controllers

import (
	"app/base/core"
	"app/base/database"
	"app/base/utils"
	"app/manager/middlewares"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var customerFields = AttrMap{
	"id":         "c.id",
	"name":       "c.name",
	"email":      "c.email",
	"created_at": "c.created_at",
}

var inactiveDays = utils.PodConfig.GetInt("inactive_days", 365)

// @Summary List customers with paging, sorting and filtering
// @Router /customers [get]
func CustomersListHandler(c *gin.Context) {
	limit, offset, err := utils.LoadLimitOffset(c, core.DefaultLimit)
	if err != nil {
		LogAndRespBadRequest(c, err, InvalidOffsetMsg)
		return
	}

	db := middlewares.DBFromContext(c)
	query := buildCustomersQuery(db, c)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		LogAndRespError(c, err, "could not count customers")
		return
	}

	query, err = ApplySort(c, query, customerFields, "id", "c.id")
	if err != nil {
		LogAndRespBadRequest(c, err, err.Error())
		return
	}

	var customers []CustomerItem
	err = query.Limit(limit).Offset(offset).Scan(&customers).Error
	if err != nil {
		LogAndRespError(c, err, "could not query customers")
		return
	}

	c.JSON(http.StatusOK, CustomersResponse{
		Data: customers,
		Meta: ListMeta{Limit: limit, Offset: offset, TotalItems: total},
	})
}

func buildCustomersQuery(db *gorm.DB, c *gin.Context) *gorm.DB {
	query := database.Customers(db).
		Select("c.id, c.name, c.email, c.phone, c.created_at")

	if name := c.Query("name"); name != "" {
		query = query.Where("c.name ILIKE ?", "%"+name+"%")
	}
	if email := c.Query("email"); email != "" {
		query = query.Where("c.email ILIKE ?", "%"+email+"%")
	}
	if prefix := c.Query("phone_prefix"); prefix != "" {
		query = query.Where("c.phone LIKE ?", prefix+"%")
	}
	if c.Query("inactive") == "true" {
		cutoff := time.Now().Add(-time.Duration(inactiveDays) * 24 * time.Hour)
		query = query.Where(
			"NOT EXISTS (SELECT 1 FROM customer_order co WHERE co.customer_id = c.id AND co.order_date >= ?)",
			cutoff)
	}
	return query
}
