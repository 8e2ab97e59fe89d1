package controllers

import (
	"app/base/models"
	"app/manager/middlewares"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CustomerDetailResponse struct {
	CustomerItem
	Orders []OrderItemResponse `json:"orders"`
}

// @Summary Show customer detail with its orders
// @Router /customers/{customer_id} [get]
func CustomerDetailHandler(c *gin.Context) {
	customerID, err := loadCustomerID(c)
	if err != nil {
		return
	}

	db := middlewares.DBFromContext(c)
	var customer models.Customer
	err = db.First(&customer, customerID).Error
	if err == gorm.ErrRecordNotFound {
		LogAndRespNotFound(c, err, "customer not found")
		return
	}
	if err != nil {
		LogAndRespError(c, err, "could not query customer")
		return
	}

	var orders []OrderItemResponse
	err = db.Table("customer_order co").
		Select("co.id, ? AS customer_email, co.total_amount, co.order_date", customer.Email).
		Where("co.customer_id = ?", customer.ID).
		Order("co.id").
		Scan(&orders).Error
	if err != nil {
		LogAndRespError(c, err, "could not query customer orders")
		return
	}

	c.JSON(http.StatusOK, CustomerDetailResponse{
		CustomerItem: CustomerItem{
			ID: customer.ID, Name: customer.Name, Email: customer.Email,
			Phone: customer.Phone, CreatedAt: customer.CreatedAt,
		},
		Orders: orders,
	})
}
