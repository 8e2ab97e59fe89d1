package routes

import (
	"app/manager/config"
	"app/manager/controllers"
	"app/manager/middlewares"
	"time"

	"github.com/gin-gonic/gin"
)

// InitAPI wires all API endpoints under the given group.
func InitAPI(group *gin.RouterGroup) {
	group.Use(middlewares.WithTimeout(time.Duration(config.ResponseTimeout)))

	group.GET("/status", controllers.StatusHandler)

	group.GET("/customers", controllers.CustomersListHandler)
	group.POST("/customers", controllers.CreateCustomerHandler)
	group.POST("/customers/bulk", controllers.BulkCreateCustomersHandler)
	group.GET("/customers/:customer_id", controllers.CustomerDetailHandler)
	group.DELETE("/customers/:customer_id", controllers.CustomerDeleteHandler)

	group.GET("/products", controllers.ProductsListHandler)
	group.POST("/products", controllers.CreateProductHandler)

	group.GET("/orders", controllers.OrdersListHandler)
	group.POST("/orders", controllers.CreateOrderHandler)

	if config.EnableExportAPI {
		group.GET("/export/customers", controllers.CustomersExportHandler)
		group.GET("/export/orders", controllers.OrdersExportHandler)
	}
}
