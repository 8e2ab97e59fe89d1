package controllers

import (
	"app/base/core"
	"app/base/database"
	"app/base/utils"
	"app/manager/middlewares"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var productFields = AttrMap{
	"id":    "p.id",
	"name":  "p.name",
	"price": "p.price",
	"stock": "p.stock",
}

var lowStockThreshold = utils.PodConfig.GetInt("low_stock_threshold", 10)

// @Summary List products with paging, sorting and filtering
// @Router /products [get]
func ProductsListHandler(c *gin.Context) {
	limit, offset, err := utils.LoadLimitOffset(c, core.DefaultLimit)
	if err != nil {
		LogAndRespBadRequest(c, err, InvalidOffsetMsg)
		return
	}

	db := middlewares.DBFromContext(c)
	query := buildProductsQuery(db, c)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		LogAndRespError(c, err, "could not count products")
		return
	}

	query, err = ApplySort(c, query, productFields, "id", "p.id")
	if err != nil {
		LogAndRespBadRequest(c, err, err.Error())
		return
	}

	var products []ProductItem
	err = query.Limit(limit).Offset(offset).Scan(&products).Error
	if err != nil {
		LogAndRespError(c, err, "could not query products")
		return
	}

	c.JSON(http.StatusOK, ProductsResponse{
		Data: products,
		Meta: ListMeta{Limit: limit, Offset: offset, TotalItems: total},
	})
}

func buildProductsQuery(db *gorm.DB, c *gin.Context) *gorm.DB {
	query := db.Table("product p")
	if c.Query("low_stock") == "true" {
		query = database.LowStockProducts(db, lowStockThreshold)
	}
	query = query.Select("p.id, p.name, p.price, p.stock")

	if name := c.Query("name"); name != "" {
		query = query.Where("p.name ILIKE ?", "%"+name+"%")
	}
	return query
}
