package controllers

import (
	"app/base/models"
	"app/base/utils"
	"app/manager/middlewares"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var enableProductCache = utils.GetBoolEnvOrDefault("ENABLE_PRODUCT_CACHE", true)
var productCacheSize = utils.GetIntEnvOrDefault("PRODUCT_CACHE_SIZE", 1000)
var productCache = initProductCache()

func initProductCache() *lru.Cache[int64, models.Product] {
	if !enableProductCache {
		return nil
	}
	cache, err := lru.New[int64, models.Product](productCacheSize)
	if err != nil {
		panic(err)
	}
	return cache
}

type CreateOrderRequest struct {
	CustomerID int64   `json:"customer_id"`
	ProductIDs []int64 `json:"product_ids"`
}

type CreateOrderResponse struct {
	Order   OrderItemResponse `json:"order"`
	Message string            `json:"message"`
}

// @Summary Create an order for a customer from a list of product ids
// @Router /orders [post]
func CreateOrderHandler(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		LogAndRespBadRequest(c, err, "invalid request body")
		return
	}
	if req.CustomerID <= 0 {
		LogAndRespBadRequest(c, errors.New("missing customer_id"), "customer_id must be positive")
		return
	}
	if len(req.ProductIDs) == 0 {
		LogAndRespBadRequest(c, errors.New("empty product_ids"), "product_ids must not be empty")
		return
	}

	db := middlewares.DBFromContext(c)
	var order models.Order
	var customer models.Customer
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&customer, req.CustomerID).Error; err != nil {
			return err
		}

		products, err := loadOrderProducts(tx, req.ProductIDs)
		if err != nil {
			return err
		}

		order = models.Order{
			CustomerID:  customer.ID,
			TotalAmount: sumPrices(products),
			OrderDate:   time.Now(),
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		items := make([]models.OrderItem, 0, len(products))
		for _, p := range products {
			items = append(items, models.OrderItem{
				OrderID: order.ID, ProductID: p.ID, UnitPrice: p.Price,
			})
		}
		return tx.Create(&items).Error
	})

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		LogAndRespNotFound(c, err, "customer not found")
		return
	case err != nil && isUnknownProductErr(err):
		LogAndRespBadRequest(c, err, err.Error())
		return
	case err != nil:
		LogAndRespError(c, err, "could not create order")
		return
	}

	c.JSON(http.StatusCreated, CreateOrderResponse{
		Order: OrderItemResponse{
			ID:            order.ID,
			CustomerEmail: customer.Email,
			TotalAmount:   order.TotalAmount,
			OrderDate:     order.OrderDate,
		},
		Message: "Order created successfully",
	})
}

type unknownProductErr struct {
	error
}

func isUnknownProductErr(err error) bool {
	var unknown unknownProductErr
	return errors.As(err, &unknown)
}

// loadOrderProducts resolves requested product ids. Duplicated ids collapse
// into a single order_item row and count once in the total. Order creation
// reads only id and price, which never change through the API, so cached
// products do not go stale.
func loadOrderProducts(tx *gorm.DB, ids []int64) ([]models.Product, error) {
	byID := make(map[int64]models.Product, len(ids))
	var missing []int64
	for _, id := range ids {
		if productCache != nil {
			if p, ok := productCache.Get(id); ok {
				byID[id] = p
				continue
			}
		}
		missing = append(missing, id)
	}

	if len(missing) > 0 {
		var found []models.Product
		err := tx.Where("id IN (?)", missing).Find(&found).Error
		if err != nil {
			return nil, err
		}
		for _, p := range found {
			byID[p.ID] = p
			if productCache != nil {
				productCache.Add(p.ID, p)
			}
		}
	}

	products := make([]models.Product, 0, len(ids))
	seen := make(map[int64]bool, len(ids))
	for _, id := range ids {
		p, ok := byID[id]
		if !ok {
			return nil, unknownProductErr{errors.Errorf("Unknown product id: %d", id)}
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		products = append(products, p)
	}
	return products, nil
}

func sumPrices(products []models.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.Price)
	}
	return total.Round(2)
}
