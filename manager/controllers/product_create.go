package controllers

import (
	"app/base/models"
	"app/manager/middlewares"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type CreateProductRequest struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}

type CreateProductResponse struct {
	Product ProductItem `json:"product"`
	Message string      `json:"message"`
}

func validateProductRequest(req *CreateProductRequest) error {
	if req.Name == "" {
		return errors.New("Name must not be empty")
	}
	if !req.Price.IsPositive() {
		return errors.New("Price must be positive")
	}
	if req.Stock < 0 {
		return errors.New("Stock must not be negative")
	}
	return nil
}

// @Summary Create a product
// @Router /products [post]
func CreateProductHandler(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		LogAndRespBadRequest(c, err, "invalid request body")
		return
	}

	if err := validateProductRequest(&req); err != nil {
		LogAndRespBadRequest(c, err, err.Error())
		return
	}

	db := middlewares.DBFromContext(c)
	product := models.Product{Name: req.Name, Price: req.Price, Stock: req.Stock}
	if err := db.Create(&product).Error; err != nil {
		LogAndRespError(c, err, "could not create product")
		return
	}

	c.JSON(http.StatusCreated, CreateProductResponse{
		Product: ProductItem{
			ID: product.ID, Name: product.Name, Price: product.Price, Stock: product.Stock,
		},
		Message: "Product created successfully",
	})
}
