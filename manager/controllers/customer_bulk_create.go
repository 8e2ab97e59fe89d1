package controllers

import (
	"app/base/models"
	"app/manager/config"
	"app/manager/middlewares"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type BulkCreateCustomersRequest struct {
	Customers []CreateCustomerRequest `json:"customers"`
}

type BulkCreateCustomersResponse struct {
	Customers []CustomerItem `json:"customers"`
	Errors    []string       `json:"errors"`
}

// @Summary Create many customers at once, valid items succeed, invalid ones report errors
// @Router /customers/bulk [post]
func BulkCreateCustomersHandler(c *gin.Context) {
	var req BulkCreateCustomersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		LogAndRespBadRequest(c, err, "invalid request body")
		return
	}
	if len(req.Customers) == 0 {
		LogAndRespBadRequest(c, errors.New("empty input"), "customers list must not be empty")
		return
	}
	if len(req.Customers) > config.BulkCreateLimit {
		LogAndRespBadRequest(c, errors.New("too many items"),
			fmt.Sprintf("customers list must not exceed %d items", config.BulkCreateLimit))
		return
	}

	db := middlewares.DBFromContext(c)
	created := make([]CustomerItem, 0, len(req.Customers))
	var errs []string
	seenEmails := map[string]bool{}

	for idx, item := range req.Customers {
		// each item commits on its own so one bad record does not roll back the rest
		customer, err := createOneCustomer(db, item, seenEmails)
		if err != nil {
			errs = append(errs, fmt.Sprintf("[%d] %s", idx, err.Error()))
			continue
		}
		seenEmails[strings.ToLower(item.Email)] = true
		created = append(created, customer)
	}

	c.JSON(http.StatusOK, BulkCreateCustomersResponse{Customers: created, Errors: errs})
}

func createOneCustomer(db *gorm.DB, req CreateCustomerRequest, seenEmails map[string]bool) (CustomerItem, error) {
	if err := validateCustomerRequest(&req); err != nil {
		return CustomerItem{}, err
	}
	if seenEmails[strings.ToLower(req.Email)] {
		return CustomerItem{}, errors.Errorf("Email already exists: %s", req.Email)
	}
	exists, err := emailExists(db, req.Email)
	if err != nil {
		return CustomerItem{}, err
	}
	if exists {
		return CustomerItem{}, errors.Errorf("Email already exists: %s", req.Email)
	}

	customer := models.Customer{Name: req.Name, Email: req.Email, Phone: req.Phone}
	if err := db.Create(&customer).Error; err != nil {
		return CustomerItem{}, errors.Wrap(err, "Unexpected error")
	}
	return CustomerItem{
		ID: customer.ID, Name: customer.Name, Email: customer.Email,
		Phone: customer.Phone, CreatedAt: customer.CreatedAt,
	}, nil
}
