package controllers

import (
	"app/base/models"
	"app/manager/middlewares"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type CreateCustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type CreateCustomerResponse struct {
	Customer CustomerItem `json:"customer"`
	Message  string       `json:"message"`
}

func validateCustomerRequest(req *CreateCustomerRequest) error {
	if req.Name == "" {
		return errors.New("Name must not be empty")
	}
	if err := validateEmail(req.Email); err != nil {
		return err
	}
	return validatePhone(req.Phone)
}

func emailExists(db *gorm.DB, email string) (bool, error) {
	var count int64
	err := db.Model(models.Customer{}).Where("email ILIKE ?", email).Count(&count).Error
	return count > 0, err
}

// @Summary Create a customer
// @Router /customers [post]
func CreateCustomerHandler(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		LogAndRespBadRequest(c, err, "invalid request body")
		return
	}

	if err := validateCustomerRequest(&req); err != nil {
		LogAndRespBadRequest(c, err, err.Error())
		return
	}

	db := middlewares.DBFromContext(c)
	exists, err := emailExists(db, req.Email)
	if err != nil {
		LogAndRespError(c, err, "could not check email")
		return
	}
	if exists {
		LogAndRespConflict(c, errors.New("duplicate email"), "Email already exists: "+req.Email)
		return
	}

	customer := models.Customer{Name: req.Name, Email: req.Email, Phone: req.Phone}
	if err := db.Create(&customer).Error; err != nil {
		LogAndRespError(c, err, "could not create customer")
		return
	}

	c.JSON(http.StatusCreated, CreateCustomerResponse{
		Customer: CustomerItem{
			ID: customer.ID, Name: customer.Name, Email: customer.Email,
			Phone: customer.Phone, CreatedAt: customer.CreatedAt,
		},
		Message: "Customer created successfully",
	})
}
