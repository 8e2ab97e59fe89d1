package controllers

import (
	"app/base/models"
	"app/manager/config"
	"app/manager/middlewares"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// @Summary Delete customer by id, archiving it into the deleted_customer ledger
// @Router /customers/{customer_id} [delete]
func CustomerDeleteHandler(c *gin.Context) {
	customerID, err := loadCustomerID(c)
	if err != nil {
		return
	}

	db := middlewares.DBFromContext(c)
	err = db.Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&customer, customerID).Error; err != nil {
			return err
		}

		if config.EnableDeleteLedger {
			err := tx.Exec(`INSERT INTO deleted_customer (customer_id, email, when_deleted)
			                VALUES (?, ?, now())
			                ON CONFLICT (customer_id) DO UPDATE SET when_deleted = EXCLUDED.when_deleted`,
				customer.ID, customer.Email).Error
			if err != nil {
				return err
			}
		}
		return tx.Delete(&models.Customer{}, customer.ID).Error
	})

	if err == gorm.ErrRecordNotFound {
		LogAndRespNotFound(c, err, "customer not found")
		return
	}
	if err != nil {
		LogAndRespError(c, err, "could not delete customer")
		return
	}
	c.Status(http.StatusOK)
}
