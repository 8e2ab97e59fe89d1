package database

import (
	"app/base/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func CheckCustomersInDB(t *testing.T, emails []string) []int64 {
	var customers []models.Customer
	err := DB.Where("email IN (?)", emails).Find(&customers).Error
	assert.Nil(t, err)
	assert.Equal(t, len(emails), len(customers))
	var ids []int64
	for _, customer := range customers {
		ids = append(ids, customer.ID)
	}
	return ids
}

func CheckCustomerCount(t *testing.T) int64 {
	var count int64
	err := DB.Model(models.Customer{}).Count(&count).Error
	assert.Nil(t, err)
	return count
}

func CheckDeletedCustomersInDB(t *testing.T, emails []string, expected int) {
	var count int64
	err := DB.Model(models.DeletedCustomer{}).Where("email IN (?)", emails).Count(&count).Error
	assert.Nil(t, err)
	assert.Equal(t, int64(expected), count)
}

func DeleteTestingCustomers(t *testing.T, emails []string) {
	assert.Nil(t, DB.Where("email IN (?)", emails).Delete(&models.Customer{}).Error)
	assert.Nil(t, DB.Where("email IN (?)", emails).Delete(&models.DeletedCustomer{}).Error)
}
