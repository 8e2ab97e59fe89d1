package controllers

import (
	"app/base/core"
	"app/base/database"
	"app/base/utils"
	"bytes"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateCustomer(t *testing.T) {
	utils.SkipWithoutDB(t)
	core.SetupTestEnvironment()

	data := `{"name": "Alice", "email": "create-a@example.com", "phone": "+420123456789"}`
	w := CreateRequestRouterWithParams("POST", "/", bytes.NewBufferString(data), nil,
		CreateCustomerHandler, "POST", "/")

	var resp CreateCustomerResponse
	CheckResponse(t, w, http.StatusCreated, &resp)
	assert.Equal(t, "Customer created successfully", resp.Message)
	assert.Equal(t, "Alice", resp.Customer.Name)
	assert.True(t, resp.Customer.ID > 0)

	database.CheckCustomersInDB(t, []string{"create-a@example.com"})
	database.DeleteTestingCustomers(t, []string{"create-a@example.com"})
}

func TestCreateCustomerDuplicateEmail(t *testing.T) {
	utils.SkipWithoutDB(t)
	core.SetupTestEnvironment()

	data := `{"name": "Alice", "email": "create-dup@example.com"}`
	w := CreateRequestRouterWithParams("POST", "/", bytes.NewBufferString(data), nil,
		CreateCustomerHandler, "POST", "/")
	assert.Equal(t, http.StatusCreated, w.Code)
	defer database.DeleteTestingCustomers(t, []string{"create-dup@example.com"})

	// same email differing only in case still conflicts
	data = `{"name": "Bob", "email": "Create-Dup@example.com"}`
	w = CreateRequestRouterWithParams("POST", "/", bytes.NewBufferString(data), nil,
		CreateCustomerHandler, "POST", "/")

	var errResp utils.ErrorResponse
	CheckResponse(t, w, http.StatusConflict, &errResp)
	assert.Equal(t, "Email already exists: Create-Dup@example.com", errResp.Error)
}

func TestCreateCustomerInvalidEmail(t *testing.T) {
	utils.SkipWithoutDB(t)
	core.SetupTestEnvironment()

	data := `{"name": "Alice", "email": "not-an-email"}`
	w := CreateRequestRouterWithParams("POST", "/", bytes.NewBufferString(data), nil,
		CreateCustomerHandler, "POST", "/")

	var errResp utils.ErrorResponse
	CheckResponse(t, w, http.StatusBadRequest, &errResp)
	assert.Equal(t, "Invalid email: not-an-email", errResp.Error)
}

func TestCreateCustomerInvalidPhone(t *testing.T) {
	utils.SkipWithoutDB(t)
	core.SetupTestEnvironment()

	data := `{"name": "Alice", "email": "create-p@example.com", "phone": "12345"}`
	w := CreateRequestRouterWithParams("POST", "/", bytes.NewBufferString(data), nil,
		CreateCustomerHandler, "POST", "/")

	var errResp utils.ErrorResponse
	CheckResponse(t, w, http.StatusBadRequest, &errResp)
	assert.Equal(t, "Phone must be like +1234567890 or 123-456-7890", errResp.Error)
}

func TestCreateCustomerMissingName(t *testing.T) {
	utils.SkipWithoutDB(t)
	core.SetupTestEnvironment()

	data := `{"email": "create-n@example.com"}`
	w := CreateRequestRouterWithParams("POST", "/", bytes.NewBufferString(data), nil,
		CreateCustomerHandler, "POST", "/")

	var errResp utils.ErrorResponse
	CheckResponse(t, w, http.StatusBadRequest, &errResp)
	assert.Equal(t, "Name must not be empty", errResp.Error)
}
