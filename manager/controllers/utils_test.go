package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	assert.Nil(t, validatePhone(""))
	assert.Nil(t, validatePhone("+1234567890"))
	assert.Nil(t, validatePhone("123-456-7890"))
	assert.NotNil(t, validatePhone("12345"))
	assert.NotNil(t, validatePhone("123-45-6789"))
	assert.NotNil(t, validatePhone("+123456"))
	assert.NotNil(t, validatePhone("phone"))
}

func TestValidateEmail(t *testing.T) {
	assert.Nil(t, validateEmail("user@example.com"))
	assert.NotNil(t, validateEmail(""))
	assert.NotNil(t, validateEmail("user"))
	assert.NotNil(t, validateEmail("user@host"))
	assert.NotNil(t, validateEmail("user @example.com"))
}
