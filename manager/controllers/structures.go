package controllers

import (
	"time"

	"github.com/shopspring/decimal"
)

type CustomerItem struct {
	ID        int64     `json:"id" csv:"id" query:"c.id" gorm:"column:id"`
	Name      string    `json:"name" csv:"name" query:"c.name" gorm:"column:name"`
	Email     string    `json:"email" csv:"email" query:"c.email" gorm:"column:email"`
	Phone     string    `json:"phone" csv:"phone" query:"c.phone" gorm:"column:phone"`
	CreatedAt time.Time `json:"created_at" csv:"created_at" query:"c.created_at" gorm:"column:created_at"`
}

type CustomersResponse struct {
	Data []CustomerItem `json:"data"`
	Meta ListMeta       `json:"meta"`
}

type ProductItem struct {
	ID    int64           `json:"id" csv:"id" gorm:"column:id"`
	Name  string          `json:"name" csv:"name" gorm:"column:name"`
	Price decimal.Decimal `json:"price" csv:"price" gorm:"column:price"`
	Stock int             `json:"stock" csv:"stock" gorm:"column:stock"`
}

type ProductsResponse struct {
	Data []ProductItem `json:"data"`
	Meta ListMeta      `json:"meta"`
}

type OrderItemResponse struct {
	ID            int64           `json:"id" csv:"id" gorm:"column:id"`
	CustomerEmail string          `json:"customer_email" csv:"customer_email" gorm:"column:customer_email"`
	TotalAmount   decimal.Decimal `json:"total_amount" csv:"total_amount" gorm:"column:total_amount"`
	OrderDate     time.Time       `json:"order_date" csv:"order_date" gorm:"column:order_date"`
}

type OrdersResponse struct {
	Data []OrderItemResponse `json:"data"`
	Meta ListMeta            `json:"meta"`
}
