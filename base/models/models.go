package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	ID        int64 `gorm:"primaryKey"`
	Name      string
	Email     string `gorm:"unique"`
	Phone     string
	CreatedAt time.Time

	Orders []Order `gorm:"foreignKey:CustomerID"`
}

func (Customer) TableName() string {
	return "customer"
}

type Product struct {
	ID    int64 `gorm:"primaryKey"`
	Name  string
	Price decimal.Decimal `gorm:"type:numeric(10,2)"`
	Stock int
}

func (Product) TableName() string {
	return "product"
}

// "order" is a reserved word in postgres, table is named customer_order
type Order struct {
	ID          int64 `gorm:"primaryKey"`
	CustomerID  int64
	TotalAmount decimal.Decimal `gorm:"type:numeric(12,2)"`
	OrderDate   time.Time

	Customer *Customer   `gorm:"foreignKey:CustomerID"`
	Items    []OrderItem `gorm:"foreignKey:OrderID"`
}

func (Order) TableName() string {
	return "customer_order"
}

type OrderItem struct {
	OrderID   int64 `gorm:"primaryKey"`
	ProductID int64 `gorm:"primaryKey"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(10,2)"`

	Product *Product `gorm:"foreignKey:ProductID"`
}

func (OrderItem) TableName() string {
	return "order_item"
}

// Ledger of reaped customers, pruned after a retention period.
type DeletedCustomer struct {
	CustomerID  int64 `gorm:"primaryKey"`
	Email       string
	WhenDeleted time.Time
}

func (DeletedCustomer) TableName() string {
	return "deleted_customer"
}
