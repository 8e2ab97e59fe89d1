package database

import (
	"time"

	"gorm.io/gorm"
)

// RecentCustomerIDs builds a subquery with distinct customer ids having at
// least one order placed at `since` or later. The bound is inclusive so an
// order placed exactly at the cutoff still counts as recent.
func RecentCustomerIDs(tx *gorm.DB, since time.Time) *gorm.DB {
	return tx.Table("customer_order co").
		Distinct("co.customer_id").
		Where("co.order_date >= ?", since)
}

// InactiveCustomers selects customers without any order since the cutoff.
// Customers with no orders at all match too.
func InactiveCustomers(tx *gorm.DB, cutoff time.Time) *gorm.DB {
	return tx.Table("customer c").
		Where("NOT EXISTS (SELECT 1 FROM customer_order co WHERE co.customer_id = c.id AND co.order_date >= ?)",
			cutoff)
}

func Customers(tx *gorm.DB) *gorm.DB {
	return tx.Table("customer c")
}

func Orders(tx *gorm.DB) *gorm.DB {
	return tx.Table("customer_order co").
		Joins("JOIN customer c ON c.id = co.customer_id")
}

func OrdersSince(tx *gorm.DB, since time.Time) *gorm.DB {
	return Orders(tx).Where("co.order_date >= ?", since)
}

func LowStockProducts(tx *gorm.DB, threshold int) *gorm.DB {
	return tx.Table("product p").Where("p.stock < ?", threshold)
}
