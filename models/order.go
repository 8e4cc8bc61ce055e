package models

import "time"

type OrderStatus string

const (
	// Order statuses in lifecycle order
	OrderStatusPending   OrderStatus = "Pending"   // Order placed, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "Confirmed" // Confirmed by seller
	OrderStatusShipped   OrderStatus = "Shipped"   // Out for delivery
	OrderStatusDelivered OrderStatus = "Delivered" // Customer received the item
)

// Rank returns the position of s in the lifecycle, or -1 for an unknown status.
func (s OrderStatus) Rank() int {
	switch s {
	case OrderStatusPending:
		return 0
	case OrderStatusConfirmed:
		return 1
	case OrderStatusShipped:
		return 2
	case OrderStatusDelivered:
		return 3
	default:
		return -1
	}
}

type Order struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	OrderRef     string      `gorm:"uniqueIndex" json:"order_ref"`
	CustomerName string      `gorm:"not null" json:"customer_name"`
	PhoneNumber  string      `gorm:"not null" json:"phone_number"`
	Items        []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount  float64     `json:"total_amount"`
	Status       OrderStatus `gorm:"type:VARCHAR(20);default:'Pending'" json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// OrderItem is a snapshot of the product at order-creation time. Name and
// price must never change after the order is created, even if the product
// is later edited or deleted.
type OrderItem struct {
	ID      uint `gorm:"primaryKey" json:"-"`
	OrderID uint `gorm:"index" json:"-"`
	// ProductID is part of the snapshot, not a real foreign key: the
	// product row must stay deletable while orders reference it, so no
	// DB constraint is emitted and Product resolves to nil once gone.
	ProductID   uint     `json:"product_id"`
	Product     *Product `gorm:"foreignKey:ProductID;constraint:-" json:"product,omitempty"`
	ProductName string   `json:"product_name"`
	Price       float64  `json:"price"`
	Quantity    int      `json:"quantity"`
}
