package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus is the closed set of order states. New orders start as
// StatusPending.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPaid      OrderStatus = "paid"
	StatusShipped   OrderStatus = "shipped"
	StatusCancelled OrderStatus = "cancelled"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:   {StatusPaid, StatusCancelled},
	StatusPaid:      {StatusShipped, StatusCancelled},
	StatusShipped:   {},
	StatusCancelled: {},
}

// Valid reports whether s is a member of the closed status set.
func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

// CanTransition reports whether an order may move from s to next. A
// same-status write is always allowed so repeated cancels stay idempotent.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// PaymentOption selects how the buyer pays for an order.
type PaymentOption string

const (
	PayWithPayPal PaymentOption = "paypal"
	PayWithBank   PaymentOption = "bank"
	PayWithCrypto PaymentOption = "crypto"
)

func (p PaymentOption) Valid() bool {
	switch p {
	case PayWithPayPal, PayWithBank, PayWithCrypto:
		return true
	}
	return false
}

// OrderItem is one line of an order. Name and Price are a snapshot of the
// product at placement time; the catalog may change or lose the product
// afterwards without affecting the line.
type OrderItem struct {
	ProductID primitive.ObjectID `bson:"product" json:"product"`
	Quantity  int                `bson:"quantity" json:"quantity"`
	Name      string             `bson:"name" json:"name"`
	Price     float64            `bson:"price" json:"price"`
}

// BillingInfo is the buyer's contact block stored on the order.
type BillingInfo struct {
	Name    string `bson:"name" json:"name"`
	Email   string `bson:"email" json:"email"`
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Address string `bson:"address,omitempty" json:"address,omitempty"`
	City    string `bson:"city,omitempty" json:"city,omitempty"`
	Country string `bson:"country,omitempty" json:"country,omitempty"`
}

// PaymentAddresses holds the per-currency deposit addresses shown to the
// buyer for a crypto order.
type PaymentAddresses struct {
	Bitcoin  string `bson:"bitcoin,omitempty" json:"bitcoin,omitempty"`
	Ethereum string `bson:"ethereum,omitempty" json:"ethereum,omitempty"`
	USDT     string `bson:"usdt,omitempty" json:"usdt,omitempty"`
}

// Order is the canonical order document. Orders may be anonymous, so the
// user reference is optional.
type Order struct {
	ID               primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	UserID           *primitive.ObjectID `bson:"user,omitempty" json:"userId,omitempty"`
	Items            []OrderItem         `bson:"products" json:"products"`
	Total            float64             `bson:"total" json:"total"`
	BillingInfo      BillingInfo         `bson:"billingInfo" json:"billingInfo"`
	PaymentAddresses *PaymentAddresses   `bson:"paymentAddresses,omitempty" json:"paymentAddresses,omitempty"`
	PaymentMethod    PaymentOption       `bson:"paymentMethod" json:"paymentMethod"`
	Status           OrderStatus         `bson:"status" json:"status"`
	CreatedAt        time.Time           `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time           `bson:"updated_at" json:"updatedAt"`
}
