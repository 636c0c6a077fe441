package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Shipping is a singleton settings document, created with defaults on
// first read.
type Shipping struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Method            string             `bson:"method" json:"method"`
	Cost              float64            `bson:"cost" json:"cost"`
	EstimatedDelivery string             `bson:"estimatedDelivery" json:"estimatedDelivery"`
	UpdatedAt         time.Time          `bson:"updated_at" json:"updatedAt"`
}

const (
	DefaultShippingMethod   = "Standard Shipping"
	DefaultShippingDelivery = "3-5 business days"
)

// CryptoAddress is the legacy singleton holding the shop's deposit
// addresses. The Crypto payment method is the canonical record; updates
// through this document are reconciled into it.
type CryptoAddress struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Bitcoin   string             `bson:"bitcoin" json:"bitcoin"`
	Ethereum  string             `bson:"ethereum" json:"ethereum"`
	USDT      string             `bson:"usdt" json:"usdt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
