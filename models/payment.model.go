package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentType is the closed set of configurable payment methods. At most
// one PaymentMethod document exists per type; the store enforces this with
// a unique index.
type PaymentType string

const (
	PaymentTypeBank   PaymentType = "Bank"
	PaymentTypePayPal PaymentType = "PayPal"
	PaymentTypeSkype  PaymentType = "Skype"
	PaymentTypeCrypto PaymentType = "Crypto"
)

func (t PaymentType) Valid() bool {
	switch t {
	case PaymentTypeBank, PaymentTypePayPal, PaymentTypeSkype, PaymentTypeCrypto:
		return true
	}
	return false
}

// Credential payload shapes, one per payment type. The type discriminant
// selects which pointer field is populated.

type BankCredentials struct {
	Account string `bson:"account" json:"account"`
}

type PayPalCredentials struct {
	Email string `bson:"email" json:"email"`
}

type SkypeCredentials struct {
	ID string `bson:"id" json:"id"`
}

type CryptoCredentials struct {
	Bitcoin  string `bson:"bitcoin,omitempty" json:"bitcoin,omitempty"`
	Ethereum string `bson:"ethereum,omitempty" json:"ethereum,omitempty"`
	USDT     string `bson:"usdt,omitempty" json:"usdt,omitempty"`
}

// PaymentMethod is the canonical per-type payment configuration document.
type PaymentMethod struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Type      PaymentType        `bson:"type" json:"type"`
	Bank      *BankCredentials   `bson:"bank,omitempty" json:"bank,omitempty"`
	PayPal    *PayPalCredentials `bson:"paypal,omitempty" json:"paypal,omitempty"`
	Skype     *SkypeCredentials  `bson:"skype,omitempty" json:"skype,omitempty"`
	Crypto    *CryptoCredentials `bson:"crypto,omitempty" json:"crypto,omitempty"`
	Active    bool               `bson:"active" json:"active"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}
