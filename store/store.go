// Package store holds the document-store interfaces consumed by the
// services and their MongoDB implementations.
package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"docushop/models"
)

// CryptoPatch carries a partial crypto-credentials update. Nil fields are
// left untouched in the stored document.
type CryptoPatch struct {
	Bitcoin  *string
	Ethereum *string
	USDT     *string
}

// Empty reports whether the patch carries no fields at all.
func (p CryptoPatch) Empty() bool {
	return p.Bitcoin == nil && p.Ethereum == nil && p.USDT == nil
}

// PaymentMethodPatch describes an upsert against the per-type payment
// method document. Only non-nil fields are written, so a patch never
// clobbers credentials it does not mention.
type PaymentMethodPatch struct {
	Bank   *models.BankCredentials
	PayPal *models.PayPalCredentials
	Skype  *models.SkypeCredentials
	Crypto *CryptoPatch
	Active *bool
}

type PaymentMethodStore interface {
	// Upsert applies patch to the single document of the given type,
	// creating it when absent. The operation is atomic per document.
	Upsert(ctx context.Context, t models.PaymentType, patch PaymentMethodPatch) error
	FindByType(ctx context.Context, t models.PaymentType) (*models.PaymentMethod, error)
	FindAll(ctx context.Context, activeOnly bool) ([]models.PaymentMethod, error)
	SetActive(ctx context.Context, id primitive.ObjectID, active bool) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type OrderStore interface {
	Insert(ctx context.Context, order *models.Order) (*models.Order, error)
	FindAll(ctx context.Context) ([]models.Order, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) (*models.Order, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type ProductStore interface {
	Insert(ctx context.Context, product *models.Product) (*models.Product, error)
	FindAll(ctx context.Context, category string) ([]models.Product, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type SettingsStore interface {
	// GetShipping returns the singleton shipping document, creating it
	// with defaults when absent.
	GetShipping(ctx context.Context) (*models.Shipping, error)
	UpdateShipping(ctx context.Context, method string, cost float64, estimatedDelivery string) (*models.Shipping, error)
	// GetCryptoAddress returns the singleton address document, creating
	// an empty one when absent.
	GetCryptoAddress(ctx context.Context) (*models.CryptoAddress, error)
	UpdateCryptoAddress(ctx context.Context, bitcoin, ethereum, usdt string) (*models.CryptoAddress, error)
}

type UserStore interface {
	Insert(ctx context.Context, user *models.User) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByRole(ctx context.Context, role string) (*models.User, error)
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)
	UpdateCredentials(ctx context.Context, id primitive.ObjectID, email, passwordHash string) error
	FindAll(ctx context.Context) ([]models.User, error)
}
