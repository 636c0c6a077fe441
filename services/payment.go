package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"docushop/errs"
	"docushop/models"
	"docushop/store"
)

// PaymentService reconciles partial payment configuration updates into
// the per-type payment method documents.
type PaymentService struct {
	log     zerolog.Logger
	methods store.PaymentMethodStore
}

func NewPaymentService(log zerolog.Logger, methods store.PaymentMethodStore) *PaymentService {
	return &PaymentService{
		log:     log.With().Str("component", "payments").Logger(),
		methods: methods,
	}
}

// PaymentMethodUpdate carries any subset of the configurable fields.
// Empty strings mean "not provided": the corresponding payment type is
// left untouched.
type PaymentMethodUpdate struct {
	Bank     string
	PayPal   string
	Skype    string
	Bitcoin  string
	Ethereum string
	USDT     string
}

// Apply upserts one document per payment-type group present in the
// update. The Bank, PayPal and Skype credentials are replaced whole;
// crypto currencies merge per field so an update carrying only bitcoin
// preserves a previously stored ethereum address. Every touched type is
// re-activated. An empty update writes nothing.
func (s *PaymentService) Apply(ctx context.Context, update PaymentMethodUpdate) error {
	active := true

	if bank := strings.TrimSpace(update.Bank); bank != "" {
		patch := store.PaymentMethodPatch{
			Bank:   &models.BankCredentials{Account: bank},
			Active: &active,
		}
		if err := s.methods.Upsert(ctx, models.PaymentTypeBank, patch); err != nil {
			return err
		}
	}

	if paypal := strings.TrimSpace(update.PayPal); paypal != "" {
		patch := store.PaymentMethodPatch{
			PayPal: &models.PayPalCredentials{Email: paypal},
			Active: &active,
		}
		if err := s.methods.Upsert(ctx, models.PaymentTypePayPal, patch); err != nil {
			return err
		}
	}

	if skype := strings.TrimSpace(update.Skype); skype != "" {
		patch := store.PaymentMethodPatch{
			Skype:  &models.SkypeCredentials{ID: skype},
			Active: &active,
		}
		if err := s.methods.Upsert(ctx, models.PaymentTypeSkype, patch); err != nil {
			return err
		}
	}

	crypto := cryptoPatch(update)
	if !crypto.Empty() {
		patch := store.PaymentMethodPatch{
			Crypto: &crypto,
			Active: &active,
		}
		if err := s.methods.Upsert(ctx, models.PaymentTypeCrypto, patch); err != nil {
			return err
		}
	}

	s.log.Info().Msg("payment methods reconciled")
	return nil
}

func cryptoPatch(update PaymentMethodUpdate) store.CryptoPatch {
	var patch store.CryptoPatch
	if v := strings.TrimSpace(update.Bitcoin); v != "" {
		patch.Bitcoin = &v
	}
	if v := strings.TrimSpace(update.Ethereum); v != "" {
		patch.Ethereum = &v
	}
	if v := strings.TrimSpace(update.USDT); v != "" {
		patch.USDT = &v
	}
	return patch
}

// Active returns the payment methods the storefront may offer. Inactive
// records stay in storage but are never exposed here.
func (s *PaymentService) Active(ctx context.Context) ([]models.PaymentMethod, error) {
	return s.methods.FindAll(ctx, true)
}

// All returns every configured method, active or not.
func (s *PaymentService) All(ctx context.Context) ([]models.PaymentMethod, error) {
	return s.methods.FindAll(ctx, false)
}

// SetActive toggles a method without touching its credentials.
func (s *PaymentService) SetActive(ctx context.Context, id string, active bool) error {
	methodID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.Validation("invalid payment method id")
	}
	return s.methods.SetActive(ctx, methodID, active)
}

// Delete removes a single payment method document.
func (s *PaymentService) Delete(ctx context.Context, id string) error {
	methodID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.Validation("invalid payment method id")
	}
	return s.methods.Delete(ctx, methodID)
}
