package services

import (
	"context"

	"github.com/rs/zerolog"

	"docushop/models"
	"docushop/store"
)

// reconciler is the slice of PaymentService the settings workflow needs.
type reconciler interface {
	Apply(ctx context.Context, update PaymentMethodUpdate) error
}

// SettingsService serves the shipping and crypto-address singletons.
type SettingsService struct {
	log      zerolog.Logger
	settings store.SettingsStore
	payments reconciler
}

func NewSettingsService(log zerolog.Logger, settings store.SettingsStore, payments reconciler) *SettingsService {
	return &SettingsService{
		log:      log.With().Str("component", "settings").Logger(),
		settings: settings,
		payments: payments,
	}
}

func (s *SettingsService) Shipping(ctx context.Context) (*models.Shipping, error) {
	return s.settings.GetShipping(ctx)
}

func (s *SettingsService) UpdateShipping(ctx context.Context, method string, cost float64, estimatedDelivery string) (*models.Shipping, error) {
	if method == "" {
		method = models.DefaultShippingMethod
	}
	if estimatedDelivery == "" {
		estimatedDelivery = models.DefaultShippingDelivery
	}
	shipping, err := s.settings.UpdateShipping(ctx, method, cost, estimatedDelivery)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("method", method).Float64("cost", cost).Msg("shipping settings updated")
	return shipping, nil
}

func (s *SettingsService) CryptoAddresses(ctx context.Context) (*models.CryptoAddress, error) {
	return s.settings.GetCryptoAddress(ctx)
}

// UpdateCryptoAddresses replaces the legacy singleton and reconciles the
// non-empty values into the canonical Crypto payment method so the two
// records cannot drift apart.
func (s *SettingsService) UpdateCryptoAddresses(ctx context.Context, bitcoin, ethereum, usdt string) (*models.CryptoAddress, error) {
	addr, err := s.settings.UpdateCryptoAddress(ctx, bitcoin, ethereum, usdt)
	if err != nil {
		return nil, err
	}

	if s.payments != nil {
		update := PaymentMethodUpdate{Bitcoin: bitcoin, Ethereum: ethereum, USDT: usdt}
		if err := s.payments.Apply(ctx, update); err != nil {
			s.log.Warn().Err(err).Msg("crypto payment method reconcile failed")
		}
	}

	s.log.Info().Msg("crypto addresses updated")
	return addr, nil
}
