package controllers

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"docushop/services"
	"docushop/utils"
)

// SettingsController serves the shipping and crypto-address singletons.
type SettingsController struct {
	log     zerolog.Logger
	service *services.SettingsService
}

func NewSettingsController(log zerolog.Logger, service *services.SettingsService) *SettingsController {
	return &SettingsController{log: log, service: service}
}

// GetShipping handles GET /api/shipping.
func (sc *SettingsController) GetShipping(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	shipping, err := sc.service.Shipping(ctx)
	if err != nil {
		utils.RespondError(w, sc.log, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, shipping)
}

type shippingRequest struct {
	Method            string  `json:"method"`
	Cost              float64 `json:"cost" validate:"gte=0"`
	EstimatedDelivery string  `json:"estimatedDelivery"`
}

// UpdateShipping handles PUT /api/shipping (admin only).
func (sc *SettingsController) UpdateShipping(w http.ResponseWriter, r *http.Request) {
	var req shippingRequest
	if err := utils.DecodeJSONBody(r, &req); err != nil {
		utils.RespondError(w, sc.log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	shipping, err := sc.service.UpdateShipping(ctx, req.Method, req.Cost, req.EstimatedDelivery)
	if err != nil {
		utils.RespondError(w, sc.log, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"message":  "Shipping settings updated",
		"shipping": shipping,
	})
}

// GetCryptoAddresses handles GET /crypto-addresses.
func (sc *SettingsController) GetCryptoAddresses(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	addresses, err := sc.service.CryptoAddresses(ctx)
	if err != nil {
		utils.RespondError(w, sc.log, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, addresses)
}

type cryptoAddressesRequest struct {
	Bitcoin  string `json:"bitcoin"`
	Ethereum string `json:"ethereum"`
	USDT     string `json:"usdt"`
}

// UpdateCryptoAddresses handles PUT /crypto-addresses (admin only).
func (sc *SettingsController) UpdateCryptoAddresses(w http.ResponseWriter, r *http.Request) {
	var req cryptoAddressesRequest
	if err := utils.DecodeJSONBody(r, &req); err != nil {
		utils.RespondError(w, sc.log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	addresses, err := sc.service.UpdateCryptoAddresses(ctx, req.Bitcoin, req.Ethereum, req.USDT)
	if err != nil {
		utils.RespondError(w, sc.log, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"message":   "Crypto addresses updated",
		"addresses": addresses,
	})
}
