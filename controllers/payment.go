package controllers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"docushop/services"
	"docushop/utils"
)

// PaymentController exposes the payment method configuration.
type PaymentController struct {
	log     zerolog.Logger
	service *services.PaymentService
}

func NewPaymentController(log zerolog.Logger, service *services.PaymentService) *PaymentController {
	return &PaymentController{log: log, service: service}
}

// GetActiveMethods handles GET /api/payment-methods. Only active methods
// are exposed to the storefront.
func (pc *PaymentController) GetActiveMethods(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	methods, err := pc.service.Active(ctx)
	if err != nil {
		utils.RespondError(w, pc.log, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, methods)
}

// GetAllMethods handles GET /api/payment-methods/all (admin only).
func (pc *PaymentController) GetAllMethods(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	methods, err := pc.service.All(ctx)
	if err != nil {
		utils.RespondError(w, pc.log, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, methods)
}

type paymentMethodsRequest struct {
	Bank     string `json:"bank"`
	PayPal   string `json:"paypal"`
	Skype    string `json:"skype"`
	Bitcoin  string `json:"bitcoin"`
	Ethereum string `json:"ethereum"`
	USDT     string `json:"usdt"`
}

// UpdateMethods handles PUT /api/payment-methods: a partial update
// touching only the payment types present in the body.
func (pc *PaymentController) UpdateMethods(w http.ResponseWriter, r *http.Request) {
	var req paymentMethodsRequest
	if err := utils.DecodeJSONBody(r, &req); err != nil {
		utils.RespondError(w, pc.log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	update := services.PaymentMethodUpdate{
		Bank:     req.Bank,
		PayPal:   req.PayPal,
		Skype:    req.Skype,
		Bitcoin:  req.Bitcoin,
		Ethereum: req.Ethereum,
		USDT:     req.USDT,
	}
	if err := pc.service.Apply(ctx, update); err != nil {
		utils.RespondError(w, pc.log, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Payment methods saved/updated successfully"})
}

type methodActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// SetMethodActive handles PATCH /api/payment-methods/{id}/active (admin
// only): toggles a method without touching its credentials.
func (pc *PaymentController) SetMethodActive(w http.ResponseWriter, r *http.Request) {
	var req methodActiveRequest
	if err := utils.DecodeJSONBody(r, &req); err != nil {
		utils.RespondError(w, pc.log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := pc.service.SetActive(ctx, mux.Vars(r)["id"], *req.Active); err != nil {
		utils.RespondError(w, pc.log, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Payment method updated"})
}

// DeleteMethod handles DELETE /api/payment-methods/{id} (admin only).
func (pc *PaymentController) DeleteMethod(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := pc.service.Delete(ctx, mux.Vars(r)["id"]); err != nil {
		utils.RespondError(w, pc.log, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Payment method deleted"})
}
