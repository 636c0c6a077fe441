// controllers/order.go
package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"docushop/models"
	"docushop/services"
	"docushop/utils"
)

const requestTimeout = 10 * time.Second

// OrderController handles order-related requests.
type OrderController struct {
	log     zerolog.Logger
	service *services.OrderService
}

func NewOrderController(log zerolog.Logger, service *services.OrderService) *OrderController {
	return &OrderController{log: log, service: service}
}

type placeOrderItemRequest struct {
	Product  string `json:"product" validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=1"`
}

type billingInfoRequest struct {
	Name      string `json:"name"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Country   string `json:"country"`
}

type placeOrderRequest struct {
	User             string                   `json:"user"`
	Products         []placeOrderItemRequest  `json:"products" validate:"required,min=1,dive"`
	Total            float64                  `json:"total" validate:"gte=0"`
	BillingInfo      billingInfoRequest       `json:"billingInfo"`
	PaymentAddresses *models.PaymentAddresses `json:"paymentAddresses"`
	PaymentMethod    string                   `json:"paymentMethod"`
}

// PlaceOrder handles POST /orders.
func (oc *OrderController) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if err := utils.DecodeJSONBody(r, &req); err != nil {
		utils.RespondError(w, oc.log, err)
		return
	}

	items := make([]services.PlaceOrderItem, 0, len(req.Products))
	for _, item := range req.Products {
		items = append(items, services.PlaceOrderItem{
			ProductRef: item.Product,
			Quantity:   item.Quantity,
		})
	}

	input := services.PlaceOrderInput{
		UserID: req.User,
		Items:  items,
		Total:  req.Total,
		Billing: services.BillingInput{
			Name:      req.BillingInfo.Name,
			FirstName: req.BillingInfo.FirstName,
			LastName:  req.BillingInfo.LastName,
			Email:     req.BillingInfo.Email,
			Phone:     req.BillingInfo.Phone,
			Address:   req.BillingInfo.Address,
			City:      req.BillingInfo.City,
			Country:   req.BillingInfo.Country,
		},
		PaymentAddresses: req.PaymentAddresses,
		PaymentMethod:    req.PaymentMethod,
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	order, err := oc.service.Place(ctx, input)
	if err != nil {
		utils.RespondError(w, oc.log, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"message": "Order placed",
		"order":   order,
	})
}

// GetOrders handles GET /orders.
func (oc *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	orders, err := oc.service.List(ctx)
	if err != nil {
		utils.RespondError(w, oc.log, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, orders)
}

// CancelOrder handles PATCH /orders/{id}/cancel.
func (oc *OrderController) CancelOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	order, err := oc.service.Cancel(ctx, mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, oc.log, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"message": "Order cancelled",
		"order":   order,
	})
}

type orderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateOrderStatus handles PATCH /orders/{id}/status (admin only).
func (oc *OrderController) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req orderStatusRequest
	if err := utils.DecodeJSONBody(r, &req); err != nil {
		utils.RespondError(w, oc.log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	order, err := oc.service.SetStatus(ctx, mux.Vars(r)["id"], req.Status)
	if err != nil {
		utils.RespondError(w, oc.log, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"message": "Order status updated",
		"order":   order,
	})
}

// DeleteOrder handles DELETE /orders/{id} (admin only).
func (oc *OrderController) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := oc.service.Delete(ctx, mux.Vars(r)["id"]); err != nil {
		utils.RespondError(w, oc.log, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Order deleted"})
}
