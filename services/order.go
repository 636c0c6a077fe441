// Package services contains the business workflows composed from the
// store interfaces: order placement and lifecycle, payment method
// reconciliation, catalog management and shop settings.
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

// Snapshot fallbacks. UnknownProductName is recorded at placement time
// when a line item references a product the catalog cannot resolve;
// DeletedProductName is rendered at read time for legacy items that have
// no snapshot and whose product is gone.
const (
	UnknownProductName = "Unknown"
	DeletedProductName = "Unknown (deleted)"
)

// EmailSender delivers the order confirmation. Implemented by
// utils.EmailService.
type EmailSender interface {
	SendOrderConfirmationEmail(toEmail string, order models.Order) error
}

// OrderService is the order placement and lifecycle workflow.
type OrderService struct {
	log      zerolog.Logger
	orders   store.OrderStore
	products store.ProductStore
	users    store.UserStore
	email    EmailSender
}

func NewOrderService(log zerolog.Logger, orders store.OrderStore, products store.ProductStore, users store.UserStore, email EmailSender) *OrderService {
	return &OrderService{
		log:      log.With().Str("component", "orders").Logger(),
		orders:   orders,
		products: products,
		users:    users,
		email:    email,
	}
}

// PlaceOrderInput is the decoded order request.
type PlaceOrderInput struct {
	UserID           string
	Items            []PlaceOrderItem
	Total            float64
	Billing          BillingInput
	PaymentAddresses *models.PaymentAddresses
	PaymentMethod    string
}

type PlaceOrderItem struct {
	ProductRef string
	Quantity   int
}

// BillingInput carries the raw billing block. Name may be absent when
// FirstName and LastName are provided; Place synthesizes it.
type BillingInput struct {
	Name      string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	City      string
	Country   string
}

// Place validates the request, snapshots each referenced product and
// persists the order as pending. A product reference that does not
// resolve never fails the order: the line is recorded with the
// UnknownProductName snapshot instead.
func (s *OrderService) Place(ctx context.Context, input PlaceOrderInput) (*models.Order, error) {
	billing, err := resolveBilling(input.Billing)
	if err != nil {
		return nil, err
	}

	if len(input.Items) == 0 {
		return nil, errs.Validation("order must contain at least one product")
	}
	for _, item := range input.Items {
		if item.Quantity < 1 {
			return nil, errs.Validation("product quantity must be at least 1")
		}
	}
	if input.Total < 0 {
		return nil, errs.Validation("total must not be negative")
	}

	method := models.PaymentOption(input.PaymentMethod)
	if input.PaymentMethod == "" {
		method = models.PayWithCrypto
	}
	if !method.Valid() {
		return nil, errs.Validation("invalid payment method")
	}

	var userID *primitive.ObjectID
	if input.UserID != "" {
		id, err := primitive.ObjectIDFromHex(input.UserID)
		if err != nil {
			return nil, errs.Validation("invalid user id")
		}
		userID = &id
	}

	items := make([]models.OrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, s.snapshotItem(ctx, item))
	}

	order := &models.Order{
		UserID:           userID,
		Items:            items,
		Total:            input.Total,
		BillingInfo:      billing,
		PaymentAddresses: input.PaymentAddresses,
		PaymentMethod:    method,
		Status:           models.StatusPending,
	}

	order, err = s.orders.Insert(ctx, order)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("order_id", order.ID.Hex()).
		Int("items", len(order.Items)).
		Float64("total", order.Total).
		Msg("order placed")

	if s.email != nil && order.BillingInfo.Email != "" {
		o := *order
		go func() {
			if err := s.email.SendOrderConfirmationEmail(o.BillingInfo.Email, o); err != nil {
				s.log.Warn().Err(err).Str("order_id", o.ID.Hex()).Msg("order confirmation email failed")
			}
		}()
	}

	return order, nil
}

// snapshotItem resolves one product reference into a line item. Lookup
// failures of any kind degrade to the unknown-product snapshot: the order
// is worth more than strict referential integrity here.
func (s *OrderService) snapshotItem(ctx context.Context, item PlaceOrderItem) models.OrderItem {
	line := models.OrderItem{
		Quantity: item.Quantity,
		Name:     UnknownProductName,
		Price:    0,
	}

	productID, err := primitive.ObjectIDFromHex(item.ProductRef)
	if err != nil {
		s.log.Warn().Str("product_ref", item.ProductRef).Msg("unparseable product reference, snapshotting as unknown")
		return line
	}
	line.ProductID = productID

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		s.log.Warn().Err(err).Str("product_id", productID.Hex()).Msg("product lookup failed, snapshotting as unknown")
		return line
	}

	line.Name = product.Name
	line.Price = product.Price
	return line
}

func resolveBilling(input BillingInput) (models.BillingInfo, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		first := strings.TrimSpace(input.FirstName)
		last := strings.TrimSpace(input.LastName)
		if first != "" && last != "" {
			name = first + " " + last
		}
	}
	if name == "" {
		return models.BillingInfo{}, errs.Validation("billing name is required")
	}
	if strings.TrimSpace(input.Email) == "" {
		return models.BillingInfo{}, errs.Validation("billing email is required")
	}

	return models.BillingInfo{
		Name:    name,
		Email:   strings.TrimSpace(input.Email),
		Phone:   input.Phone,
		Address: input.Address,
		City:    input.City,
		Country: input.Country,
	}, nil
}

// OrderUser is the only slice of the account exposed on a rendered order.
type OrderUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// OrderView is an order as returned by List: line items resolved to their
// snapshot and the user reference reduced to safe fields.
type OrderView struct {
	models.Order
	User *OrderUser `json:"user,omitempty"`
}

// List returns all orders, newest first. Line items render from their
// stored snapshot; a live product lookup is only attempted for legacy
// items without one.
func (s *OrderService) List(ctx context.Context) ([]OrderView, error) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		for i := range order.Items {
			if order.Items[i].Name != "" {
				continue
			}
			order.Items[i] = s.resolveLegacyItem(ctx, order.Items[i])
		}

		view := OrderView{Order: order}
		if order.UserID != nil {
			if user, err := s.users.FindByID(ctx, *order.UserID); err == nil {
				view.User = &OrderUser{Username: user.Username, Email: user.Email}
			}
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *OrderService) resolveLegacyItem(ctx context.Context, item models.OrderItem) models.OrderItem {
	product, err := s.products.FindByID(ctx, item.ProductID)
	if err != nil {
		item.Name = DeletedProductName
		item.Price = 0
		return item
	}
	item.Name = product.Name
	item.Price = product.Price
	return item
}

// Cancel moves an order to cancelled. Cancelling an already-cancelled
// order is a no-op success; cancelling a shipped order is rejected.
func (s *OrderService) Cancel(ctx context.Context, id string) (*models.Order, error) {
	return s.SetStatus(ctx, id, string(models.StatusCancelled))
}

// SetStatus applies a transition from the order state table.
func (s *OrderService) SetStatus(ctx context.Context, id string, status string) (*models.Order, error) {
	next := models.OrderStatus(status)
	if !next.Valid() {
		return nil, errs.Validation("invalid order status")
	}

	orderID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errs.Validation("invalid order id")
	}

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status == next {
		return order, nil
	}
	if !order.Status.CanTransition(next) {
		return nil, errs.StateConflict("order cannot move from " + string(order.Status) + " to " + string(next))
	}

	updated, err := s.orders.SetStatus(ctx, orderID, next)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("order_id", id).Str("status", string(next)).Msg("order status updated")
	return updated, nil
}

// Delete removes an order permanently.
func (s *OrderService) Delete(ctx context.Context, id string) error {
	orderID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.Validation("invalid order id")
	}
	if err := s.orders.Delete(ctx, orderID); err != nil {
		return err
	}
	s.log.Info().Str("order_id", id).Msg("order deleted")
	return nil
}
