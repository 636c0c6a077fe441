package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"docushop/errs"
	"docushop/models"
	"docushop/services"
	"docushop/store"
)

// In-memory stores backing the controller tests. The HTTP layer is
// exercised end to end through a real mux router against these.

type memOrderStore struct {
	orders map[primitive.ObjectID]models.Order
}

func newMemOrderStore() *memOrderStore {
	return &memOrderStore{orders: map[primitive.ObjectID]models.Order{}}
}

func (m *memOrderStore) Insert(_ context.Context, order *models.Order) (*models.Order, error) {
	order.ID = primitive.NewObjectID()
	order.CreatedAt = time.Now().UTC()
	order.UpdatedAt = order.CreatedAt
	m.orders[order.ID] = *order
	return order, nil
}

func (m *memOrderStore) FindAll(context.Context) ([]models.Order, error) {
	orders := make([]models.Order, 0, len(m.orders))
	for _, order := range m.orders {
		orders = append(orders, order)
	}
	return orders, nil
}

func (m *memOrderStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Order, error) {
	order, ok := m.orders[id]
	if !ok {
		return nil, errs.NotFound("order not found")
	}
	return &order, nil
}

func (m *memOrderStore) SetStatus(_ context.Context, id primitive.ObjectID, status models.OrderStatus) (*models.Order, error) {
	order, ok := m.orders[id]
	if !ok {
		return nil, errs.NotFound("order not found")
	}
	order.Status = status
	m.orders[id] = order
	return &order, nil
}

func (m *memOrderStore) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := m.orders[id]; !ok {
		return errs.NotFound("order not found")
	}
	delete(m.orders, id)
	return nil
}

type memProductStore struct {
	products map[primitive.ObjectID]models.Product
}

func newMemProductStore() *memProductStore {
	return &memProductStore{products: map[primitive.ObjectID]models.Product{}}
}

func (m *memProductStore) Insert(_ context.Context, product *models.Product) (*models.Product, error) {
	product.ID = primitive.NewObjectID()
	m.products[product.ID] = *product
	return product, nil
}

func (m *memProductStore) FindAll(_ context.Context, category string) ([]models.Product, error) {
	products := make([]models.Product, 0, len(m.products))
	for _, product := range m.products {
		if category != "" && product.Category != category {
			continue
		}
		products = append(products, product)
	}
	return products, nil
}

func (m *memProductStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	product, ok := m.products[id]
	if !ok {
		return nil, errs.NotFound("product not found")
	}
	return &product, nil
}

func (m *memProductStore) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := m.products[id]; !ok {
		return errs.NotFound("product not found")
	}
	delete(m.products, id)
	return nil
}

type memPaymentMethodStore struct {
	methods map[models.PaymentType]models.PaymentMethod
}

func newMemPaymentMethodStore() *memPaymentMethodStore {
	return &memPaymentMethodStore{methods: map[models.PaymentType]models.PaymentMethod{}}
}

func (m *memPaymentMethodStore) Upsert(_ context.Context, t models.PaymentType, patch store.PaymentMethodPatch) error {
	method, ok := m.methods[t]
	if !ok {
		method = models.PaymentMethod{ID: primitive.NewObjectID(), Type: t, Active: true}
	}
	if patch.Bank != nil {
		bank := *patch.Bank
		method.Bank = &bank
	}
	if patch.PayPal != nil {
		paypal := *patch.PayPal
		method.PayPal = &paypal
	}
	if patch.Skype != nil {
		skype := *patch.Skype
		method.Skype = &skype
	}
	if patch.Crypto != nil {
		if method.Crypto == nil {
			method.Crypto = &models.CryptoCredentials{}
		}
		if patch.Crypto.Bitcoin != nil {
			method.Crypto.Bitcoin = *patch.Crypto.Bitcoin
		}
		if patch.Crypto.Ethereum != nil {
			method.Crypto.Ethereum = *patch.Crypto.Ethereum
		}
		if patch.Crypto.USDT != nil {
			method.Crypto.USDT = *patch.Crypto.USDT
		}
	}
	if patch.Active != nil {
		method.Active = *patch.Active
	}
	m.methods[t] = method
	return nil
}

func (m *memPaymentMethodStore) FindByType(_ context.Context, t models.PaymentType) (*models.PaymentMethod, error) {
	method, ok := m.methods[t]
	if !ok {
		return nil, errs.NotFound("payment method not found")
	}
	return &method, nil
}

func (m *memPaymentMethodStore) FindAll(_ context.Context, activeOnly bool) ([]models.PaymentMethod, error) {
	methods := make([]models.PaymentMethod, 0, len(m.methods))
	for _, method := range m.methods {
		if activeOnly && !method.Active {
			continue
		}
		methods = append(methods, method)
	}
	return methods, nil
}

func (m *memPaymentMethodStore) SetActive(_ context.Context, id primitive.ObjectID, active bool) error {
	for t, method := range m.methods {
		if method.ID == id {
			method.Active = active
			m.methods[t] = method
			return nil
		}
	}
	return errs.NotFound("payment method not found")
}

func (m *memPaymentMethodStore) Delete(_ context.Context, id primitive.ObjectID) error {
	for t, method := range m.methods {
		if method.ID == id {
			delete(m.methods, t)
			return nil
		}
	}
	return errs.NotFound("payment method not found")
}

type memUserStore struct {
	users map[primitive.ObjectID]models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: map[primitive.ObjectID]models.User{}}
}

func (m *memUserStore) Insert(_ context.Context, user *models.User) (*models.User, error) {
	user.ID = primitive.NewObjectID()
	m.users[user.ID] = *user
	return user, nil
}

func (m *memUserStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, errs.NotFound("user not found")
	}
	return &user, nil
}

func (m *memUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, errs.NotFound("user not found")
}

func (m *memUserStore) FindByRole(_ context.Context, role string) (*models.User, error) {
	for _, user := range m.users {
		if user.Role == role {
			u := user
			return &u, nil
		}
	}
	return nil, errs.NotFound("user not found")
}

func (m *memUserStore) ExistsByEmailOrUsername(_ context.Context, email, username string) (bool, error) {
	for _, user := range m.users {
		if user.Email == email || user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (m *memUserStore) UpdateCredentials(_ context.Context, id primitive.ObjectID, email, passwordHash string) error {
	user, ok := m.users[id]
	if !ok {
		return errs.NotFound("user not found")
	}
	user.Email = email
	user.Password = passwordHash
	m.users[id] = user
	return nil
}

func (m *memUserStore) FindAll(context.Context) ([]models.User, error) {
	users := make([]models.User, 0, len(m.users))
	for _, user := range m.users {
		users = append(users, user)
	}
	return users, nil
}

func newTestOrderController(orders store.OrderStore, products store.ProductStore, users store.UserStore) *OrderController {
	service := services.NewOrderService(zerolog.Nop(), orders, products, users, nil)
	return NewOrderController(zerolog.Nop(), service)
}

func doJSON(t *testing.T, router *mux.Router, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func jsonDecode(rec *httptest.ResponseRecorder, dest any) error {
	return json.NewDecoder(rec.Body).Decode(dest)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}
