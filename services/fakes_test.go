package services

import (
	"context"
	"io"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"docushop/errs"
	"docushop/models"
	"docushop/store"
)

// In-memory store fakes mirroring the MongoDB implementations.

type fakeOrderStore struct {
	mu     sync.Mutex
	orders map[primitive.ObjectID]models.Order
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{orders: map[primitive.ObjectID]models.Order{}}
}

func (f *fakeOrderStore) Insert(_ context.Context, order *models.Order) (*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	order.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now
	f.orders[order.ID] = *order
	return order, nil
}

func (f *fakeOrderStore) FindAll(_ context.Context) ([]models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	orders := make([]models.Order, 0, len(f.orders))
	for _, order := range f.orders {
		// Copy the items slice so callers get an independent document,
		// as a MongoDB decode would produce.
		order.Items = append([]models.OrderItem(nil), order.Items...)
		orders = append(orders, order)
	}
	return orders, nil
}

func (f *fakeOrderStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[id]
	if !ok {
		return nil, errs.NotFound("order not found")
	}
	return &order, nil
}

func (f *fakeOrderStore) SetStatus(_ context.Context, id primitive.ObjectID, status models.OrderStatus) (*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[id]
	if !ok {
		return nil, errs.NotFound("order not found")
	}
	order.Status = status
	order.UpdatedAt = time.Now().UTC()
	f.orders[id] = order
	return &order, nil
}

func (f *fakeOrderStore) Delete(_ context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.orders[id]; !ok {
		return errs.NotFound("order not found")
	}
	delete(f.orders, id)
	return nil
}

type fakeProductStore struct {
	mu       sync.Mutex
	products map[primitive.ObjectID]models.Product
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{products: map[primitive.ObjectID]models.Product{}}
}

func (f *fakeProductStore) add(name string, price float64, category string) models.Product {
	f.mu.Lock()
	defer f.mu.Unlock()
	product := models.Product{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Price:     price,
		Category:  category,
		Available: true,
	}
	f.products[product.ID] = product
	return product
}

func (f *fakeProductStore) Insert(_ context.Context, product *models.Product) (*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	product.ID = primitive.NewObjectID()
	product.CreatedAt = time.Now().UTC()
	f.products[product.ID] = *product
	return product, nil
}

func (f *fakeProductStore) FindAll(_ context.Context, category string) ([]models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	products := make([]models.Product, 0, len(f.products))
	for _, product := range f.products {
		if category != "" && product.Category != category {
			continue
		}
		products = append(products, product)
	}
	return products, nil
}

func (f *fakeProductStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	product, ok := f.products[id]
	if !ok {
		return nil, errs.NotFound("product not found")
	}
	return &product, nil
}

func (f *fakeProductStore) Delete(_ context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.products[id]; !ok {
		return errs.NotFound("product not found")
	}
	delete(f.products, id)
	return nil
}

// fakePaymentMethodStore applies patches with the same semantics as the
// MongoDB upsert translation: whole-credential replacement per type,
// per-field merge for crypto.
type fakePaymentMethodStore struct {
	mu      sync.Mutex
	methods map[models.PaymentType]models.PaymentMethod
}

func newFakePaymentMethodStore() *fakePaymentMethodStore {
	return &fakePaymentMethodStore{methods: map[models.PaymentType]models.PaymentMethod{}}
}

func (f *fakePaymentMethodStore) Upsert(_ context.Context, t models.PaymentType, patch store.PaymentMethodPatch) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	method, ok := f.methods[t]
	if !ok {
		method = models.PaymentMethod{
			ID:        primitive.NewObjectID(),
			Type:      t,
			Active:    true,
			CreatedAt: time.Now().UTC(),
		}
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
	method.UpdatedAt = time.Now().UTC()
	f.methods[t] = method
	return nil
}

func (f *fakePaymentMethodStore) FindByType(_ context.Context, t models.PaymentType) (*models.PaymentMethod, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	method, ok := f.methods[t]
	if !ok {
		return nil, errs.NotFound("payment method not found")
	}
	return &method, nil
}

func (f *fakePaymentMethodStore) FindAll(_ context.Context, activeOnly bool) ([]models.PaymentMethod, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	methods := make([]models.PaymentMethod, 0, len(f.methods))
	for _, method := range f.methods {
		if activeOnly && !method.Active {
			continue
		}
		methods = append(methods, method)
	}
	return methods, nil
}

func (f *fakePaymentMethodStore) SetActive(_ context.Context, id primitive.ObjectID, active bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for t, method := range f.methods {
		if method.ID == id {
			method.Active = active
			f.methods[t] = method
			return nil
		}
	}
	return errs.NotFound("payment method not found")
}

func (f *fakePaymentMethodStore) Delete(_ context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for t, method := range f.methods {
		if method.ID == id {
			delete(f.methods, t)
			return nil
		}
	}
	return errs.NotFound("payment method not found")
}

type fakeUserStore struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[primitive.ObjectID]models.User{}}
}

func (f *fakeUserStore) add(username, email string) models.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	user := models.User{
		ID:       primitive.NewObjectID(),
		Username: username,
		Email:    email,
		Role:     models.RoleUser,
		Status:   models.UserStatusActive,
	}
	f.users[user.ID] = user
	return user
}

func (f *fakeUserStore) Insert(_ context.Context, user *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user.ID = primitive.NewObjectID()
	f.users[user.ID] = *user
	return user, nil
}

func (f *fakeUserStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, errs.NotFound("user not found")
	}
	return &user, nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, errs.NotFound("user not found")
}

func (f *fakeUserStore) FindByRole(_ context.Context, role string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Role == role {
			u := user
			return &u, nil
		}
	}
	return nil, errs.NotFound("user not found")
}

func (f *fakeUserStore) ExistsByEmailOrUsername(_ context.Context, email, username string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email || user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) UpdateCredentials(_ context.Context, id primitive.ObjectID, email, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return errs.NotFound("user not found")
	}
	user.Email = email
	user.Password = passwordHash
	f.users[id] = user
	return nil
}

func (f *fakeUserStore) FindAll(_ context.Context) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	users := make([]models.User, 0, len(f.users))
	for _, user := range f.users {
		users = append(users, user)
	}
	return users, nil
}

type fakeSettingsStore struct {
	mu       sync.Mutex
	shipping *models.Shipping
	crypto   *models.CryptoAddress
}

func (f *fakeSettingsStore) GetShipping(_ context.Context) (*models.Shipping, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.shipping == nil {
		f.shipping = &models.Shipping{
			ID:                primitive.NewObjectID(),
			Method:            models.DefaultShippingMethod,
			EstimatedDelivery: models.DefaultShippingDelivery,
			UpdatedAt:         time.Now().UTC(),
		}
	}
	shipping := *f.shipping
	return &shipping, nil
}

func (f *fakeSettingsStore) UpdateShipping(_ context.Context, method string, cost float64, estimatedDelivery string) (*models.Shipping, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shipping = &models.Shipping{
		ID:                primitive.NewObjectID(),
		Method:            method,
		Cost:              cost,
		EstimatedDelivery: estimatedDelivery,
		UpdatedAt:         time.Now().UTC(),
	}
	shipping := *f.shipping
	return &shipping, nil
}

func (f *fakeSettingsStore) GetCryptoAddress(_ context.Context) (*models.CryptoAddress, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.crypto == nil {
		f.crypto = &models.CryptoAddress{ID: primitive.NewObjectID(), UpdatedAt: time.Now().UTC()}
	}
	addr := *f.crypto
	return &addr, nil
}

func (f *fakeSettingsStore) UpdateCryptoAddress(_ context.Context, bitcoin, ethereum, usdt string) (*models.CryptoAddress, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.crypto = &models.CryptoAddress{
		ID:        primitive.NewObjectID(),
		Bitcoin:   bitcoin,
		Ethereum:  ethereum,
		USDT:      usdt,
		UpdatedAt: time.Now().UTC(),
	}
	addr := *f.crypto
	return &addr, nil
}

type fakeUploader struct {
	url string
	err error
}

func (f *fakeUploader) Upload(_ context.Context, _ io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if f.url == "" {
		return "https://cdn.example.com/image.png", nil
	}
	return f.url, nil
}

type fakeEmailSender struct {
	mu   sync.Mutex
	sent []string
}

func (f *fakeEmailSender) SendOrderConfirmationEmail(toEmail string, _ models.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, toEmail)
	return nil
}
