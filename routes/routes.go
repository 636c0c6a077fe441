// routes/routes.go
package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"docushop/controllers"
	"docushop/middleware"
)

// RegisterRoutes sets up all the routes for the application.
func RegisterRoutes(
	router *mux.Router,
	userController *controllers.UserController,
	productController *controllers.ProductController,
	orderController *controllers.OrderController,
	paymentController *controllers.PaymentController,
	settingsController *controllers.SettingsController,
) {
	// Health check
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("DocuShop backend is running"))
	}).Methods("GET")

	// Public user routes
	router.HandleFunc("/users/register", userController.Register).Methods("POST")
	router.HandleFunc("/users/login", userController.Login).Methods("POST")
	router.HandleFunc("/create-admin", userController.CreateAdmin).Methods("POST")

	// Storefront routes
	router.HandleFunc("/products", productController.GetProducts).Methods("GET")
	router.HandleFunc("/orders", orderController.PlaceOrder).Methods("POST")
	router.HandleFunc("/orders", orderController.GetOrders).Methods("GET")
	router.HandleFunc("/orders/{id}/cancel", orderController.CancelOrder).Methods("PATCH")
	router.HandleFunc("/api/payment-methods", paymentController.GetActiveMethods).Methods("GET")
	router.HandleFunc("/api/shipping", settingsController.GetShipping).Methods("GET")
	router.HandleFunc("/crypto-addresses", settingsController.GetCryptoAddresses).Methods("GET")

	// Admin routes
	admin := router.PathPrefix("/").Subrouter()
	admin.Use(middleware.AuthMiddleware)
	admin.Use(middleware.AdminMiddleware)
	admin.HandleFunc("/users", userController.GetUsers).Methods("GET")
	admin.HandleFunc("/users/admin", userController.UpdateAdmin).Methods("PUT")
	admin.HandleFunc("/products", productController.CreateProduct).Methods("POST")
	admin.HandleFunc("/products/{id}", productController.DeleteProduct).Methods("DELETE")
	admin.HandleFunc("/orders/{id}/status", orderController.UpdateOrderStatus).Methods("PATCH")
	admin.HandleFunc("/orders/{id}", orderController.DeleteOrder).Methods("DELETE")
	admin.HandleFunc("/api/payment-methods", paymentController.UpdateMethods).Methods("PUT")
	admin.HandleFunc("/api/payment-methods/all", paymentController.GetAllMethods).Methods("GET")
	admin.HandleFunc("/api/payment-methods/{id}/active", paymentController.SetMethodActive).Methods("PATCH")
	admin.HandleFunc("/api/payment-methods/{id}", paymentController.DeleteMethod).Methods("DELETE")
	admin.HandleFunc("/api/shipping", settingsController.UpdateShipping).Methods("PUT")
	admin.HandleFunc("/crypto-addresses", settingsController.UpdateCryptoAddresses).Methods("PUT")
}
