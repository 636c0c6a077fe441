// main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"docushop/config"
	"docushop/controllers"
	"docushop/logger"
	"docushop/routes"
	"docushop/services"
	"docushop/store"
	"docushop/utils"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load environment variables from .env file when present.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		ServiceName: "docushop",
		Level:       cfg.App.LogLevel,
		Format:      cfg.App.LogFormat,
	})

	utils.JwtKey = []byte(cfg.JWT.Secret)
	utils.JwtTTL = cfg.JWT.TTL

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to MongoDB
	client, err := store.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	db := client.Database(cfg.Mongo.Database)
	if err := store.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index bootstrap failed")
	}

	uploader, err := utils.NewCloudinaryUploader(cfg.Cloudinary)
	if err != nil {
		log.Fatal().Err(err).Msg("cloudinary init failed")
	}

	var email services.EmailSender
	if cfg.Sendgrid.APIKey != "" {
		email = utils.NewEmailService(cfg.Sendgrid)
	} else {
		log.Warn().Msg("sendgrid api key not set, outbound email disabled")
	}

	// Stores
	orderStore := store.NewMongoOrderStore(db)
	productStore := store.NewMongoProductStore(db)
	paymentStore := store.NewMongoPaymentMethodStore(db)
	settingsStore := store.NewMongoSettingsStore(db)
	userStore := store.NewMongoUserStore(db)

	// Services
	paymentService := services.NewPaymentService(log, paymentStore)
	orderService := services.NewOrderService(log, orderStore, productStore, userStore, email)
	catalogService := services.NewCatalogService(log, productStore, uploader)
	settingsService := services.NewSettingsService(log, settingsStore, paymentService)

	// Controllers
	userController := controllers.NewUserController(log, userStore)
	productController := controllers.NewProductController(log, catalogService)
	orderController := controllers.NewOrderController(log, orderService)
	paymentController := controllers.NewPaymentController(log, paymentService)
	settingsController := controllers.NewSettingsController(log, settingsService)

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(router, userController, productController, orderController, paymentController, settingsController)

	server := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.App.Port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
