package main

import (
	"log"
	"net/http"

	_ "romeo/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"romeo/internal/auth"
	"romeo/internal/config"
	"romeo/internal/handler"
	"romeo/internal/repository"
	"romeo/internal/router"
	"romeo/internal/service"
	"romeo/internal/store"
)

// @title Romeo Ordering API
// @version 1.0
// @description Ordering backend for the Romeo restaurant storefront: menu, cart, checkout, order history, favorites and address book.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	backend, err := newBackend(cfg)
	if err != nil {
		log.Fatalf("store init: %v", err)
	}
	st := store.Namespaced(backend, cfg.StoreNamespace)

	// Initialize repositories
	userRepo := repository.NewUserRepository(st)
	sessionRepo := repository.NewSessionRepository(st)
	cartRepo := repository.NewCartRepository(st)
	orderRepo := repository.NewOrderRepository(st)
	addressRepo := repository.NewAddressRepository(st)
	menuRepo := repository.NewMenuRepository(st)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	rememberStore := auth.NewRememberStore(st)

	// Initialize services
	identityService := service.NewIdentityService(userRepo, sessionRepo, jwtService, rememberStore)
	cartService := service.NewCartService(cartRepo)
	orderService := service.NewOrderService(orderRepo)
	addressService := service.NewAddressService(addressRepo)
	checkoutService := service.NewCheckoutService(sessionRepo, cartService, orderService, addressService)
	menuService := service.NewMenuService(menuRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(identityService)
	menuHandler := handler.NewMenuHandler(menuService)
	cartHandler := handler.NewCartHandler(cartService)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService)
	orderHandler := handler.NewOrderHandler(orderService, identityService)
	addressHandler := handler.NewAddressHandler(addressService, identityService)
	reservationHandler := handler.NewReservationHandler()

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		menuHandler,
		cartHandler,
		checkoutHandler,
		orderHandler,
		addressHandler,
		reservationHandler,
	)

	swaggerHost := cfg.SwaggerHost
	if swaggerHost == "" {
		swaggerHost = "http://localhost:" + cfg.ServerPort
	}
	log.Printf("Swagger documentation available at: %s/swagger/index.html", swaggerHost)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

// newBackend picks the persistence backend from configuration.
func newBackend(cfg *config.Config) (store.Store, error) {
	switch cfg.StoreBackend {
	case "mysql":
		return store.NewMySQL(cfg.MySQLDSN)
	case "memory":
		return store.NewMemory(), nil
	default:
		return store.NewRedis(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB), nil
	}
}
