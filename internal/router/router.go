package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"romeo/internal/auth"
	"romeo/internal/config"
	"romeo/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	menuHandler *handler.MenuHandler,
	cartHandler *handler.CartHandler,
	checkoutHandler *handler.CheckoutHandler,
	orderHandler *handler.OrderHandler,
	addressHandler *handler.AddressHandler,
	reservationHandler *handler.ReservationHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/signup", authHandler.Signup)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/restore", authHandler.Restore)
	api.POST("/auth/logout", authHandler.Logout)
	api.POST("/auth/reset-password", authHandler.ResetPassword)

	api.GET("/menu", menuHandler.ListMenu)
	api.POST("/reservations", reservationHandler.CreateReservation)

	// Cart routes are public: items land in the cart before login.
	api.GET("/cart", cartHandler.GetCart)
	api.POST("/cart/items", cartHandler.AddItem)
	api.POST("/cart/items/:index/increase", cartHandler.Increase)
	api.POST("/cart/items/:index/decrease", cartHandler.Decrease)
	api.DELETE("/cart/items/:index", cartHandler.RemoveItem)

	// Checkout runs its own precondition chain and reports
	// NOT_AUTHENTICATED itself, so it stays outside the JWT group.
	api.POST("/checkout", checkoutHandler.Checkout)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(cfg.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}))

	secured.GET("/me", authHandler.Me)

	// Order history and favorites
	secured.GET("/orders", orderHandler.ListOrders)
	secured.POST("/orders/:index/favorite", orderHandler.ToggleFavorite)
	secured.GET("/favorites", orderHandler.ListFavorites)

	// Address book
	secured.GET("/addresses", addressHandler.ListAddresses)
	secured.POST("/addresses", addressHandler.AddAddress)
	secured.PUT("/addresses/:index", addressHandler.EditAddress)
	secured.DELETE("/addresses/:index", addressHandler.DeleteAddress)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
