package server

import (
	"errors"
	"net/http"

	"github.com/elicharlese/Dropics-sub001/internal/handler"
	custommw "github.com/elicharlese/Dropics-sub001/internal/middleware"
	"github.com/elicharlese/Dropics-sub001/internal/service"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

type Server struct {
	echo            *echo.Echo
	authHandler     *handler.AuthHandler
	catalogHandler  *handler.CatalogHandler
	cartHandler     *handler.CartHandler
	wishlistHandler *handler.WishlistHandler
	contentHandler  *handler.ContentHandler
	orderHandler    *handler.OrderHandler
	paymentHandler  *handler.PaymentHandler
	jwtSecret       string
}

type Services struct {
	User     service.UserService
	Catalog  service.CatalogService
	Cart     service.CartService
	Wishlist service.WishlistService
	Review   service.ReviewService
	Content  service.ContentService
	Order    service.OrderService
	Payment  service.PaymentService
}

func NewServer(services Services, jwtSecret string, logger *zap.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &requestValidator{validate: validator.New()}

	// every failure renders the {"error": ...} envelope
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		code := http.StatusInternalServerError
		message := "internal server error"
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			code = httpErr.Code
			if m, ok := httpErr.Message.(string); ok {
				message = m
			}
		} else {
			logger.Error("unhandled request error", zap.Error(err))
		}
		_ = c.JSON(code, map[string]string{"error": message})
	}

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency))
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:            e,
		authHandler:     handler.NewAuthHandler(services.User),
		catalogHandler:  handler.NewCatalogHandler(services.Catalog),
		cartHandler:     handler.NewCartHandler(services.Cart),
		wishlistHandler: handler.NewWishlistHandler(services.Wishlist),
		contentHandler:  handler.NewContentHandler(services.Content, services.Review),
		orderHandler:    handler.NewOrderHandler(services.Order),
		paymentHandler:  handler.NewPaymentHandler(services.Payment),
		jwtSecret:       jwtSecret,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// -------- public --------
	api.POST("/auth/register", s.authHandler.Register)
	api.POST("/auth/login", s.authHandler.Login)

	api.GET("/products", s.catalogHandler.ListProducts)
	api.GET("/products/:slug", s.catalogHandler.GetProduct)
	api.GET("/products/:slug/reviews", s.contentHandler.ListReviews)

	api.GET("/blog", s.contentHandler.ListPosts)
	api.GET("/blog/:slug", s.contentHandler.GetPost)
	api.POST("/contact", s.contentHandler.SubmitContact)

	// raw body + signature header; must stay outside the auth group
	api.POST("/payments/stripe/webhook", s.paymentHandler.Webhook)

	// -------- authenticated --------
	authed := api.Group("", custommw.Auth(s.jwtSecret))

	authed.GET("/auth/me", s.authHandler.Me)

	authed.GET("/cart", s.cartHandler.GetCart)
	authed.POST("/cart", s.cartHandler.AddItem)
	authed.PUT("/cart/:productID", s.cartHandler.UpdateItem)
	authed.DELETE("/cart/:productID", s.cartHandler.RemoveItem)

	authed.GET("/wishlist", s.wishlistHandler.GetWishlist)
	authed.POST("/wishlist", s.wishlistHandler.AddItem)
	authed.DELETE("/wishlist/:productID", s.wishlistHandler.RemoveItem)

	authed.POST("/products/:slug/reviews", s.contentHandler.AddReview)

	authed.POST("/orders", s.orderHandler.CreateOrder)
	authed.GET("/orders", s.orderHandler.ListOrders)
	authed.GET("/orders/:orderID", s.orderHandler.GetOrder)

	authed.POST("/payments/stripe", s.paymentHandler.CreateIntent)
	authed.PUT("/payments/stripe", s.paymentHandler.ConfirmIntent)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
