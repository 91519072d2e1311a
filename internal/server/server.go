package server

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"storefront-backend/internal/config"
	"storefront-backend/internal/handler"
	"storefront-backend/internal/middleware"
	"storefront-backend/internal/model"
	"storefront-backend/internal/service"
)

type Server struct {
	echo            *echo.Echo
	jwtCfg          *config.JWT
	webhookHandler  *handler.WebhookHandler
	authHandler     *handler.AuthHandler
	catalogHandler  *handler.CatalogHandler
	cartHandler     *handler.CartHandler
	wishlistHandler *handler.WishlistHandler
	ticketHandler   *handler.TicketHandler
	orderHandler    *handler.OrderHandler
	bannerHandler   *handler.BannerHandler
}

type Services struct {
	Checkout service.CheckoutService
	User     service.UserService
	Catalog  service.CatalogService
	Cart     service.CartService
	Wishlist service.WishlistService
	Ticket   service.TicketService
	Order    service.OrderService
	Banner   service.BannerService
}

func NewServer(jwtCfg *config.JWT, svcs Services, log *zap.Logger) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			log.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Error(v.Error),
			)
			return nil
		},
	}))
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	s := &Server{
		echo:            e,
		jwtCfg:          jwtCfg,
		webhookHandler:  handler.NewWebhookHandler(svcs.Checkout, log),
		authHandler:     handler.NewAuthHandler(svcs.User),
		catalogHandler:  handler.NewCatalogHandler(svcs.Catalog),
		cartHandler:     handler.NewCartHandler(svcs.Cart),
		wishlistHandler: handler.NewWishlistHandler(svcs.Wishlist),
		ticketHandler:   handler.NewTicketHandler(svcs.Ticket),
		orderHandler:    handler.NewOrderHandler(svcs.Order),
		bannerHandler:   handler.NewBannerHandler(svcs.Banner),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// -------- public --------
	api.POST("/auth/register", s.authHandler.Register)
	api.POST("/auth/login", s.authHandler.Login)
	api.GET("/products", s.catalogHandler.ListProducts)
	api.GET("/products/:id", s.catalogHandler.GetProduct)
	api.GET("/banners", s.bannerHandler.List)

	// -------- payment provider webhooks --------
	api.POST("/stripe/webhook", s.webhookHandler.StripeWebhook)

	// -------- authenticated --------
	authed := api.Group("", middleware.Auth(s.jwtCfg))
	authed.GET("/me/dashboard", s.authHandler.Dashboard)

	authed.GET("/cart", s.cartHandler.GetCart)
	authed.POST("/cart/items", s.cartHandler.AddItem)
	authed.DELETE("/cart/items/:id", s.cartHandler.RemoveItem)

	authed.GET("/wishlist", s.wishlistHandler.List)
	authed.POST("/wishlist", s.wishlistHandler.Add)
	authed.DELETE("/wishlist/:productID", s.wishlistHandler.Remove)

	authed.POST("/tickets", s.ticketHandler.Create)
	authed.GET("/tickets", s.ticketHandler.List)
	authed.GET("/tickets/:id", s.ticketHandler.Get)
	authed.POST("/tickets/:id/messages", s.ticketHandler.AddMessage)

	authed.GET("/orders", s.orderHandler.ListMine)
	authed.GET("/orders/:id", s.orderHandler.Get)

	// -------- back office --------
	editors := authed.Group("", middleware.RequireRole(model.RoleAdmin, model.RoleEditor))
	editors.POST("/products", s.catalogHandler.CreateProduct)
	editors.PUT("/products/:id", s.catalogHandler.UpdateProduct)
	editors.DELETE("/products/:id", s.catalogHandler.DeleteProduct)

	staff := authed.Group("", middleware.RequireRole(model.RoleAdmin, model.RoleManager))
	staff.GET("/admin/orders", s.orderHandler.ListAll)
	staff.PUT("/admin/orders/:id/status", s.orderHandler.SetStatus)
	staff.PUT("/tickets/:id/status", s.ticketHandler.SetStatus)

	admins := authed.Group("", middleware.RequireRole(model.RoleAdmin))
	admins.PUT("/admin/banners/:slot", s.bannerHandler.Put)
	admins.DELETE("/admin/banners/:slot", s.bannerHandler.Delete)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
