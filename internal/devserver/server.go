package devserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsoto007/nush/internal/auth"
	"github.com/jsoto007/nush/internal/middleware"
)

// Server is a local stand-in for the platform API: it honors the same
// JSON envelope and endpoints the SDK consumes, backed by in-process
// state and a pluggable catalog fixture store. It exists for offline
// development and integration tests, not production.
type Server struct {
	catalog CatalogRepository
	state   *state
	engine  *gin.Engine
}

// New builds the server. Extra middleware (CORS for browser clients, a
// request logger) must be passed here because gin only applies middleware
// registered before the routes.
func New(catalog CatalogRepository, extra ...gin.HandlerFunc) *Server {
	s := &Server{
		catalog: catalog,
		state:   newState(),
		engine:  gin.New(),
	}
	s.engine.Use(gin.Recovery())
	s.engine.Use(extra...)
	s.routes()
	return s
}

// Engine exposes the router, mainly for httptest in integration tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) routes() {
	r := s.engine

	r.GET("/health", func(c *gin.Context) {
		respondOK(c, http.StatusOK, gin.H{"status": "ok"})
	})

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", s.handleRegister)
		authGroup.POST("/login", s.handleLogin)
		authGroup.POST("/logout", s.handleLogout)
		authGroup.POST("/forgot-password", s.handleForgotPassword)
		authGroup.POST("/reset-password", s.handleResetPassword)
		authGroup.GET("/me", middleware.Identify(ValidateToken), s.handleMe)
	}

	restaurants := r.Group("/restaurants")
	{
		restaurants.GET("", s.handleListRestaurants)
		restaurants.GET("/:id", s.handleGetRestaurant)
		restaurants.GET("/:id/menu", s.handleGetMenu)
	}

	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.Identify(ValidateToken))
	{
		cartGroup.GET("/current", s.handleCurrentCart)
		cartGroup.POST("", s.handleCreateCart)
		cartGroup.POST("/items", s.handleAddCartItem)
		cartGroup.PATCH("/items/:itemID", s.handleUpdateCartItem)
		cartGroup.DELETE("/items/:itemID", s.handleDeleteCartItem)
		cartGroup.POST("/clear", s.handleClearCart)
		cartGroup.POST("/apply-promo", s.handleApplyPromo)
	}

	r.POST("/checkout/confirm", middleware.Identify(ValidateToken), s.handleCheckoutConfirm)

	orders := r.Group("/orders")
	orders.Use(middleware.Auth(ValidateToken))
	{
		orders.GET("", s.handleListOrders)
		orders.GET("/:id", s.handleGetOrder)
		orders.POST("/:id/cancel", s.handleCancelOrder)
	}

	admin := r.Group("/restaurant-admin")
	admin.Use(
		middleware.Auth(ValidateToken),
		middleware.RequireRole(auth.RoleRestaurantOwner, auth.RoleStaff, auth.RoleAdmin),
	)
	{
		admin.GET("/restaurants", s.handleManagedRestaurants)
		admin.PATCH("/restaurants/:id", s.handleUpdateRestaurant)
		admin.POST("/restaurants/:id/images", s.handleUploadImage)
		admin.GET("/restaurants/:id/staff", s.handleListStaff)
		admin.POST("/restaurants/:id/staff", s.handleAddStaff)
		admin.DELETE("/staff/:id", s.handleRemoveStaff)
		admin.POST("/restaurants/:id/menus", s.handleCreateMenu)
		admin.POST("/menus/:menuID/categories", s.handleCreateCategory)
		admin.POST("/menus/:menuID/items", s.handleCreateItem)
		admin.PATCH("/items/:itemID", s.handleUpdateItem)
		admin.PATCH("/items/:itemID/stock", s.handleUpdateStock)
		admin.POST("/items/:itemID/option-groups", s.handleCreateOptionGroup)
		admin.POST("/option-groups/:groupID/options", s.handleCreateOption)
	}
}
