package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/greenloop/recycle-market/internal/handler"
	"github.com/greenloop/recycle-market/internal/middleware"
	"github.com/greenloop/recycle-market/internal/repository"
)

// Handlers bundles every handler the router needs. Paths follow the public
// interface of the service: registration and login are top-level, entity
// CRUD lives under its collection prefix, and only cart creation and logout
// require a bearer token.
type Handlers struct {
	Auth     *handler.AuthHandler
	Users    *handler.UserHandler
	Carts    *handler.CartHandler
	Checkout *handler.CheckoutHandler
	Invoices *handler.InvoiceHandler
	Items    *handler.ItemHandler
	Admin    *handler.AdminHandler
}

// RegisterRoutes registers all application routes on the provided Echo
// instance. jwtSecret verifies bearer tokens on the protected routes and
// denylist rejects revoked ones.
func RegisterRoutes(e *echo.Echo, h Handlers, jwtSecret string, denylist *repository.Denylist) {
	e.GET("/", handler.Root)
	e.GET("/healthz", handler.Health)

	// Registration and login issue credentials and tokens; no auth required.
	e.POST("/create_user", h.Auth.CreateUser)
	e.POST("/login", h.Auth.Login)

	// Users
	e.GET("/users/:id", h.Users.GetUser)
	e.GET("/users/", h.Users.ListUsers)
	e.DELETE("/users/deleteUser/:id", h.Users.DeleteUser)

	// Protected routes: cart creation attributes the entry to the resolved
	// user, logout revokes the presented token.
	auth := middleware.JWTAuth(jwtSecret, denylist)
	e.POST("/create_cart", h.Carts.CreateCart, auth)
	e.POST("/logout", h.Auth.Logout, auth)

	// Carts
	e.GET("/carts/:id", h.Carts.GetCart)
	e.GET("/carts/", h.Carts.ListCarts)
	e.DELETE("/carts/:id", h.Carts.DeleteCart)

	// Checkout
	e.POST("/checkout/", h.Checkout.CreateCheckout)
	e.GET("/checkout/:id", h.Checkout.GetCheckout)
	e.GET("/checkout/", h.Checkout.ListCheckouts)
	e.DELETE("/checkout/:id", h.Checkout.DeleteCheckout)

	// Invoices
	e.POST("/invoices/", h.Invoices.CreateInvoice)
	e.GET("/invoices/:id", h.Invoices.GetInvoice)
	e.GET("/invoices/", h.Invoices.ListInvoices)
	e.DELETE("/invoices/:id", h.Invoices.DeleteInvoice)

	// Items (catalog supports update as well)
	e.POST("/items/", h.Items.CreateItem)
	e.GET("/items/:id", h.Items.GetItem)
	e.GET("/items/", h.Items.ListItems)
	e.PUT("/items/:id", h.Items.UpdateItem)
	e.DELETE("/items/:id", h.Items.DeleteItem)

	// Admin credential records
	e.POST("/admin/", h.Admin.CreateAdmin)
}
