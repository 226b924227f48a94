// routes/routes.go
package routes

import (
	"github.com/VortexWanderer9/food-delivery-app/controllers"
	"github.com/VortexWanderer9/food-delivery-app/middleware"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, userController *controllers.UserController, menuController *controllers.MenuController, cartController *controllers.CartController, orderController *controllers.OrderController) {
	// Public routes
	router.HandleFunc("/register", userController.Register).Methods("POST")
	router.HandleFunc("/login", userController.Login).Methods("POST")

	// Menu routes
	router.HandleFunc("/menu", menuController.GetMenu).Methods("GET")
	router.HandleFunc("/menu/categories", menuController.GetCategories).Methods("GET")
	router.HandleFunc("/menu/items/{id}", menuController.GetMenuItem).Methods("GET")

	// Cart routes
	router.HandleFunc("/cart", cartController.GetCart).Methods("GET")
	router.HandleFunc("/cart", cartController.AddToCart).Methods("POST")
	router.HandleFunc("/cart", cartController.ClearCart).Methods("DELETE")
	router.HandleFunc("/cart/{id}", cartController.UpdateCartItem).Methods("PUT")
	router.HandleFunc("/cart/{id}", cartController.RemoveFromCart).Methods("DELETE")

	// Protected routes
	protected := router.NewRoute().Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/logout", userController.Logout).Methods("POST")
	protected.HandleFunc("/profile", userController.GetProfile).Methods("GET")
	protected.HandleFunc("/profile", userController.UpdateProfile).Methods("PUT")

	// Order routes
	protected.HandleFunc("/checkout", orderController.CreateOrder).Methods("POST")
	protected.HandleFunc("/orders", orderController.GetOrders).Methods("GET")
	protected.HandleFunc("/orders/current", orderController.GetCurrentOrder).Methods("GET")
	protected.HandleFunc("/orders/current", orderController.ClearCurrentOrder).Methods("DELETE")
	protected.HandleFunc("/orders/{id}", orderController.GetOrder).Methods("GET")

	// Admin routes
	admin := router.PathPrefix("/orders").Subrouter()
	admin.Use(middleware.AuthMiddleware)
	admin.Use(middleware.AdminMiddleware)
	admin.HandleFunc("/{id}/status", orderController.UpdateOrderStatus).Methods("PATCH")
}
