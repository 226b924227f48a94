// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/VortexWanderer9/food-delivery-app/catalog"
	"github.com/VortexWanderer9/food-delivery-app/checkout"
	"github.com/VortexWanderer9/food-delivery-app/controllers"
	"github.com/VortexWanderer9/food-delivery-app/events"
	"github.com/VortexWanderer9/food-delivery-app/routes"
	"github.com/VortexWanderer9/food-delivery-app/store"
	"github.com/VortexWanderer9/food-delivery-app/utils"

	"github.com/gorilla/mux"
)

func main() {
	cfg := utils.LoadConfig()

	// Set the JWT secret key
	if cfg.JWTSecret != "" {
		utils.JwtKey = []byte(cfg.JWTSecret)
	} else {
		log.Println("JWT_SECRET is not set. Using the development key.")
	}

	st := store.New()

	// Pick the catalog source
	var src catalog.Source
	switch {
	case cfg.MongoURI != "":
		client, err := utils.ConnectDB(context.Background(), cfg.MongoURI)
		if err != nil {
			log.Fatal(err)
		}
		defer func() {
			if err := client.Disconnect(context.TODO()); err != nil {
				log.Println(err)
			}
		}()
		src = catalog.NewMongoSource(client, cfg.MongoDatabase)
	case cfg.CatalogFile != "":
		src = catalog.NewYAMLFileSource(cfg.CatalogFile)
	default:
		src = catalog.DefaultSource()
	}
	if err := catalog.Load(context.Background(), st, src); err != nil {
		log.Printf("Failed to load menu: %v", err)
	}

	// Initialize EmailService
	emailService, err := utils.NewEmailService(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if emailService != nil {
		st.Subscribe(emailService.OrderNotifier())
	}

	if cfg.NATSURL != "" {
		pub, err := events.NewNATSPublisher(cfg.NATSURL)
		if err != nil {
			log.Fatal(err)
		}
		defer pub.Close()
		st.Subscribe(events.Listener(pub))
	}

	// Initialize controllers
	accounts := utils.NewAccounts(cfg.IsAdmin)
	checkoutService := checkout.NewService(st,
		checkout.WithDeliveryFee(cfg.DeliveryFee),
		checkout.WithDelay(cfg.CheckoutDelay),
	)
	userController := controllers.NewUserController(st, accounts)
	menuController := controllers.NewMenuController(st)
	cartController := controllers.NewCartController(st)
	orderController := controllers.NewOrderController(st, checkoutService)

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(router, userController, menuController, cartController, orderController)

	// Start the server
	fmt.Printf("Server is running on port %s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
