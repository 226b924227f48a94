package controllers

import (
	"net/http"

	"github.com/VortexWanderer9/food-delivery-app/catalog"
	"github.com/VortexWanderer9/food-delivery-app/store"
	"github.com/gorilla/mux"
)

// CartController handles cart-related requests
type CartController struct {
	Store *store.Store
}

// NewCartController creates a new CartController
func NewCartController(st *store.Store) *CartController {
	return &CartController{Store: st}
}

type cartResponse struct {
	store.CartState
	ItemCount int `json:"item_count"`
}

func (cc *CartController) respond(w http.ResponseWriter, status int) {
	cart := cc.Store.Cart()
	writeJSON(w, status, cartResponse{CartState: cart, ItemCount: cart.ItemCount()})
}

// GetCart retrieves the session cart
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	cc.respond(w, http.StatusOK)
}

// AddToCart adds a menu item to the cart
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ItemID   string `json:"item_id"`
		Quantity int    `json:"quantity"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	item, ok := cc.Store.Menu().Item(req.ItemID)
	if !ok {
		writeError(w, store.ErrItemNotFound)
		return
	}
	if err := cc.Store.Dispatch(store.AddItem{Item: catalog.ToCartItem(item, req.Quantity)}); err != nil {
		writeError(w, err)
		return
	}
	cc.respond(w, http.StatusCreated)
}

// UpdateCartItem sets the quantity of a cart line. Zero or less removes it.
func (cc *CartController) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	id := mux.Vars(r)["id"]
	if err := cc.Store.Dispatch(store.UpdateQuantity{ID: id, Quantity: req.Quantity}); err != nil {
		writeError(w, err)
		return
	}
	cc.respond(w, http.StatusOK)
}

// RemoveFromCart removes a line from the cart
func (cc *CartController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := cc.Store.Dispatch(store.RemoveItem{ID: id}); err != nil {
		writeError(w, err)
		return
	}
	cc.respond(w, http.StatusOK)
}

// ClearCart empties the cart
func (cc *CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := cc.Store.Dispatch(store.ClearCart{}); err != nil {
		writeError(w, err)
		return
	}
	cc.respond(w, http.StatusOK)
}
