// controllers/order.go
package controllers

import (
	"net/http"

	"github.com/VortexWanderer9/food-delivery-app/checkout"
	"github.com/VortexWanderer9/food-delivery-app/models"
	"github.com/VortexWanderer9/food-delivery-app/store"
	"github.com/VortexWanderer9/food-delivery-app/utils"
	"github.com/gorilla/mux"
)

// OrderController handles checkout and order tracking requests
type OrderController struct {
	Store    *store.Store
	Checkout *checkout.Service
}

// NewOrderController creates a new OrderController
func NewOrderController(st *store.Store, svc *checkout.Service) *OrderController {
	return &OrderController{Store: st, Checkout: svc}
}

type orderResponse struct {
	models.Order
	Progress int `json:"progress"`
}

func withProgress(o models.Order) orderResponse {
	return orderResponse{Order: o, Progress: o.Status.Progress()}
}

// CreateOrder checks out the cart
func (oc *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	if _, err := sessionUser(oc.Store, r); err != nil {
		writeError(w, err)
		return
	}

	var form utils.DeliveryForm
	if !decodeBody(w, r, &form) {
		return
	}
	if err := form.Validate(); err != nil {
		writeError(w, err)
		return
	}

	order, err := oc.Checkout.PlaceOrder(r.Context(), checkout.Details{
		Address:       form.Address,
		Instructions:  form.Instructions,
		PaymentMethod: form.PaymentMethod,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, withProgress(order))
}

// GetOrders lists the signed-in user's orders
func (oc *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	user, err := sessionUser(oc.Store, r)
	if err != nil {
		writeError(w, err)
		return
	}

	orders := oc.Store.Orders().ForUser(user.ID)
	resp := make([]orderResponse, len(orders))
	for i, o := range orders {
		resp[i] = withProgress(o)
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetCurrentOrder returns the order being tracked
func (oc *OrderController) GetCurrentOrder(w http.ResponseWriter, r *http.Request) {
	user, err := sessionUser(oc.Store, r)
	if err != nil {
		writeError(w, err)
		return
	}

	order, ok := oc.Store.Orders().CurrentOrder()
	if !ok || order.UserID != user.ID {
		http.Error(w, "No current order", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, withProgress(order))
}

// ClearCurrentOrder stops tracking the current order
func (oc *OrderController) ClearCurrentOrder(w http.ResponseWriter, r *http.Request) {
	if err := oc.Store.Dispatch(store.ClearCurrentOrder{}); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetOrder selects an order for tracking and returns it
func (oc *OrderController) GetOrder(w http.ResponseWriter, r *http.Request) {
	user, err := sessionUser(oc.Store, r)
	if err != nil {
		writeError(w, err)
		return
	}

	id := mux.Vars(r)["id"]
	if o, ok := oc.Store.Orders().Order(id); !ok || o.UserID != user.ID {
		writeError(w, store.ErrOrderNotFound)
		return
	}
	if err := oc.Store.Dispatch(store.SetCurrentOrder{OrderID: id}); err != nil {
		writeError(w, err)
		return
	}
	order, _ := oc.Store.Orders().CurrentOrder()
	writeJSON(w, http.StatusOK, withProgress(order))
}

// UpdateOrderStatus moves an order along its lifecycle. Admins only.
func (oc *OrderController) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status models.OrderStatus `json:"status"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	id := mux.Vars(r)["id"]
	if err := oc.Store.Dispatch(store.UpdateOrderStatus{OrderID: id, Status: req.Status}); err != nil {
		writeError(w, err)
		return
	}
	order, _ := oc.Store.Orders().Order(id)
	writeJSON(w, http.StatusOK, withProgress(order))
}
