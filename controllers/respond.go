package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/VortexWanderer9/food-delivery-app/checkout"
	"github.com/VortexWanderer9/food-delivery-app/middleware"
	"github.com/VortexWanderer9/food-delivery-app/models"
	"github.com/VortexWanderer9/food-delivery-app/store"
	"github.com/VortexWanderer9/food-delivery-app/utils"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// writeError maps store and form errors onto HTTP statuses
func writeError(w http.ResponseWriter, err error) {
	var verrs utils.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": verrs})
	case errors.Is(err, store.ErrItemNotFound), errors.Is(err, store.ErrOrderNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, store.ErrNotAuthenticated), errors.Is(err, utils.ErrInvalidCredentials):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, store.ErrInvalidTransition), errors.Is(err, checkout.ErrEmptyCart),
		errors.Is(err, store.ErrDuplicateOrder), errors.Is(err, utils.ErrAccountExists):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, store.ErrUnknownStatus), errors.Is(err, store.ErrInvalidSortDirection):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		http.Error(w, "Request cancelled", http.StatusRequestTimeout)
	default:
		log.Printf("Unhandled error: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return false
	}
	return true
}

// sessionUser returns the signed-in user, provided the request's token
// belongs to that user.
func sessionUser(st *store.Store, r *http.Request) (models.AuthUser, error) {
	user := st.Auth().User
	if user == nil {
		return models.AuthUser{}, store.ErrNotAuthenticated
	}
	if claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims); ok && claims.UserID != user.ID {
		return models.AuthUser{}, store.ErrNotAuthenticated
	}
	return *user, nil
}
