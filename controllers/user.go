package controllers

import (
	"net/http"

	"github.com/VortexWanderer9/food-delivery-app/models"
	"github.com/VortexWanderer9/food-delivery-app/store"
	"github.com/VortexWanderer9/food-delivery-app/utils"
)

// UserController handles sign-in and profile requests
type UserController struct {
	Store    *store.Store
	Accounts *utils.Accounts
}

// NewUserController creates a new UserController
func NewUserController(st *store.Store, accounts *utils.Accounts) *UserController {
	return &UserController{Store: st, Accounts: accounts}
}

type sessionResponse struct {
	Token string          `json:"token"`
	User  models.AuthUser `json:"user"`
}

func (uc *UserController) signIn(w http.ResponseWriter, user models.AuthUser, status int) {
	if err := uc.Store.Dispatch(store.LoginSuccess{User: user}); err != nil {
		writeError(w, err)
		return
	}
	token, err := utils.GenerateJWT(user)
	if err != nil {
		http.Error(w, "Error generating token", http.StatusInternalServerError)
		return
	}
	writeJSON(w, status, sessionResponse{Token: token, User: user})
}

// Register creates an account and signs it in
func (uc *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var form utils.RegisterForm
	if !decodeBody(w, r, &form) {
		return
	}
	if err := form.Validate(); err != nil {
		writeError(w, err)
		return
	}

	if err := uc.Store.Dispatch(store.LoginStart{}); err != nil {
		writeError(w, err)
		return
	}
	user, err := uc.Accounts.Register(form.Name, form.Email, form.Password)
	if err != nil {
		_ = uc.Store.Dispatch(store.LoginFailure{Message: err.Error()})
		writeError(w, err)
		return
	}
	uc.signIn(w, user, http.StatusCreated)
}

// Login signs a user in and returns a JWT
func (uc *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var form utils.LoginForm
	if !decodeBody(w, r, &form) {
		return
	}
	if err := form.Validate(); err != nil {
		writeError(w, err)
		return
	}

	if err := uc.Store.Dispatch(store.LoginStart{}); err != nil {
		writeError(w, err)
		return
	}
	user, err := uc.Accounts.Authenticate(form.Email, form.Password)
	if err != nil {
		_ = uc.Store.Dispatch(store.LoginFailure{Message: err.Error()})
		writeError(w, err)
		return
	}
	uc.signIn(w, user, http.StatusOK)
}

// Logout ends the session
func (uc *UserController) Logout(w http.ResponseWriter, r *http.Request) {
	if err := uc.Store.Dispatch(store.Logout{}); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetProfile returns the signed-in user
func (uc *UserController) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, err := sessionUser(uc.Store, r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// UpdateProfile edits the signed-in user's profile
func (uc *UserController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	if _, err := sessionUser(uc.Store, r); err != nil {
		writeError(w, err)
		return
	}

	var form utils.ProfileForm
	if !decodeBody(w, r, &form) {
		return
	}
	if err := form.Validate(); err != nil {
		writeError(w, err)
		return
	}

	update := store.ProfileUpdate{
		Name:    &form.Name,
		Email:   &form.Email,
		Phone:   &form.Phone,
		Address: &form.Address,
	}
	if err := uc.Store.Dispatch(store.UpdateProfile{Update: update}); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, uc.Store.Auth().User)
}
