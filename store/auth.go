package store

import (
	"fmt"

	"github.com/VortexWanderer9/food-delivery-app/models"
)

// AuthState holds the signed-in user, if any.
type AuthState struct {
	User    *models.AuthUser `json:"user"`
	Loading bool             `json:"loading"`
	Error   string           `json:"error,omitempty"`
}

// ProfileUpdate carries the profile fields to change. Nil fields are left alone.
type ProfileUpdate struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
	Avatar  *string `json:"avatar,omitempty"`
}

func (a *AuthState) LoginStart() {
	a.Loading = true
	a.Error = ""
}

func (a *AuthState) LoginSuccess(user models.AuthUser) {
	a.Loading = false
	a.Error = ""
	a.User = &user
}

// LoginFailure records the failure and leaves the session signed out.
func (a *AuthState) LoginFailure(message string) {
	a.Loading = false
	a.Error = message
	a.User = nil
}

func (a *AuthState) Logout() {
	a.User = nil
	a.Loading = false
	a.Error = ""
}

// UpdateProfile merges p into the current user.
func (a *AuthState) UpdateProfile(p ProfileUpdate) error {
	if a.User == nil {
		return fmt.Errorf("update profile: %w", ErrNotAuthenticated)
	}
	u := *a.User
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Address != nil {
		u.Address = *p.Address
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	a.User = &u
	return nil
}

func (a AuthState) IsAuthenticated() bool {
	return a.User != nil
}

func (a AuthState) clone() AuthState {
	if a.User != nil {
		u := *a.User
		a.User = &u
	}
	return a
}
