package models

// AuthUser represents the signed-in user of the session
type AuthUser struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Avatar  string `json:"avatar,omitempty"`
	Role    string `json:"role,omitempty"` // "user" or "admin"
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
