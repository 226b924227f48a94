package utils

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/VortexWanderer9/food-delivery-app/models"
	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// JWT Secret Key
var JwtKey = []byte("your_secret_key") // This will be loaded from .env

// Claims represents the JWT claims
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

// GenerateJWT generates a JWT token for a user
func GenerateJWT(user models.AuthUser) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)
	claims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JwtKey)
}

// ParseJWT validates a token and returns its claims
func ParseJWT(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return JwtKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

var (
	ErrAccountExists      = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type account struct {
	user models.AuthUser
	hash []byte
}

// Accounts is the mock account directory behind login and register.
// Registered emails must log in with their password; any other email is
// accepted the way the demo login accepts it, always as a plain user.
// Only registered accounts can hold the admin role.
type Accounts struct {
	mu      sync.Mutex
	byEmail map[string]account
	admins  func(email string) bool
}

// NewAccounts creates an empty directory. isAdmin decides the role handed out at sign-in.
func NewAccounts(isAdmin func(email string) bool) *Accounts {
	if isAdmin == nil {
		isAdmin = func(string) bool { return false }
	}
	return &Accounts{
		byEmail: make(map[string]account),
		admins:  isAdmin,
	}
}

// Register stores a new account with a hashed password
func (a *Accounts) Register(name, email, password string) (models.AuthUser, error) {
	key := strings.ToLower(email)

	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.byEmail[key]; ok {
		return models.AuthUser{}, ErrAccountExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.AuthUser{}, err
	}
	user := models.AuthUser{
		ID:    uuid.NewString(),
		Email: email,
		Name:  name,
		Role:  a.role(key),
	}
	a.byEmail[key] = account{user: user, hash: hash}
	return user, nil
}

// Authenticate checks credentials and returns the user to sign in
func (a *Accounts) Authenticate(email, password string) (models.AuthUser, error) {
	key := strings.ToLower(email)

	a.mu.Lock()
	acc, ok := a.byEmail[key]
	a.mu.Unlock()

	if !ok {
		return models.AuthUser{
			ID:    uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+key)).String(),
			Email: email,
			Name:  strings.SplitN(email, "@", 2)[0],
			Role:  models.RoleUser,
		}, nil
	}
	if err := bcrypt.CompareHashAndPassword(acc.hash, []byte(password)); err != nil {
		return models.AuthUser{}, ErrInvalidCredentials
	}
	return acc.user, nil
}

func (a *Accounts) role(email string) string {
	if a.admins(email) {
		return models.RoleAdmin
	}
	return models.RoleUser
}
