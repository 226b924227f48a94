package utils

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds the settings read from the environment
type Config struct {
	Port          string
	JWTSecret     string
	MongoURI      string
	MongoDatabase string
	CatalogFile   string
	NATSURL       string
	EmailProvider string // "postmark", "sendgrid" or empty to disable
	PostmarkToken string
	SendGridKey   string
	EmailSender   string
	DeliveryFee   decimal.Decimal
	CheckoutDelay time.Duration
	AdminEmails   []string
}

var defaultDeliveryFee = decimal.NewFromInt(5)

const defaultCheckoutDelay = 1500 * time.Millisecond

// LoadConfig loads .env if present and reads the environment
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}
	return ConfigFromEnv(os.Getenv)
}

// ConfigFromEnv builds a Config from a lookup function such as os.Getenv
func ConfigFromEnv(getenv func(string) string) Config {
	cfg := Config{
		Port:          getenv("PORT"),
		JWTSecret:     getenv("JWT_SECRET"),
		MongoURI:      getenv("MONGO_URI"),
		MongoDatabase: getenv("MONGO_DATABASE"),
		CatalogFile:   getenv("CATALOG_FILE"),
		NATSURL:       getenv("NATS_URL"),
		EmailProvider: strings.ToLower(getenv("EMAIL_PROVIDER")),
		PostmarkToken: getenv("POSTMARK_API_TOKEN"),
		SendGridKey:   getenv("SENDGRID_API_KEY"),
		EmailSender:   getenv("EMAIL_SENDER"),
		DeliveryFee:   defaultDeliveryFee,
		CheckoutDelay: defaultCheckoutDelay,
	}
	if cfg.Port == "" {
		cfg.Port = "8000"
	}
	if cfg.MongoDatabase == "" {
		cfg.MongoDatabase = "fooddelivery"
	}
	if v := getenv("DELIVERY_FEE"); v != "" {
		fee, err := decimal.NewFromString(v)
		if err != nil || fee.IsNegative() {
			log.Printf("Ignoring invalid DELIVERY_FEE %q", v)
		} else {
			cfg.DeliveryFee = fee
		}
	}
	if v := getenv("CHECKOUT_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			log.Printf("Ignoring invalid CHECKOUT_DELAY %q", v)
		} else {
			cfg.CheckoutDelay = d
		}
	}
	for _, e := range strings.Split(getenv("ADMIN_EMAILS"), ",") {
		if e = strings.TrimSpace(strings.ToLower(e)); e != "" {
			cfg.AdminEmails = append(cfg.AdminEmails, e)
		}
	}
	return cfg
}

// IsAdmin reports whether email is listed in ADMIN_EMAILS
func (c Config) IsAdmin(email string) bool {
	email = strings.ToLower(email)
	for _, e := range c.AdminEmails {
		if e == email {
			return true
		}
	}
	return false
}
