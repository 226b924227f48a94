package models

// Payment methods accepted at checkout
const (
	PaymentCard = "card"
	PaymentCash = "cash"
)

// ValidPaymentMethod reports whether m is an accepted payment method
func ValidPaymentMethod(m string) bool {
	return m == PaymentCard || m == PaymentCash
}
