package services

import (
	"math"

	razorpay "github.com/razorpay/razorpay-go"
)

// PaymentService creates payment orders through the Razorpay gateway.
type PaymentService struct {
	client *razorpay.Client
}

func NewPaymentService(keyID, keySecret string) *PaymentService {
	return &PaymentService{client: razorpay.NewClient(keyID, keySecret)}
}

// CreateOrder opens a capture-on-payment order for the given amount in
// INR and returns the gateway's order id. The gateway wants the amount
// in paise.
func (s *PaymentService) CreateOrder(amount float64) (string, error) {
	if amount <= 0 {
		return "", &ValidationError{Message: "Amount must be positive."}
	}

	data := map[string]interface{}{
		"amount":          int(math.Round(amount * 100)),
		"currency":        "INR",
		"payment_capture": 1,
	}
	order, err := s.client.Order.Create(data, nil)
	if err != nil {
		return "", &UpstreamError{Message: "Payment order creation failed", Err: err}
	}

	id, ok := order["id"].(string)
	if !ok || id == "" {
		return "", &UpstreamError{Message: "Payment order creation failed: gateway returned no order id"}
	}
	return id, nil
}
