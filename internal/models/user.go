package models

// User is a registered user. Stored in memory only, keyed by email,
// lost on restart.
type User struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	IsSubscribed bool   `json:"is_subscribed"`
	CreditsLeft  int    `json:"credits_left"`
}

// OrderRequest asks for a payment order to be created.
type OrderRequest struct {
	Amount    float64 `json:"amount"`
	UserEmail string  `json:"user_email"`
}
