package response

import "time"

type AccountResponse struct {
	AccountNumber string    `json:"account_number"`
	OwnerName     string    `json:"owner_name"`
	AccountType   string    `json:"account_type"`
	Balance       string    `json:"balance"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type AccountListResponse struct {
	Status   string            `json:"status"`
	Accounts []AccountResponse `json:"accounts"`
	Page     int64             `json:"page"`
	Limit    int64             `json:"limit"`
	Total    int64             `json:"total"`
}
