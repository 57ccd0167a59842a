package response

import "time"

type TransactionResponse struct {
	ID                    string    `json:"id"`
	SenderAccountNumber   string    `json:"sender_account_number"`
	ReceiverAccountNumber string    `json:"receiver_account_number"`
	Amount                string    `json:"amount"`
	ConvertedAmount       string    `json:"converted_amount"`
	ExchangeRate          string    `json:"exchange_rate"`
	Currency              string    `json:"currency"`
	ToCurrency            string    `json:"to_currency"`
	Description           string    `json:"description,omitempty"`
	Status                string    `json:"status"`
	Timestamp             time.Time `json:"timestamp"`
}

type TransactionListResponse struct {
	Status       string                `json:"status"`
	Transactions []TransactionResponse `json:"transactions"`
	Page         int64                 `json:"page"`
	Limit        int64                 `json:"limit"`
	Total        int64                 `json:"total"`
}
