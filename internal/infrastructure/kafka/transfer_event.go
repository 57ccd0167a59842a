package kafka

type TransferEvent struct {
	TransactionID         string `json:"transaction_id"`
	SenderAccountNumber   string `json:"sender_account_number"`
	ReceiverAccountNumber string `json:"receiver_account_number"`
	Amount                string `json:"amount"`
	ConvertedAmount       string `json:"converted_amount"`
	ExchangeRate          string `json:"exchange_rate"`
	Currency              string `json:"currency"`
	ToCurrency            string `json:"to_currency"`
	Status                string `json:"status"`
	Timestamp             int64  `json:"timestamp"`
}
