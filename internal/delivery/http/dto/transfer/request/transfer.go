package request

type TransferRequest struct {
	SenderAccountNumber   string `json:"sender_account_number" binding:"required"`
	ReceiverAccountNumber string `json:"receiver_account_number" binding:"required"`
	Amount                string `json:"amount" binding:"required"`
	ToCurrency            string `json:"to_currency" binding:"required"`
	Description           string `json:"description"`
}
