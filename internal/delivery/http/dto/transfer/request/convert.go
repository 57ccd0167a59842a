package request

type ConvertRequest struct {
	Amount       string `json:"amount" binding:"required"`
	FromCurrency string `json:"from_currency" binding:"required"`
	ToCurrency   string `json:"to_currency" binding:"required"`
}
