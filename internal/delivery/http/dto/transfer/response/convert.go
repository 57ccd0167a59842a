package response

type ConvertResponse struct {
	FromCurrency    string `json:"from_currency"`
	ToCurrency      string `json:"to_currency"`
	Amount          string `json:"amount"`
	ConvertedAmount string `json:"converted_amount"`
	ExchangeRate    string `json:"exchange_rate"`
	RateSource      string `json:"rate_source"`
}
