package request

type OpenAccountRequest struct {
	OwnerName      string `json:"owner_name" binding:"required"`
	AccountType    string `json:"account_type"`
	Currency       string `json:"currency" binding:"required"`
	InitialBalance string `json:"initial_balance"`
}
